package ldglog

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"
)

// runLogHeader is the exact column order the source's CSV log writes.
var runLogHeader = []string{
	"time", "pass", "height", "iteration", "distance", "num_exchanges",
	"max_iterations", "distance_threshold", "using_partition_swaps", "rows", "columns",
}

// RunLogger writes one semicolon-separated CSV row per sort-driver
// iteration, matching the source's Logger exactly (including its
// fluent setters for the run-level fields that stay constant across rows).
type RunLogger struct {
	w         *csv.Writer
	f         *os.File
	startTime time.Time
	closed    bool

	numRows, numCols    int
	maxIterations       int
	distanceThreshold   float64
	usingPartitionSwaps bool
}

// NewRunLogger creates the file at path, writes its header row, and
// returns a RunLogger ready for Write calls. startTime anchors the "time"
// column's elapsed-seconds value.
func NewRunLogger(path string, startTime time.Time) (*RunLogger, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("ldglog: creating %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	w.Comma = ';'
	if err := w.Write(runLogHeader); err != nil {
		f.Close()
		return nil, fmt.Errorf("ldglog: writing header: %w", err)
	}
	return &RunLogger{w: w, f: f, startTime: startTime}, nil
}

// SetNumRows is a fluent setter for the constant "rows" column.
func (l *RunLogger) SetNumRows(n int) *RunLogger { l.numRows = n; return l }

// SetNumCols is a fluent setter for the constant "columns" column.
func (l *RunLogger) SetNumCols(n int) *RunLogger { l.numCols = n; return l }

// SetMaxIterations is a fluent setter for the "max_iterations" column.
func (l *RunLogger) SetMaxIterations(n int) *RunLogger { l.maxIterations = n; return l }

// SetDistanceThreshold is a fluent setter for the "distance_threshold" column.
func (l *RunLogger) SetDistanceThreshold(v float64) *RunLogger { l.distanceThreshold = v; return l }

// SetUsingPartitionSwaps is a fluent setter for the "using_partition_swaps" column.
func (l *RunLogger) SetUsingPartitionSwaps(v bool) *RunLogger { l.usingPartitionSwaps = v; return l }

// Write appends one row for a single sort-driver iteration.
func (l *RunLogger) Write(pass, height, iteration int, distance float64, numExchanges int) error {
	if l.closed {
		return ErrClosed
	}
	row := []string{
		fmt.Sprintf("%.6f", time.Since(l.startTime).Seconds()),
		fmt.Sprint(pass),
		fmt.Sprint(height),
		fmt.Sprint(iteration),
		fmt.Sprintf("%g", distance),
		fmt.Sprint(numExchanges),
		fmt.Sprint(l.maxIterations),
		fmt.Sprintf("%g", l.distanceThreshold),
		fmt.Sprint(l.usingPartitionSwaps),
		fmt.Sprint(l.numRows),
		fmt.Sprint(l.numCols),
	}
	if err := l.w.Write(row); err != nil {
		return fmt.Errorf("ldglog: writing row: %w", err)
	}
	l.w.Flush()
	return l.w.Error()
}

// Close flushes and closes the underlying file.
func (l *RunLogger) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	l.w.Flush()
	return l.f.Close()
}
