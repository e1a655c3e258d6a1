package runner

import (
	"github.com/ldgssm/ldgssm/sortdriver"
	"github.com/ldgssm/ldgssm/target"
)

// Schedule controls how many passes Run performs. Run itself calls its
// Checkpoint after every iteration; PassesPerCheckpoint and
// IterationsPerCheckpoint are not read by Run and are carried for the
// caller's Checkpoint to filter on.
type Schedule struct {
	NumberOfPasses          int
	PassesPerCheckpoint     int
	IterationsPerCheckpoint int

	// CombineTargets mirrors spec.md section 6's combine_targets option
	// (run.hpp's createTargetSchedule): when true, every pass concatenates
	// target.Build's results for the full Options.TargetKinds list instead
	// of rotating through one kind per pass via targetKindForPass.
	CombineTargets bool
}

// Options controls a single Run invocation's sort parameters. MaxIterations
// and DistanceThreshold decay multiplicatively after every pass by
// IterationsChangeFactor and DistanceChangeFactor respectively.
type Options struct {
	MaxIterations          int
	DistanceThreshold      float64
	IterationsChangeFactor float64
	DistanceChangeFactor   float64

	// TargetKinds assigns a target.Kind to each pass by index; passes
	// beyond len(TargetKinds) reuse the last entry.
	TargetKinds []target.Kind

	RandomizeAssignment bool
	Seed                int64

	// SSMMode pins the run to the original Self-Sorting Map paper's
	// single-target-kind configuration instead of per-pass target kinds.
	SSMMode bool

	// Debug gates the initial and final invariant assertions -- they are
	// skipped in production runs to avoid paying an O(leafCount log
	// leafCount) sort on every invocation.
	Debug bool
}

// PassResult reports one pass's outcome.
type PassResult struct {
	Pass          int
	HeightResults []sortdriver.HeightResult
	InitialHND    float64
	FinalHND      float64
}

func targetKindForPass(kinds []target.Kind, pass int) target.Kind {
	if len(kinds) == 0 {
		return target.Hierarchy
	}
	if pass >= len(kinds) {
		return kinds[len(kinds)-1]
	}
	return kinds[pass]
}
