package ldglog

import (
	"fmt"
	"log"
	"os"
)

// stdLogger is a Logger backed by the standard library's log.Logger, with
// level filtering and a sticky set of fields (set via WithFields).
type stdLogger struct {
	out    *log.Logger
	level  Level
	fields []Field
}

// New returns a Logger writing to os.Stderr, filtered to minLevel and
// above.
func New(minLevel Level) Logger {
	return &stdLogger{out: log.New(os.Stderr, "", log.LstdFlags), level: minLevel}
}

func (l *stdLogger) WithFields(fields ...Field) Logger {
	combined := make([]Field, 0, len(l.fields)+len(fields))
	combined = append(combined, l.fields...)
	combined = append(combined, fields...)
	return &stdLogger{out: l.out, level: l.level, fields: combined}
}

func (l *stdLogger) Debug(msg string, fields ...Field) { l.log(LevelDebug, msg, fields) }
func (l *stdLogger) Info(msg string, fields ...Field)  { l.log(LevelInfo, msg, fields) }
func (l *stdLogger) Warn(msg string, fields ...Field)  { l.log(LevelWarn, msg, fields) }
func (l *stdLogger) Error(msg string, fields ...Field) { l.log(LevelError, msg, fields) }

func (l *stdLogger) log(level Level, msg string, fields []Field) {
	if level < l.level {
		return
	}
	line := fmt.Sprintf("[%s] %s", level, msg)
	for _, f := range l.fields {
		line += fmt.Sprintf(" %s=%v", f.Key, f.Value)
	}
	for _, f := range fields {
		line += fmt.Sprintf(" %s=%v", f.Key, f.Value)
	}
	l.out.Println(line)
}
