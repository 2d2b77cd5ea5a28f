package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/redthing1/redlog/core"
	"github.com/redthing1/redlog/formatter"
	"github.com/redthing1/redlog/sink"
)

// consoleSink is the shared default destination for loggers without a
// sink override.
var consoleSink sink.Sink = sink.NewConsoleSink(nil)

// Logger is an immutable logging handle bundling a dot-joined
// hierarchical name, a set of bound fields, and optional formatter and
// sink overrides. Deriving methods return new Logger values; a Logger
// is never modified after construction and is safe for concurrent use
// without locking.
type Logger struct {
	name      string
	fields    core.FieldSet
	formatter formatter.Formatter
	sink      sink.Sink
	cfg       *Config
}

// GetLogger creates a logger with the given name, bound to the global
// config. This is the main entry point.
func GetLogger(name string) *Logger {
	return NewLogger(name, nil)
}

// NewLogger creates a logger bound to an explicit Config. A nil config
// means the global one.
func NewLogger(name string, cfg *Config) *Logger {
	if cfg == nil {
		cfg = globalConfig
	}
	return &Logger{name: name, cfg: cfg}
}

// Name returns the logger's dot-joined hierarchy name.
func (l *Logger) Name() string {
	return l.name
}

// Fields returns the logger's bound fields.
func (l *Logger) Fields() core.FieldSet {
	return l.fields
}

// WithName returns a logger whose name extends the hierarchy:
// GetLogger("app").WithName("db") is named "app.db". On an unnamed
// logger the segment becomes the name.
func (l *Logger) WithName(segment string) *Logger {
	derived := *l
	if l.name != "" {
		derived.name = l.name + "." + segment
	} else {
		derived.name = segment
	}
	return &derived
}

// WithField returns a logger with one additional bound field. The
// value is converted through core.Stringify.
func (l *Logger) WithField(key string, value any) *Logger {
	derived := *l
	derived.fields = l.fields.WithField(core.F(key, value))
	return &derived
}

// WithFields returns a logger with the given fields appended to its
// bound fields, preserving order.
func (l *Logger) WithFields(fields ...core.Field) *Logger {
	derived := *l
	derived.fields = l.fields.WithFields(fields...)
	return &derived
}

// WithFormatter returns a logger that renders through f instead of the
// default formatter.
func (l *Logger) WithFormatter(f formatter.Formatter) *Logger {
	derived := *l
	derived.formatter = f
	return &derived
}

// WithSink returns a logger that writes to s instead of the default
// console sink.
func (l *Logger) WithSink(s sink.Sink) *Logger {
	derived := *l
	derived.sink = s
	return &derived
}

// enabled is the single comparison every log call pays when filtered
// out.
func (l *Logger) enabled(level core.Level) bool {
	return level.Enabled(l.cfg.MinLevel())
}

// Log emits a message at an arbitrary level.
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	if !l.enabled(level) {
		return
	}
	l.log(level, msg, fields)
}

// log builds the entry, renders it, and writes it. Logging is
// best-effort: a panicking formatter or failing sink degrades to one
// fallback line on stderr and never reaches the caller.
func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "[redlog] failed to log: %s\n", msg)
		}
	}()

	entry := core.GetEntry()
	entry.Time = time.Now()
	entry.Level = level
	entry.Source = l.name
	entry.Message = msg
	entry.Fields.Merge(l.fields)
	for _, f := range fields {
		entry.Fields.Add(f)
	}

	f := l.formatter
	if f == nil {
		f = formatter.NewDefaultFormatter(l.cfg.Theme())
	}
	s := l.sink
	if s == nil {
		s = consoleSink
	}

	line := f.Format(entry)
	core.PutEntry(entry)

	if err := s.Write(line); err != nil {
		fmt.Fprintf(os.Stderr, "[redlog] failed to log: %s\n", msg)
	}
}

// logf interpolates and emits. Callers gate on the level first, so the
// format string is never evaluated for filtered-out calls.
// fmt.Sprintf reports argument mismatches as in-band %! markers rather
// than failing.
func (l *Logger) logf(level core.Level, format string, args []any) {
	l.log(level, fmt.Sprintf(format, args...), nil)
}
