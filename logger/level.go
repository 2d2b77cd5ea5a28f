package logger

import "github.com/redthing1/redlog/core"

// Level re-exports core.Level for convenience.
type Level = core.Level

const (
	CriticalLevel = core.CriticalLevel
	ErrorLevel    = core.ErrorLevel
	WarnLevel     = core.WarnLevel
	InfoLevel     = core.InfoLevel
	VerboseLevel  = core.VerboseLevel
	TraceLevel    = core.TraceLevel
	DebugLevel    = core.DebugLevel
	PedanticLevel = core.PedanticLevel
	AnnoyingLevel = core.AnnoyingLevel
)

// ParseLevel converts a level name to a Level. Unrecognized names map
// to InfoLevel.
func ParseLevel(s string) Level {
	return core.ParseLevel(s)
}
