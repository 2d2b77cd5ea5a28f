package core

import "strings"

// Level represents the severity of a log entry. Lower values have
// higher priority: CriticalLevel (0) is always shown, AnnoyingLevel (8)
// only at maximum verbosity.
type Level int8

const (
	// CriticalLevel for system-breaking errors
	CriticalLevel Level = iota
	// ErrorLevel for recoverable errors
	ErrorLevel
	// WarnLevel for warnings and potential issues
	WarnLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// VerboseLevel for detailed operational information
	VerboseLevel
	// TraceLevel for detailed execution tracing
	TraceLevel
	// DebugLevel for debugging information
	DebugLevel
	// PedanticLevel for extremely detailed debugging
	PedanticLevel
	// AnnoyingLevel for maximum verbosity
	AnnoyingLevel
)

// NumLevels is the number of defined levels.
const NumLevels = 9

var levelNames = [NumLevels]string{
	"critical", "error", "warn", "info", "verbose",
	"trace", "debug", "pedantic", "annoying",
}

var levelShortNames = [NumLevels]string{
	"crt", "err", "wrn", "inf", "vrb", "trc", "dbg", "ped", "ayg",
}

// String returns the full lowercase name of the level, or "unknown" for
// values outside the defined range. It never fails; it sits on hot
// formatting paths.
func (l Level) String() string {
	if l < 0 || l >= NumLevels {
		return "unknown"
	}
	return levelNames[l]
}

// Short returns the 3-character abbreviation of the level, or "unk" for
// values outside the defined range.
func (l Level) Short() string {
	if l < 0 || l >= NumLevels {
		return "unk"
	}
	return levelShortNames[l]
}

// Enabled reports whether a message at this level passes a minimum
// level filter. Lower ordinal means higher priority, so the check is
// l <= min.
func (l Level) Enabled(min Level) bool {
	return l <= min
}

// ParseLevel converts a level name (full or 3-character form, any case)
// to a Level. Unrecognized names map to InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "critical", "crt":
		return CriticalLevel
	case "error", "err":
		return ErrorLevel
	case "warn", "warning", "wrn":
		return WarnLevel
	case "info", "inf":
		return InfoLevel
	case "verbose", "vrb":
		return VerboseLevel
	case "trace", "trc":
		return TraceLevel
	case "debug", "dbg":
		return DebugLevel
	case "pedantic", "ped":
		return PedanticLevel
	case "annoying", "ayg":
		return AnnoyingLevel
	default:
		return InfoLevel
	}
}
