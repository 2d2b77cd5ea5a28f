// Package logger is the public API of redlog. Most users only need to
// import this package.
//
// A Logger is an immutable handle: WithName, WithField, WithFields,
// WithFormatter, and WithSink all return a new Logger and never modify
// the receiver. Any number of goroutines may share and derive from the
// same Logger without synchronization:
//
//	log := logger.GetLogger("app")
//	dbLog := log.WithName("db").WithField("host", "localhost")
//	dbLog.Info("connected", logger.F("port", 5432))
//
// Each level has a full-name method (Critical … Annoying), a
// three-letter alias (Crt … Ayg), and printf-style variants (Criticalf
// … Annoyingf, Crtf … Aygf). Level checks happen before any allocation
// or format-string interpolation, so filtered-out calls cost a single
// integer comparison.
//
// The minimum level and theme are process-wide state held by a
// mutex-guarded Config. SetLevel, GetLevel, SetTheme, and GetTheme
// operate on the global instance; tests can save and restore it, or
// bind a private Config with NewLogger.
//
// Logging is best-effort: a broken formatter or sink degrades to a
// single fallback line on stderr and never propagates a failure into
// caller code.
package logger
