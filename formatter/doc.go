// Package formatter renders log entries to strings.
//
// A Formatter is a pure function of an entry and a theme. Four
// implementations are provided: DefaultFormatter (aligned, colored
// columns), PlainFormatter (colorless space-joined text),
// TimestampedFormatter (wall-clock prefix with bracketed fields), and
// JSONFormatter (single-line JSON objects).
//
// Color is applied through Colorize, which consults the NO_COLOR /
// FORCE_COLOR environment signals (generic and REDLOG_-prefixed forms)
// and falls back to TTY detection on stderr. Column widths are measured
// on the raw text before coloring, so escape sequences never skew
// alignment.
package formatter
