package formatter

import (
	"os"
	"strconv"

	"github.com/mattn/go-isatty"

	"github.com/redthing1/redlog/theme"
)

const (
	escPrefix = "\x1b["
	escReset  = "\x1b[0m"
)

// ColorEnabled reports whether colorized output should be produced.
// An explicit disable signal (NO_COLOR or REDLOG_NO_COLOR) wins over
// everything; an explicit force signal (FORCE_COLOR or
// REDLOG_FORCE_COLOR) wins over TTY detection; otherwise color is on
// iff stderr is an interactive terminal. The environment is consulted
// on every call so signals take effect immediately.
func ColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("REDLOG_NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" || os.Getenv("REDLOG_FORCE_COLOR") != "" {
		return true
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Colorize wraps text in an ANSI escape sequence for the given
// foreground and background colors, followed by a reset. Text is
// returned unchanged when color is disabled or both colors are None.
func Colorize(text string, fg, bg theme.Color) string {
	if (fg == theme.None && bg == theme.None) || !ColorEnabled() {
		return text
	}
	var codes string
	switch {
	case fg != theme.None && bg != theme.None:
		codes = strconv.Itoa(int(fg)) + ";" + strconv.Itoa(int(bg))
	case fg != theme.None:
		codes = strconv.Itoa(int(fg))
	default:
		codes = strconv.Itoa(int(bg))
	}
	return escPrefix + codes + "m" + text + escReset
}
