package formatter

import (
	"strings"

	"github.com/redthing1/redlog/core"
	"github.com/redthing1/redlog/theme"
)

// DefaultFormatter produces aligned, colored console output:
//
//	[source]     [lvl] message                          key=value key=value
//
// Column widths come from the theme and are measured on the raw text;
// color escape sequences are applied around the measured substrings and
// never count against a column width.
type DefaultFormatter struct {
	Theme theme.Theme
}

// NewDefaultFormatter creates a DefaultFormatter bound to the given
// theme.
func NewDefaultFormatter(t theme.Theme) *DefaultFormatter {
	return &DefaultFormatter{Theme: t}
}

// maxLevelTagWidth returns the widest bracketed level tag across all
// levels.
func maxLevelTagWidth() int {
	widest := 0
	for l := core.Level(0); l < core.NumLevels; l++ {
		if w := len(l.Short()) + 2; w > widest {
			widest = w
		}
	}
	return widest
}

// Format renders the entry with aligned columns.
func (f *DefaultFormatter) Format(entry *core.Entry) string {
	t := f.Theme
	buf := getBuffer()
	defer putBuffer(buf)

	// Source column, fixed width including separator
	if entry.Source != "" {
		sourceTag := "[" + entry.Source + "]"
		buf.WriteString(Colorize(sourceTag, t.SourceColor, t.SourceBGColor))
		if pad := t.SourceWidth - len(sourceTag); pad > 0 {
			buf.WriteString(strings.Repeat(" ", pad))
		} else {
			buf.WriteByte(' ')
		}
	} else {
		buf.WriteString(strings.Repeat(" ", t.SourceWidth))
	}

	// Level tag, optionally padded to the widest tag
	levelTag := "[" + entry.Level.Short() + "]"
	if t.PadLevelText {
		if pad := maxLevelTagWidth() - len(levelTag); pad > 0 {
			levelTag += strings.Repeat(" ", pad)
		}
	}
	buf.WriteString(Colorize(levelTag, t.LevelColor(entry.Level), t.LevelBGColor(entry.Level)))
	buf.WriteByte(' ')

	// Message column; padding is at least one space even when the
	// message overflows the column
	buf.WriteString(Colorize(entry.Message, t.MessageColor, theme.None))
	if t.MessageFixedWidth > 0 {
		pad := t.MessageFixedWidth - len(entry.Message)
		if pad < 1 {
			pad = 1
		}
		buf.WriteString(strings.Repeat(" ", pad))
	}

	// Fields, space-joined
	if !entry.Fields.Empty() {
		buf.WriteByte(' ')
		for i, field := range entry.Fields.Fields() {
			if i > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(Colorize(field.Key, t.FieldKeyColor, theme.None))
			buf.WriteByte('=')
			buf.WriteString(Colorize(field.Value, t.FieldValueColor, theme.None))
		}
	}

	return buf.String()
}
