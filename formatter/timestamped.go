package formatter

import (
	"github.com/redthing1/redlog/core"
	"github.com/redthing1/redlog/theme"
)

// TimestampedFormatter renders entries with a wall-clock prefix:
//
//	[HH:MM:SS] source lvl: message [key=value, key=value]
//
// Unlike the Default formatter, fields are comma-joined inside a single
// bracket pair.
type TimestampedFormatter struct {
	Theme theme.Theme
}

// NewTimestampedFormatter creates a TimestampedFormatter bound to the
// given theme.
func NewTimestampedFormatter(t theme.Theme) *TimestampedFormatter {
	return &TimestampedFormatter{Theme: t}
}

// Format renders the entry with a timestamp prefix.
func (f *TimestampedFormatter) Format(entry *core.Entry) string {
	t := f.Theme
	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteByte('[')
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), "15:04:05"))
	buf.WriteByte(']')

	if entry.Source != "" {
		buf.WriteByte(' ')
		buf.WriteString(Colorize(entry.Source, t.SourceColor, t.SourceBGColor))
	}

	buf.WriteByte(' ')
	buf.WriteString(Colorize(entry.Level.Short(), t.LevelColor(entry.Level), theme.None))
	buf.WriteString(": ")
	buf.WriteString(Colorize(entry.Message, t.MessageColor, theme.None))

	if !entry.Fields.Empty() {
		buf.WriteString(" [")
		for i, field := range entry.Fields.Fields() {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(Colorize(field.Key, t.FieldKeyColor, theme.None))
			buf.WriteByte('=')
			buf.WriteString(Colorize(field.Value, t.FieldValueColor, theme.None))
		}
		buf.WriteByte(']')
	}

	return buf.String()
}
