package formatter

import "github.com/redthing1/redlog/core"

// PlainFormatter renders entries as simple space-joined text with no
// colors and no alignment:
//
//	[source] [lvl] message key=value key=value
type PlainFormatter struct{}

// NewPlainFormatter creates a PlainFormatter.
func NewPlainFormatter() *PlainFormatter {
	return &PlainFormatter{}
}

// Format renders the entry as plain text.
func (f *PlainFormatter) Format(entry *core.Entry) string {
	buf := getBuffer()
	defer putBuffer(buf)

	if entry.Source != "" {
		buf.WriteByte('[')
		buf.WriteString(entry.Source)
		buf.WriteString("] ")
	}
	buf.WriteByte('[')
	buf.WriteString(entry.Level.Short())
	buf.WriteString("] ")
	buf.WriteString(entry.Message)

	for _, field := range entry.Fields.Fields() {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.Value)
	}

	return buf.String()
}
