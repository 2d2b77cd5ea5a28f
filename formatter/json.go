package formatter

import (
	"bytes"
	"time"

	"github.com/redthing1/redlog/core"
)

// JSONFormatter renders entries as single-line JSON objects:
//
//	{"timestamp":"...","level":"error","source":"http","message":"failed","fields":{"status":"500"}}
//
// The fields key is omitted when the entry has no fields. When the
// FieldSet contains duplicate keys, the JSON object keeps the position
// of the first occurrence and the value of the last one; this diverges
// from the text formatters, which render every duplicate.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format renders the entry as a compact JSON object.
func (f *JSONFormatter) Format(entry *core.Entry) string {
	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteString(`{"timestamp":"`)
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), time.RFC3339Nano))
	buf.WriteString(`","level":"`)
	buf.WriteString(entry.Level.String())
	buf.WriteString(`","source":"`)
	appendJSONString(buf, entry.Source)
	buf.WriteString(`","message":"`)
	appendJSONString(buf, entry.Message)
	buf.WriteByte('"')

	if !entry.Fields.Empty() {
		buf.WriteString(`,"fields":{`)
		for i, field := range dedupeFields(entry.Fields.Fields()) {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('"')
			appendJSONString(buf, field.Key)
			buf.WriteString(`":"`)
			appendJSONString(buf, field.Value)
			buf.WriteByte('"')
		}
		buf.WriteByte('}')
	}

	buf.WriteByte('}')
	return buf.String()
}

// dedupeFields collapses duplicate keys: the first occurrence keeps
// its position, the last occurrence keeps its value.
func dedupeFields(fields []core.Field) []core.Field {
	index := make(map[string]int, len(fields))
	out := make([]core.Field, 0, len(fields))
	for _, f := range fields {
		if i, ok := index[f.Key]; ok {
			out[i].Value = f.Value
			continue
		}
		index[f.Key] = len(out)
		out = append(out, f)
	}
	return out
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// appendJSONString writes a JSON-escaped string (without surrounding
// quotes) to the buffer.
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}
