package formatter

import (
	"bytes"
	"sync"

	"github.com/redthing1/redlog/core"
)

// Formatter renders a log entry into a string. Implementations must be
// pure: no side effects, no retained references to the entry.
type Formatter interface {
	Format(entry *core.Entry) string
}

// bufferPool recycles scratch buffers across Format calls.
var bufferPool = sync.Pool{
	New: func() any {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
