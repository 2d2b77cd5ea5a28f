package sink

import (
	"io"
	"os"
	"sync"
)

// FileSink writes lines to a file opened in append mode. When the file
// cannot be opened at construction, the sink falls back transparently
// to stderr and marks itself as not owning the stream, so Close never
// touches what it did not open.
//
// FileSink does not serialize access; concurrent writers may interleave
// output.
type FileSink struct {
	path      string
	file      *os.File
	w         io.Writer
	owns      bool
	closeOnce sync.Once
}

// NewFileSink creates a file sink for the given path. Construction
// never fails: open errors degrade to the stderr fallback.
func NewFileSink(path string) *FileSink {
	s := &FileSink{path: path}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		s.w = os.Stderr
		return s
	}
	s.file = f
	s.w = f
	s.owns = true
	return s
}

// Path returns the path the sink was constructed with.
func (s *FileSink) Path() string {
	return s.path
}

// Owns reports whether the sink owns its destination. False means the
// open failed and writes go to the stderr fallback.
func (s *FileSink) Owns() bool {
	return s.owns
}

// Write writes the line followed by a newline.
func (s *FileSink) Write(line string) error {
	if _, err := io.WriteString(s.w, line); err != nil {
		return err
	}
	_, err := io.WriteString(s.w, "\n")
	return err
}

// Flush syncs the owned file handle. The stderr fallback is unbuffered
// and needs none.
func (s *FileSink) Flush() error {
	if s.owns {
		return s.file.Sync()
	}
	return nil
}

// Close releases the owned file handle exactly once. It is a no-op for
// a fallback sink.
func (s *FileSink) Close() error {
	var err error
	s.closeOnce.Do(func() {
		if s.owns {
			err = s.file.Close()
		}
	})
	return err
}
