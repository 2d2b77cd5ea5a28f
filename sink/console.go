package sink

import (
	"io"
	"os"
)

// flusher is implemented by buffered writers such as bufio.Writer.
type flusher interface {
	Flush() error
}

// ConsoleSink writes lines to a stream, stderr by default, flushing
// after every write. There is no internal buffering; correctness over
// throughput for a diagnostic tool.
//
// ConsoleSink does not serialize access: the write-then-flush pair is
// not atomic, so concurrent writers may interleave output. That is an
// accepted outcome, not a crash.
type ConsoleSink struct {
	w io.Writer
}

// NewConsoleSink creates a console sink. A nil writer means stderr.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	if w == nil {
		w = os.Stderr
	}
	return &ConsoleSink{w: w}
}

// Write writes the line followed by a newline and flushes.
func (s *ConsoleSink) Write(line string) error {
	if _, err := io.WriteString(s.w, line); err != nil {
		return err
	}
	if _, err := io.WriteString(s.w, "\n"); err != nil {
		return err
	}
	return s.Flush()
}

// Flush flushes the stream when it is buffered. *os.File writes are
// unbuffered, so the default stderr stream needs none.
func (s *ConsoleSink) Flush() error {
	if f, ok := s.w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// Close is a no-op; the sink does not own its stream.
func (s *ConsoleSink) Close() error {
	return nil
}
