package sink

import (
	"strings"
	"sync"
)

// StringSink captures every written line in order for later
// inspection. It is primarily a test aid.
//
// StringSink serializes access internally and is safe for concurrent
// writers.
type StringSink struct {
	mu    sync.Mutex
	lines []string
}

// NewStringSink creates an empty string sink.
func NewStringSink() *StringSink {
	return &StringSink{}
}

// Write appends the line to the capture buffer.
func (s *StringSink) Write(line string) error {
	s.mu.Lock()
	s.lines = append(s.lines, line)
	s.mu.Unlock()
	return nil
}

// Flush is a no-op.
func (s *StringSink) Flush() error {
	return nil
}

// Close is a no-op; the capture buffer stays readable.
func (s *StringSink) Close() error {
	return nil
}

// Output returns the captured lines joined by newlines.
func (s *StringSink) Output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Join(s.lines, "\n")
}

// Lines returns a copy of the captured lines in write order.
func (s *StringSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Clear discards all captured lines.
func (s *StringSink) Clear() {
	s.mu.Lock()
	s.lines = s.lines[:0]
	s.mu.Unlock()
}
