package sink

import "go.uber.org/multierr"

// MultiplexSink fans every write and flush out to a set of delegate
// sinks. A failing delegate is isolated: its error is swallowed so one
// broken sink cannot prevent delivery to its siblings.
type MultiplexSink struct {
	sinks []Sink
}

// NewMultiplexSink creates a multiplex sink over the given delegates.
func NewMultiplexSink(sinks ...Sink) *MultiplexSink {
	return &MultiplexSink{sinks: sinks}
}

// Add appends a delegate sink.
func (s *MultiplexSink) Add(sink Sink) {
	s.sinks = append(s.sinks, sink)
}

// Write delivers the line to every delegate, ignoring individual
// failures.
func (s *MultiplexSink) Write(line string) error {
	for _, sink := range s.sinks {
		_ = sink.Write(line)
	}
	return nil
}

// Flush flushes every delegate, ignoring individual failures.
func (s *MultiplexSink) Flush() error {
	for _, sink := range s.sinks {
		_ = sink.Flush()
	}
	return nil
}

// Close closes every delegate and returns their combined errors.
func (s *MultiplexSink) Close() error {
	var err error
	for _, sink := range s.sinks {
		err = multierr.Append(err, sink.Close())
	}
	return err
}
