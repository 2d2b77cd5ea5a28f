package sink

// Sink is a destination for rendered log lines.
type Sink interface {
	// Write delivers one rendered line.
	Write(line string) error

	// Flush forces any buffered output to its destination.
	Flush() error

	// Close releases resources owned by the sink. Sinks that own no
	// resources return nil.
	Close() error
}
