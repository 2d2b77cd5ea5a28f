// Package sink provides output destinations for rendered log lines.
//
// A Sink accepts fully formatted strings; it never sees entries or
// themes. Four implementations are provided: ConsoleSink (a stream,
// stderr by default, flushed after every write), FileSink (append-mode
// file with a transparent stderr fallback when the file cannot be
// opened), StringSink (in-memory capture for tests), and MultiplexSink
// (fan-out to several sinks with per-delegate failure isolation).
//
// Thread safety is per implementation and documented on each type.
// StringSink serializes access internally; ConsoleSink and FileSink do
// not, so concurrent writers may interleave output.
package sink
