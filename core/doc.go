// Package core defines the shared value types used across redlog.
//
// It provides the Level type for severity filtering, the Field and
// FieldSet types for stringified key-value annotations, and the Entry
// type that represents a single fully-resolved log event.
//
// Field values are converted to display strings eagerly at construction
// time via Stringify. There is no lazy formatting and no typed value
// storage; a Field is two strings, nothing more.
//
// Entry objects are pooled via sync.Pool to keep the emission path
// allocation-light. Callers get an Entry with GetEntry and must return
// it with PutEntry once the formatter has consumed it.
package core
