package core

import (
	"sync"
	"time"
)

// Entry is a single fully-resolved log event. Entries are built once
// per emitted call, handed to a formatter, and never stored.
type Entry struct {
	Time    time.Time
	Level   Level
	Source  string
	Message string
	Fields  FieldSet
}

// entryPool recycles Entry objects between log calls.
var entryPool = sync.Pool{
	New: func() any {
		return &Entry{
			Fields: FieldSet{fields: make([]Field, 0, 8)},
		}
	},
}

// GetEntry retrieves a cleared Entry from the pool.
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Source = ""
	e.Message = ""
	e.Fields.reset()
	return e
}

// PutEntry returns an Entry to the pool. The entry must not be used
// after this call.
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Fields.reset()
	e.Message = ""
	e.Source = ""
	entryPool.Put(e)
}
