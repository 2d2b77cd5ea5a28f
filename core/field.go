package core

// Field is a key-value annotation attached to a log call or logger.
// The value is converted to a string at construction time; there is no
// typed storage and no lazy evaluation.
type Field struct {
	Key   string
	Value string
}

// F creates a Field, converting the value through Stringify.
func F(key string, value any) Field {
	return Field{Key: key, Value: Stringify(value)}
}

// FieldSet is an ordered collection of fields. Insertion order is
// preserved and duplicate keys are kept; rendering order follows
// insertion order.
//
// Two construction disciplines coexist: Add and Merge mutate the
// receiver in place for transient accumulation, while WithField and
// WithFields return a new FieldSet backed by a fresh array, leaving the
// receiver untouched. Loggers share FieldSets across goroutines and
// rely on the persistent variant.
type FieldSet struct {
	fields []Field
}

// NewFieldSet creates a FieldSet from the given fields.
func NewFieldSet(fields ...Field) FieldSet {
	return FieldSet{fields: fields}
}

// Add appends a field in place.
func (fs *FieldSet) Add(f Field) {
	fs.fields = append(fs.fields, f)
}

// Merge appends all fields from another set in place.
func (fs *FieldSet) Merge(other FieldSet) {
	fs.fields = append(fs.fields, other.fields...)
}

// WithField returns a new FieldSet with one additional field. The
// receiver is not modified and shares no backing storage with the
// result.
func (fs FieldSet) WithField(f Field) FieldSet {
	fields := make([]Field, len(fs.fields)+1)
	copy(fields, fs.fields)
	fields[len(fs.fields)] = f
	return FieldSet{fields: fields}
}

// WithFields returns a new FieldSet with the given fields appended. The
// receiver is not modified.
func (fs FieldSet) WithFields(extra ...Field) FieldSet {
	fields := make([]Field, len(fs.fields)+len(extra))
	copy(fields, fs.fields)
	copy(fields[len(fs.fields):], extra)
	return FieldSet{fields: fields}
}

// Fields returns the underlying field slice in insertion order.
func (fs FieldSet) Fields() []Field {
	return fs.fields
}

// Len returns the number of fields.
func (fs FieldSet) Len() int {
	return len(fs.fields)
}

// Empty reports whether the set has no fields.
func (fs FieldSet) Empty() bool {
	return len(fs.fields) == 0
}

// reset truncates the set for reuse, keeping the backing array.
func (fs *FieldSet) reset() {
	fs.fields = fs.fields[:0]
}
