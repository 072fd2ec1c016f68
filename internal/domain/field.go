package domain

import "encoding/json"

// Field is an optional value that remembers whether it was present when
// decoded. It lets a partial update tell "absent" apart from "set to null"
// for nullable references.
type Field[T any] struct {
	Set   bool
	Value T
}

// Some returns a Field holding v.
func Some[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// UnmarshalJSON marks the field present, including for a JSON null.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	return json.Unmarshal(data, &f.Value)
}

// MarshalJSON encodes the value. Callers should leave unset fields out.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Value)
}

// IsZero lets omitzero drop unset fields.
func (f Field[T]) IsZero() bool {
	return !f.Set
}
