package models

import (
	"bytes"
	"encoding/json"
)

// Optional tells an absent JSON key apart from an explicit null.
type Optional[T any] struct {
	Set   bool // key present in the body
	Value *T   // nil when the key was null
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns a present Optional holding JSON null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON records presence; encoding/json only calls it for keys in the body.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	o.Value = nil
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// MarshalJSON writes the value or null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// Validatable exposes the held value to validator custom type funcs; nil for absent or null.
func (o Optional[T]) Validatable() interface{} {
	if o.Value == nil {
		return nil
	}
	return *o.Value
}
