// Package enum implements string-backed enumerations with reverse lookup.
package enum

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedValue is returned when a wire string does not name a
// known value of an enum.
var ErrUnrecognizedValue = errors.New("unrecognized value")

// UnrecognizedValueError reports the enum and the rejected input.
type UnrecognizedValueError struct {
	Enum  string
	Value string
}

func (e *UnrecognizedValueError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: value cannot be empty", e.Enum)
	}
	return fmt.Sprintf("%s: %s %q", e.Enum, ErrUnrecognizedValue, e.Value)
}

// Unwrap lets errors.Is match ErrUnrecognizedValue.
func (e *UnrecognizedValueError) Unwrap() error {
	return ErrUnrecognizedValue
}

// Table maps wire strings to the values of one enum. It is built once and
// never written afterwards.
type Table[E ~string] struct {
	name   string
	values []E
	index  map[string]E
}

// NewTable builds the lookup table for an enum from its values, in order.
func NewTable[E ~string](name string, values ...E) *Table[E] {
	t := &Table[E]{
		name:   name,
		values: make([]E, len(values)),
		index:  make(map[string]E, len(values)),
	}
	copy(t.values, values)
	for _, v := range values {
		t.index[string(v)] = v
	}
	return t
}

// Name returns the enum name.
func (t *Table[E]) Name() string {
	return t.name
}

// Parse returns the value whose wire string is s. Matching is exact.
func (t *Table[E]) Parse(s string) (E, error) {
	if v, ok := t.index[s]; ok && s != "" {
		return v, nil
	}
	return "", &UnrecognizedValueError{Enum: t.name, Value: s}
}

// Values returns the values in definition order.
func (t *Table[E]) Values() []E {
	out := make([]E, len(t.values))
	copy(out, t.values)
	return out
}

// Strings returns the wire strings in definition order.
func (t *Table[E]) Strings() []string {
	out := make([]string, len(t.values))
	for i, v := range t.values {
		out[i] = string(v)
	}
	return out
}

// Valid reports whether s is a wire string of this enum.
func (t *Table[E]) Valid(s string) bool {
	_, err := t.Parse(s)
	return err == nil
}
