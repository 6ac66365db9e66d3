package shape

import (
	"bytes"
	"time"
)

// EqualPtr reports whether a and b are both nil or point to equal values.
func EqualPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// EqualTime compares optional timestamps by instant.
func EqualTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// EqualBytes compares optional blobs. A nil blob differs from an empty one.
func EqualBytes(a, b []byte) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return bytes.Equal(a, b)
}

// EqualValue compares comparable list elements.
func EqualValue[T comparable](a, b T) bool {
	return a == b
}

// EqualList reports whether both lists are unset, or both are set and hold
// equal elements in the same order.
func EqualList[T any](a, b List[T], eq func(x, y T) bool) bool {
	if a.set != b.set {
		return false
	}
	if len(a.items) != len(b.items) {
		return false
	}
	for i := range a.items {
		if !eq(a.items[i], b.items[i]) {
			return false
		}
	}
	return true
}
