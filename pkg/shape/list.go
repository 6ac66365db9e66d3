// Package shape provides the runtime shared by generated EC2 model shapes:
// presence-aware lists, hashing, equality, string rendering and the shape
// registry.
package shape

// List is an ordered collection that remembers whether it was ever set.
// The zero value is an unset list. Duplicates are kept and insertion order
// is preserved.
type List[T any] struct {
	items []T
	set   bool
}

// NewList returns a set list holding a copy of items.
func NewList[T any](items ...T) List[T] {
	l := List[T]{items: make([]T, len(items)), set: true}
	copy(l.items, items)
	return l
}

// Set replaces the contents with a copy of items.
// A nil slice returns the list to the unset state.
func (l *List[T]) Set(items []T) {
	if items == nil {
		l.items = nil
		l.set = false
		return
	}
	l.items = make([]T, len(items))
	copy(l.items, items)
	l.set = true
}

// Append adds items to the end of the list, creating it on first use.
func (l *List[T]) Append(items ...T) {
	if !l.set {
		l.items = make([]T, 0, len(items))
		l.set = true
	}
	l.items = append(l.items, items...)
}

// Items returns the backing slice. It is nil when the list is unset and
// non-nil (possibly empty) once set.
func (l List[T]) Items() []T {
	return l.items
}

// IsSet reports whether the list was explicitly set, even to empty.
func (l List[T]) IsSet() bool {
	return l.set
}

// Len returns the number of items.
func (l List[T]) Len() int {
	return len(l.items)
}

// Clone returns a list with its own backing array.
func (l List[T]) Clone() List[T] {
	if !l.set {
		return List[T]{}
	}
	return NewList(l.items...)
}
