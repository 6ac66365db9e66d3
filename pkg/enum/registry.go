package enum

import (
	"slices"
	"sync"
)

// Lookup is the type-erased view of a Table used by tooling.
type Lookup interface {
	Name() string
	Strings() []string
	Valid(s string) bool
}

// Registry holds enum tables by name.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]Lookup
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[string]Lookup)}
}

// Register adds a table under its name.
func (r *Registry) Register(l Lookup) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[l.Name()] = l
}

// Get returns a table by enum name.
func (r *Registry) Get(name string) (Lookup, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.tables[name]
	return l, ok
}

// Names returns all registered enum names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Parse validates s against the named enum.
func (r *Registry) Parse(name, s string) (string, error) {
	l, ok := r.Get(name)
	if !ok {
		return "", &UnknownEnumError{Name: name}
	}
	if !l.Valid(s) {
		return "", &UnrecognizedValueError{Enum: name, Value: s}
	}
	return s, nil
}

// UnknownEnumError is returned when no enum is registered under Name.
type UnknownEnumError struct {
	Name string
}

func (e *UnknownEnumError) Error() string {
	return "unknown enum " + e.Name
}
