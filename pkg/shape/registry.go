package shape

import (
	"fmt"
	"slices"
	"sync"
)

// Shape is implemented by every generated model type.
type Shape interface {
	fmt.Stringer
	ShapeName() string
	Hash() int32
}

// Factory returns a new, empty shape.
type Factory func() Shape

// Registry holds shape factories by name.
var (
	registry = make(map[string]Factory)
	mu       sync.RWMutex
)

// Register adds a shape factory under name.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = f
}

// New constructs an empty shape by name.
func New(name string) (Shape, bool) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := registry[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Names returns all registered shape names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Clear removes all shapes from the registry. Used for testing.
func Clear() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Factory)
}
