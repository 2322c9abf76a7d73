package engine

import (
	"errors"
	"fmt"
	"slices"
)

// Factory builds a new engine instance.
type Factory func() (Engine, error)

// Registry maps engine names to their factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under name.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return errors.New("empty engine name")
	}

	if factory == nil {
		return errors.New("nil factory")
	}

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%w: %s", errDuplicateEngine, name)
	}

	r.factories[name] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic("engine registry: " + err.Error())
	}
}

// Lookup returns the factory for name, or nil.
func (r *Registry) Lookup(name string) Factory {
	return r.factories[name]
}

// New builds the engine registered under name.
func (r *Registry) New(name string) (Engine, error) {
	factory := r.factories[name]
	if factory == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
	return factory()
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
