package engine

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnknownEntity is returned by Registry.Create for unregistered names.
var ErrUnknownEntity = errors.New("unknown entity")

// Config is the per-thing configuration read by entity factories.
type Config interface {
	String(key, def string) string
	Int(key string, def int) int
	Float(key string, def float32) float32
}

// Factory creates an entity from its level configuration.
type Factory func(cfg Config) (Entity, error)

// Registry maps thing type names to factories. It is built once at start-up
// and handed to the game.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory. Registering a name twice panics.
func (r *Registry) Register(name string, factory Factory) {
	if _, exists := r.factories[name]; exists {
		panic(fmt.Sprintf("entity %q already registered", name))
	}
	r.factories[name] = factory
}

// Create looks up a registered entity by name and creates it with cfg.
func (r *Registry) Create(name string, cfg Config) (Entity, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, name)
	}
	e, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("create %q: %w", name, err)
	}
	return e, nil
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.factories))
}
