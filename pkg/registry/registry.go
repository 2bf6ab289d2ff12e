package registry

import (
	"slices"
	"sync"

	"github.com/aretw0/factory/pkg/record"
	"github.com/aretw0/factory/pkg/schema"
)

// Registry is the namespace record types are registered under.
// It lives as long as the generator that owns it and is never cleared.
type Registry struct {
	mu        sync.RWMutex
	namespace string
	types     map[string]*record.Type
	order     []string
}

// Option configures a Registry.
type Option func(*Registry)

// WithNamespace qualifies every registered name, so "Test" displays as
// "<namespace>::Test".
func WithNamespace(namespace string) Option {
	return func(r *Registry) {
		r.namespace = namespace
	}
}

// New creates a new empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		types: make(map[string]*record.Type),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Namespace returns the qualifier applied to registered names.
func (r *Registry) Namespace() string {
	return r.namespace
}

// Register binds name to t. Registering a name twice is an error, as is a
// name that is not a constant name.
func (r *Registry) Register(name string, t *record.Type) error {
	if !schema.IsConstantName(name) {
		return record.Errorf(record.KindInvalidTypeName, name, "wrong constant name %s", name)
	}
	if t == nil {
		return record.Errorf(record.KindInvalidArguments, name, "nil type for %s", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[name]; exists {
		return record.Errorf(record.KindInvalidTypeName, name, "identifier %s is already defined", name)
	}
	r.types[name] = t
	r.order = append(r.order, name)
	return nil
}

// Lookup returns the type registered under name.
func (r *Registry) Lookup(name string) (*record.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[name]
	return t, ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.order)
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.types)
}
