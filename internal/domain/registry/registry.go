// Package registry defines the interface for resolving named scoring models.
package registry

import (
	"context"
	"sort"
	"sync"

	"github.com/okian/sibyl/internal/domain/scoring"
)

// Registry resolves model names to scorers. Registration happens once at
// process startup; lookups run on the request hot path and must be safe for
// concurrent use.
type Registry interface {
	// Register binds a scorer to a name. Registering an existing name fails.
	Register(ctx context.Context, name string, s scoring.Scorer) error

	// Resolve returns the scorer for name. Unknown or empty names fall back
	// to the default model; exact reports whether the name matched directly.
	Resolve(ctx context.Context, name string) (s scoring.Scorer, exact bool, err error)

	// Names returns the registered model names in sorted order.
	Names(ctx context.Context) []string

	Size() int
}

// inMemoryRegistry implements Registry with a mutex-guarded map. The write
// path exists only during startup; afterwards the map is effectively
// read-only.
type inMemoryRegistry struct {
	mu          sync.RWMutex
	models      map[string]scoring.Scorer
	defaultName string
}

// NewInMemoryRegistry creates a registry with configuration options.
func NewInMemoryRegistry(opts ...Option) Registry {
	r := &inMemoryRegistry{
		models:      make(map[string]scoring.Scorer),
		defaultName: "linear",
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register binds a scorer to a name.
func (r *inMemoryRegistry) Register(ctx context.Context, name string, s scoring.Scorer) error {
	if name == "" {
		return ErrEmptyName
	}
	if s == nil {
		return ErrNilScorer
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.models[name]; exists {
		return ErrAlreadyRegistered
	}
	r.models[name] = s
	return nil
}

// Resolve returns the scorer for name, falling back to the default model
// for unknown or empty names.
func (r *inMemoryRegistry) Resolve(ctx context.Context, name string) (scoring.Scorer, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if name != "" {
		if s, ok := r.models[name]; ok {
			return s, true, nil
		}
	}

	s, ok := r.models[r.defaultName]
	if !ok {
		return nil, false, ErrNoDefaultModel
	}
	return s, name == r.defaultName, nil
}

// Names returns the registered model names in sorted order.
func (r *inMemoryRegistry) Names(ctx context.Context) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Size returns the number of registered models.
func (r *inMemoryRegistry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.models)
}
