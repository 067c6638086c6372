// Package registry holds the instances created or pre-seeded for an orchestrator run.
package registry

import (
	"sync"

	"go.trai.ch/boot/internal/core/domain"
	"go.trai.ch/zerr"
)

type phase uint8

const (
	phaseOpen     phase = iota // external registration allowed
	phaseSealed                // only the writer may add instances
	phaseReadOnly              // no further additions
)

// Registry maps identities to instances.
// Reads are safe from any goroutine.
type Registry struct {
	mu        sync.RWMutex
	instances map[domain.Identity]any
	order     []domain.Identity
	phase     phase
}

// New creates an empty, open Registry.
func New() *Registry {
	return &Registry{instances: make(map[domain.Identity]any)}
}

// Register adds a pre-built instance.
// It fails once the registry is sealed or when id is already present.
func (r *Registry) Register(id domain.Identity, instance any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != phaseOpen {
		return zerr.With(zerr.Wrap(domain.ErrAlreadyInitialized, "registry is sealed"), "component", id.String())
	}
	return r.put(id, instance)
}

// Get returns the instance registered for id.
func (r *Registry) Get(id domain.Identity) (any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	instance, ok := r.instances[id]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnresolvedDependency, "no instance registered"), "component", id.String())
	}
	return instance, nil
}

// Has reports whether an instance is registered for id.
func (r *Registry) Has(id domain.Identity) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.instances[id]
	return ok
}

// Len returns the number of registered instances.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.instances)
}

// Identities returns the registered identities in registration order.
func (r *Registry) Identities() []domain.Identity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Identity(nil), r.order...)
}

// Seal closes external registration and returns the only Writer allowed to add instances.
func (r *Registry) Seal() (*Writer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != phaseOpen {
		return nil, zerr.Wrap(domain.ErrAlreadyInitialized, "registry is already sealed")
	}
	r.phase = phaseSealed
	return &Writer{r: r}, nil
}

func (r *Registry) put(id domain.Identity, instance any) error {
	if _, exists := r.instances[id]; exists {
		return zerr.With(zerr.Wrap(domain.ErrDuplicateDependency, "instance already registered"), "component", id.String())
	}
	r.instances[id] = instance
	r.order = append(r.order, id)
	return nil
}

// Writer adds constructed instances to a sealed Registry.
type Writer struct {
	r *Registry
}

// Put adds the instance built for id.
func (w *Writer) Put(id domain.Identity, instance any) error {
	w.r.mu.Lock()
	defer w.r.mu.Unlock()

	if w.r.phase != phaseSealed {
		return zerr.With(zerr.Wrap(domain.ErrAlreadyInitialized, "registry is read-only"), "component", id.String())
	}
	return w.r.put(id, instance)
}

// Close makes the registry read-only.
func (w *Writer) Close() {
	w.r.mu.Lock()
	defer w.r.mu.Unlock()
	w.r.phase = phaseReadOnly
}
