// Package orchestrator drives the startup lifecycle of a component manifest: it resolves the
// build order, constructs and wires every component, runs their hooks and drains the async ones.
package orchestrator

import (
	"fmt"
	"sync"
	"time"

	"go.trai.ch/boot/internal/core/domain"
	"go.trai.ch/boot/internal/core/ports"
	"go.trai.ch/boot/internal/engine/registry"
	"go.trai.ch/zerr"
)

// State is the lifecycle state of an Orchestrator.
type State string

const (
	// StateUninitialized accepts pre-seeded instances and waits for Initialize.
	StateUninitialized State = "Uninitialized"
	// StateInitializing is held while Initialize runs.
	StateInitializing State = "Initializing"
	// StateInitialized exposes every instance.
	StateInitialized State = "Initialized"
	// StateFailed is terminal; no instance is exposed.
	StateFailed State = "Failed"
)

// LoggerID is the identity under which a logger may be pre-seeded for components.
var LoggerID = domain.NewIdentity("boot.Logger")

// Orchestrator owns one startup lifecycle.
type Orchestrator struct {
	logger       ports.Logger
	workers      int
	drainTimeout time.Duration

	registry *registry.Registry

	mu     sync.RWMutex
	state  State
	report Report
}

// New creates an Orchestrator in StateUninitialized.
func New(opts ...Option) *Orchestrator {
	o := &Orchestrator{
		logger:       nopLogger{},
		workers:      DefaultWorkers,
		drainTimeout: DefaultDrainTimeout,
		registry:     registry.New(),
		state:        StateUninitialized,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// State returns the current lifecycle state.
func (o *Orchestrator) State() State {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.state
}

// RegisterInstance pre-seeds an instance for id.
// Components depending on id receive it without a manifest entry, and a manifest entry for id
// is not constructed again.
func (o *Orchestrator) RegisterInstance(id domain.Identity, instance any) error {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if o.state != StateUninitialized {
		return zerr.With(zerr.Wrap(domain.ErrAlreadyInitialized, "cannot register instances after initialization started"),
			"component", id.String())
	}
	if instance == nil {
		return zerr.With(zerr.Wrap(domain.ErrInvalidComponent, "instance is nil"), "component", id.String())
	}
	return o.registry.Register(id, instance)
}

// Plan resolves the build order of m against the instances registered so far without
// constructing anything.
func (o *Orchestrator) Plan(m *domain.Manifest) (domain.BuildOrder, error) {
	return domain.Resolve(m, o.registry.Has)
}

// GetInstance returns the instance of id. It is only valid once Initialize succeeded.
func (o *Orchestrator) GetInstance(id domain.Identity) (any, error) {
	o.mu.RLock()
	state := o.state
	o.mu.RUnlock()

	if state != StateInitialized {
		return nil, zerr.With(zerr.Wrap(domain.ErrNotInitialized, "instances are not available"), "state", string(state))
	}
	return o.registry.Get(id)
}

// Get returns the instance of id asserted to T.
func Get[T any](o *Orchestrator, id domain.Identity) (T, error) {
	var zero T
	v, err := o.GetInstance(id)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		err := zerr.With(zerr.New("instance has unexpected type"), "component", id.String())
		return zero, zerr.With(err, "type", fmt.Sprintf("%T", v))
	}
	return t, nil
}

// Report returns the summary of the last Initialize call.
func (o *Orchestrator) Report() Report {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.report.clone()
}
