package orchestrator

import (
	"time"

	"go.trai.ch/boot/internal/core/ports"
)

const (
	// DefaultWorkers is the number of async hooks allowed to run at once.
	DefaultWorkers = 4
	// DefaultDrainTimeout bounds how long Initialize waits for async hooks.
	DefaultDrainTimeout = 5 * time.Second
)

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger used for lifecycle events and hook failures.
func WithLogger(logger ports.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithWorkers bounds the number of concurrently running async hooks. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(o *Orchestrator) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithDrainTimeout sets how long Initialize waits for async hooks. Non-positive values are ignored.
func WithDrainTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d > 0 {
			o.drainTimeout = d
		}
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(error, ...any)  {}
