package orchestrator

import (
	"fmt"
	"slices"
	"time"

	"go.trai.ch/boot/internal/core/domain"
)

// HookFailure records a synchronous hook that returned an error or panicked.
type HookFailure struct {
	Component domain.Identity
	Method    string
	Err       error
}

func (f HookFailure) String() string {
	return fmt.Sprintf("%s#%s: %v", f.Component, f.Method, f.Err)
}

// Report summarizes one Initialize call.
type Report struct {
	// Order is the resolved build order.
	Order []domain.Identity
	// Seeded lists components of the order whose construction was skipped because an
	// instance was registered beforehand.
	Seeded []domain.Identity
	// HookFailures lists failed synchronous hooks in execution order.
	HookFailures []HookFailure
	// AsyncHooks is the number of hooks handed to the pool.
	AsyncHooks int
	// Abandoned is the number of async hooks still queued or running when the drain ended.
	Abandoned int

	InitDuration  time.Duration
	DrainDuration time.Duration
}

func (r Report) clone() Report {
	r.Order = slices.Clone(r.Order)
	r.Seeded = slices.Clone(r.Seeded)
	r.HookFailures = slices.Clone(r.HookFailures)
	return r
}
