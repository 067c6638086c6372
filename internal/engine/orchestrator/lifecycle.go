package orchestrator

import (
	"context"
	"errors"
	"reflect"
	"time"

	"go.trai.ch/boot/internal/core/domain"
	"go.trai.ch/boot/internal/engine/registry"
	"go.trai.ch/zerr"
)

// Initialize resolves the build order of m, constructs every component in that order, injects
// fields, runs hooks by priority and drains async hooks. It may be called once.
// A returned error leaves the orchestrator in StateFailed.
func (o *Orchestrator) Initialize(ctx context.Context, m *domain.Manifest) error {
	o.mu.Lock()
	if o.state != StateUninitialized {
		state := o.state
		o.mu.Unlock()
		return zerr.With(zerr.Wrap(domain.ErrAlreadyInitialized, "initialize called twice"), "state", string(state))
	}
	o.state = StateInitializing
	o.mu.Unlock()

	report, err := o.initialize(ctx, m)

	o.mu.Lock()
	defer o.mu.Unlock()
	o.report = report
	if err != nil {
		o.state = StateFailed
		return err
	}
	o.state = StateInitialized
	return nil
}

func (o *Orchestrator) initialize(ctx context.Context, m *domain.Manifest) (Report, error) {
	var report Report
	start := time.Now()

	writer, err := o.registry.Seal()
	if err != nil {
		return report, err
	}

	o.logger.Info("resolving build order", "components", m.Len())
	order, err := domain.Resolve(m, o.registry.Has)
	if err != nil {
		writer.Close()
		return report, err
	}
	report.Order = order.Identities()
	o.logger.Debug("build order resolved", "order", report.Order)

	o.logger.Info("creating instances")
	report.Seeded, err = o.instantiate(order, writer)
	writer.Close()
	if err != nil {
		return report, err
	}

	o.logger.Info("injecting fields")
	if err := o.inject(order); err != nil {
		return report, err
	}

	o.logger.Info("running hooks")
	p := newPool(o.workers, o.logger)
	report.HookFailures, report.AsyncHooks = o.runHooks(order, p)
	report.InitDuration = time.Since(start)
	o.logger.Info("components initialized", "components", len(order), "elapsed", report.InitDuration)

	drainStart := time.Now()
	report.Abandoned = p.Shutdown(ctx, o.drainTimeout)
	report.DrainDuration = time.Since(drainStart)
	if report.Abandoned > 0 {
		o.logger.Warn("async hooks still running after drain, abandoning them",
			"abandoned", report.Abandoned, "timeout", o.drainTimeout)
	}
	o.logger.Info("async hooks drained", "elapsed", report.DrainDuration)

	return report, nil
}

func (o *Orchestrator) instantiate(order domain.BuildOrder, writer *registry.Writer) ([]domain.Identity, error) {
	var seeded []domain.Identity
	for _, d := range order {
		if o.registry.Has(d.ID) {
			o.logger.Info("component already registered, skipping construction", "component", d.ID.String())
			seeded = append(seeded, d.ID)
			continue
		}

		instance, err := o.construct(d)
		if err != nil {
			return seeded, err
		}
		if err := writer.Put(d.ID, instance); err != nil {
			return seeded, err
		}
		o.logger.Debug("component constructed", "component", d.ID.String())
	}
	return seeded, nil
}

func (o *Orchestrator) construct(d *domain.ComponentDescriptor) (instance any, err error) {
	ctor, err := d.Designated()
	if err != nil {
		return nil, err
	}

	args := make(domain.Args, len(ctor.Params))
	for i, p := range ctor.Params {
		v, err := o.registry.Get(p)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "requester", d.ID.String()), "constructor", ctor.Name)
		}
		args[i] = v
	}

	defer zerr.Defer(func(panicErr error) {
		instance = nil
		err = constructionFailed(d, ctor, panicErr)
	})

	instance, err = ctor.Build(args)
	if err != nil {
		return nil, constructionFailed(d, ctor, err)
	}
	if isNil(instance) {
		return nil, constructionFailed(d, ctor, zerr.New("constructor returned no instance"))
	}
	return instance, nil
}

func constructionFailed(d *domain.ComponentDescriptor, ctor domain.Constructor, cause error) error {
	err := zerr.With(zerr.Wrap(domain.ErrConstructionFailed, "failed to construct component"), "component", d.ID.String())
	err = zerr.With(err, "constructor", ctor.Name)
	return errors.Join(err, cause)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func (o *Orchestrator) inject(order domain.BuildOrder) error {
	for _, d := range order {
		if len(d.Fields) == 0 {
			continue
		}
		instance, err := o.registry.Get(d.ID)
		if err != nil {
			return err
		}
		for _, f := range d.Fields {
			value, err := o.registry.Get(f.Dependency)
			if err != nil {
				return zerr.With(zerr.With(err, "requester", d.ID.String()), "field", f.Field)
			}
			if err := f.Assign(instance, value); err != nil {
				wrapped := zerr.With(zerr.Wrap(domain.ErrInvalidComponent, "failed to inject field"), "component", d.ID.String())
				return errors.Join(zerr.With(wrapped, "field", f.Field), err)
			}
		}
	}
	return nil
}

// runHooks runs the hooks of every component in build order. Synchronous hooks run inline and
// their failures are collected; async hooks are handed to p.
func (o *Orchestrator) runHooks(order domain.BuildOrder, p *pool) ([]HookFailure, int) {
	var (
		failures []HookFailure
		async    int
	)
	for _, d := range order {
		instance, err := o.registry.Get(d.ID)
		if err != nil {
			o.logger.Warn("component has no instance, skipping its hooks", "component", d.ID.String())
			continue
		}
		for _, h := range d.SortedHooks() {
			name := d.ID.String() + "#" + h.Method
			if h.Async {
				if p.Submit(name, func() error { return h.Invoke(instance) }) {
					async++
				}
				continue
			}
			if err := invokeHook(h, instance); err != nil {
				o.logger.Error(err, "component", d.ID.String(), "hook", h.Method)
				failures = append(failures, HookFailure{Component: d.ID, Method: h.Method, Err: err})
			}
		}
	}
	return failures, async
}

func invokeHook(h domain.HookDescriptor, instance any) (err error) {
	defer zerr.Defer(func(panicErr error) {
		err = zerr.With(panicErr, "hook", h.Method)
	})
	return h.Invoke(instance)
}
