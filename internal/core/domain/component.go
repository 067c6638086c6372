package domain

import (
	"cmp"
	"fmt"
	"slices"

	"go.trai.ch/zerr"
)

// Args holds the resolved constructor arguments, in the order of Constructor.Params.
type Args []any

// Arg returns the i-th argument asserted to T.
func Arg[T any](args Args, i int) (T, error) {
	var zero T
	if i < 0 || i >= len(args) {
		return zero, zerr.With(zerr.New("argument index out of range"), "index", i)
	}
	v, ok := args[i].(T)
	if !ok {
		return zero, zerr.With(
			zerr.With(zerr.New("argument has wrong type"), "index", i),
			"type", fmt.Sprintf("%T", args[i]),
		)
	}
	return v, nil
}

// Constructor is one way of building a component.
// Exactly one constructor of a component must be Designated.
type Constructor struct {
	Name       string
	Params     []Identity
	Designated bool
	Build      func(args Args) (any, error)
}

// Build adapts a typed factory into a Constructor build function.
func Build[T any](fn func(args Args) (T, error)) func(Args) (any, error) {
	return func(args Args) (any, error) {
		return fn(args)
	}
}

// FieldInjection wires one dependency into an already constructed instance.
type FieldInjection struct {
	Field      string
	Dependency Identity
	Assign     func(target, value any) error
}

// Field builds a FieldInjection from a typed setter.
func Field[T, D any](name string, dep Identity, set func(T, D)) FieldInjection {
	return FieldInjection{
		Field:      name,
		Dependency: dep,
		Assign: func(target, value any) error {
			t, ok := target.(T)
			if !ok {
				return zerr.With(zerr.New("injection target has wrong type"), "type", fmt.Sprintf("%T", target))
			}
			d, ok := value.(D)
			if !ok {
				return zerr.With(zerr.New("injected value has wrong type"), "type", fmt.Sprintf("%T", value))
			}
			set(t, d)
			return nil
		},
	}
}

// HookDescriptor is a post-construction action of a component.
// Lower priorities run first.
type HookDescriptor struct {
	Method   string
	Priority int
	Async    bool
	Invoke   func(instance any) error
}

// Hook builds a HookDescriptor from a typed method, usually a method expression such as (*Server).Start.
func Hook[T any](method string, priority int, async bool, fn func(T) error) HookDescriptor {
	return HookDescriptor{
		Method:   method,
		Priority: priority,
		Async:    async,
		Invoke: func(instance any) error {
			t, ok := instance.(T)
			if !ok {
				return zerr.With(zerr.New("hook receiver has wrong type"), "type", fmt.Sprintf("%T", instance))
			}
			return fn(t)
		},
	}
}

// ComponentDescriptor declares a component: how to build it, what to inject into it and
// which hooks to run afterwards.
type ComponentDescriptor struct {
	ID           Identity
	Constructors []Constructor
	Fields       []FieldInjection
	Hooks        []HookDescriptor
}

// Designated returns the single designated constructor.
func (d *ComponentDescriptor) Designated() (Constructor, error) {
	var found []Constructor
	for _, c := range d.Constructors {
		if c.Designated {
			found = append(found, c)
		}
	}
	if len(found) != 1 {
		err := zerr.Wrap(ErrInvalidComponent, "component must have exactly one designated constructor")
		err = zerr.With(err, "component", d.ID.String())
		return Constructor{}, zerr.With(err, "designated", len(found))
	}
	return found[0], nil
}

// Params returns the constructor parameters of the designated constructor, or nil if there is none.
func (d *ComponentDescriptor) Params() []Identity {
	c, err := d.Designated()
	if err != nil {
		return nil
	}
	return c.Params
}

// Dependencies returns every identity the component requires: constructor parameters in
// declared order followed by injected fields.
func (d *ComponentDescriptor) Dependencies() []Identity {
	params := d.Params()
	deps := make([]Identity, 0, len(params)+len(d.Fields))
	deps = append(deps, params...)
	for _, f := range d.Fields {
		deps = append(deps, f.Dependency)
	}
	return deps
}

// SortedHooks returns the hooks ordered by ascending priority.
// Hooks with equal priority keep their declaration order.
func (d *ComponentDescriptor) SortedHooks() []HookDescriptor {
	hooks := slices.Clone(d.Hooks)
	slices.SortStableFunc(hooks, func(a, b HookDescriptor) int {
		return cmp.Compare(a.Priority, b.Priority)
	})
	return hooks
}
