// Package catalog binds component names used in manifest files to Go code: constructors,
// field setters and hook methods.
package catalog

import (
	"reflect"
	"slices"
	"sync"

	"go.trai.ch/boot/internal/core/domain"
	"go.trai.ch/zerr"
)

// Catalog is the set of component types a manifest file may reference.
type Catalog struct {
	mu      sync.RWMutex
	entries map[domain.Identity]*Entry
	order   []domain.Identity
}

// New creates an empty Catalog.
func New() *Catalog {
	return &Catalog{entries: make(map[domain.Identity]*Entry)}
}

// Entry holds the code-side bindings of one component type.
type Entry struct {
	id           domain.Identity
	typ          reflect.Type
	constructors map[string]constructor
	fields       map[string]domain.FieldInjection
}

type constructor struct {
	params []domain.Identity
	build  func(domain.Args) (any, error)
}

// Option configures the Entry of a component of type T.
type Option[T any] func(e *Entry)

// Constructor binds a named constructor taking params in order.
func Constructor[T any](name string, params []domain.Identity, fn func(args domain.Args) (T, error)) Option[T] {
	return func(e *Entry) {
		e.constructors[name] = constructor{params: slices.Clone(params), build: domain.Build(fn)}
	}
}

// Inject binds a named field receiving the instance of dep.
func Inject[T, D any](field string, dep domain.Identity, set func(T, D)) Option[T] {
	return func(e *Entry) {
		e.fields[field] = domain.Field(field, dep, set)
	}
}

// Register adds the component type T under name. An empty name uses domain.IdentityOf[T].
// Hooks are not registered: they are resolved on T's method set when a manifest names them.
// T must be a concrete type.
func Register[T any](c *Catalog, name string, opts ...Option[T]) error {
	id := domain.NewIdentity(name)
	if id.IsZero() {
		id = domain.IdentityOf[T]()
	}

	typ := reflect.TypeFor[T]()
	if typ.Kind() == reflect.Interface {
		return zerr.With(zerr.Wrap(domain.ErrInvalidComponent, "component type must be concrete"), "component", id.String())
	}

	e := &Entry{
		id:           id,
		typ:          typ,
		constructors: make(map[string]constructor),
		fields:       make(map[string]domain.FieldInjection),
	}
	for _, opt := range opts {
		opt(e)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[id]; exists {
		return zerr.With(zerr.Wrap(domain.ErrDuplicateDependency, "component type registered twice"), "component", id.String())
	}
	c.entries[id] = e
	c.order = append(c.order, id)
	return nil
}

// MustRegister is like Register but panics on error. It is meant for package-level catalogs.
func MustRegister[T any](c *Catalog, name string, opts ...Option[T]) {
	if err := Register[T](c, name, opts...); err != nil {
		panic(err)
	}
}

// Lookup returns the entry registered for id.
func (c *Catalog) Lookup(id domain.Identity) (*Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[id]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownComponent, "component is not in the catalog"), "component", id.String())
	}
	return e, nil
}

// Identities returns the registered identities in registration order.
func (c *Catalog) Identities() []domain.Identity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.order)
}

// ID returns the identity of the entry.
func (e *Entry) ID() domain.Identity {
	return e.id
}

func (e *Entry) invalid(msg, key string, value any) error {
	err := zerr.With(zerr.Wrap(domain.ErrInvalidComponent, msg), "component", e.id.String())
	return zerr.With(err, key, value)
}

// Constructor returns the named constructor. params must match the bound parameters exactly.
func (e *Entry) Constructor(name string, params []domain.Identity, designated bool) (domain.Constructor, error) {
	c, ok := e.constructors[name]
	if !ok {
		return domain.Constructor{}, e.invalid("constructor is not bound", "constructor", name)
	}
	if !slices.Equal(c.params, params) {
		err := e.invalid("constructor parameters do not match the bound constructor", "constructor", name)
		return domain.Constructor{}, zerr.With(err, "expected", domain.Names(c.params))
	}
	return domain.Constructor{
		Name:       name,
		Params:     slices.Clone(params),
		Designated: designated,
		Build:      c.build,
	}, nil
}

// Field returns the named field injection. dep must match the bound dependency.
func (e *Entry) Field(name string, dep domain.Identity) (domain.FieldInjection, error) {
	f, ok := e.fields[name]
	if !ok {
		return domain.FieldInjection{}, e.invalid("field is not bound", "field", name)
	}
	if f.Dependency != dep {
		err := e.invalid("field dependency does not match the bound field", "field", name)
		return domain.FieldInjection{}, zerr.With(err, "expected", f.Dependency.String())
	}
	return f, nil
}
