package domain

import (
	"reflect"
	"unique"
)

// Identity is the stable key of a component.
// It wraps a unique.Handle[string] so identities compare by pointer and are cheap map keys.
type Identity struct {
	h unique.Handle[string]
}

// NewIdentity creates an Identity from its name. An empty name yields the zero Identity.
func NewIdentity(name string) Identity {
	if name == "" {
		return Identity{}
	}
	return Identity{h: unique.Make(name)}
}

// IdentityOf returns the Identity derived from the Go type T.
// Two calls with the same type always yield the same identity.
func IdentityOf[T any]() Identity {
	return NewIdentity(reflect.TypeFor[T]().String())
}

// String returns the identity name.
func (id Identity) String() string {
	if id.IsZero() {
		return ""
	}
	return id.h.Value()
}

// IsZero reports whether id was never assigned.
func (id Identity) IsZero() bool {
	var zero unique.Handle[string]
	return id.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *Identity) UnmarshalText(text []byte) error {
	*id = NewIdentity(string(text))
	return nil
}

// Names returns the names of ids in order.
func Names(ids []Identity) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	return names
}
