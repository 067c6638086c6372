package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

// Manifest is the ordered set of component descriptors to initialize.
// Its order breaks ties in the build order.
type Manifest struct {
	Components []ComponentDescriptor
}

// NewManifest creates a Manifest from the given descriptors.
func NewManifest(components ...ComponentDescriptor) *Manifest {
	return &Manifest{Components: components}
}

// Add appends a descriptor to the manifest.
func (m *Manifest) Add(d ComponentDescriptor) {
	m.Components = append(m.Components, d)
}

// Len returns the number of declared components.
func (m *Manifest) Len() int {
	return len(m.Components)
}

// Lookup returns the descriptor declared for id.
func (m *Manifest) Lookup(id Identity) (*ComponentDescriptor, bool) {
	for i := range m.Components {
		if m.Components[i].ID == id {
			return &m.Components[i], true
		}
	}
	return nil, false
}

// Validate checks every descriptor and returns all problems found, joined.
func (m *Manifest) Validate() error {
	var errs []error
	seen := make(map[Identity]bool, len(m.Components))

	for i := range m.Components {
		d := &m.Components[i]
		if d.ID.IsZero() {
			errs = append(errs, zerr.With(zerr.Wrap(ErrInvalidComponent, "component has no identity"), "position", i))
			continue
		}
		if seen[d.ID] {
			errs = append(errs, zerr.With(zerr.Wrap(ErrDuplicateDependency, "component declared twice"),
				"component", d.ID.String()))
			continue
		}
		seen[d.ID] = true
		errs = append(errs, validateComponent(d)...)
	}

	return errors.Join(errs...)
}

func validateComponent(d *ComponentDescriptor) []error {
	var errs []error
	invalid := func(msg string, key string, value any) {
		err := zerr.With(zerr.Wrap(ErrInvalidComponent, msg), "component", d.ID.String())
		if key != "" {
			err = zerr.With(err, key, value)
		}
		errs = append(errs, err)
	}

	ctor, err := d.Designated()
	switch {
	case err != nil:
		errs = append(errs, err)
	case ctor.Build == nil:
		invalid("designated constructor has no build function", "constructor", ctor.Name)
	default:
		for _, p := range ctor.Params {
			if p.IsZero() {
				invalid("constructor parameter has no identity", "constructor", ctor.Name)
			}
			if p == d.ID {
				invalid("component depends on itself", "constructor", ctor.Name)
			}
		}
	}

	for _, f := range d.Fields {
		switch {
		case f.Dependency.IsZero():
			invalid("injected field has no identity", "field", f.Field)
		case f.Dependency == d.ID:
			invalid("injected field references its own component", "field", f.Field)
		case f.Assign == nil:
			invalid("injected field has no assignment", "field", f.Field)
		}
	}

	for _, h := range d.Hooks {
		if h.Method == "" || h.Invoke == nil {
			invalid("hook must take no arguments and return nothing or an error", "hook", h.Method)
		}
	}

	return errs
}
