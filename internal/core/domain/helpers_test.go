package domain_test

import (
	"go.trai.ch/boot/internal/core/domain"
)

func id(name string) domain.Identity {
	return domain.NewIdentity(name)
}

func ids(names ...string) []domain.Identity {
	out := make([]domain.Identity, len(names))
	for i, n := range names {
		out[i] = id(n)
	}
	return out
}

// component declares a component whose designated constructor takes params and returns its name.
func component(name string, params ...string) domain.ComponentDescriptor {
	return domain.ComponentDescriptor{
		ID: id(name),
		Constructors: []domain.Constructor{{
			Name:       "New",
			Params:     ids(params...),
			Designated: true,
			Build: func(domain.Args) (any, error) {
				return name, nil
			},
		}},
	}
}

type holder struct {
	value string
}

// withField adds a field injection of dep to d.
func withField(d domain.ComponentDescriptor, field, dep string) domain.ComponentDescriptor {
	d.Fields = append(d.Fields, domain.Field(field, id(dep), func(h *holder, v string) { h.value = v }))
	return d
}
