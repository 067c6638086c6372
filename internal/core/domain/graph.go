// Package domain contains the component model and the dependency graph resolution used to
// order component initialization.
package domain

import (
	"go.trai.ch/zerr"
)

// DependencyGraph is the "requires" graph of a manifest.
// It is immutable once built.
type DependencyGraph struct {
	nodes      []*ComponentDescriptor
	index      map[Identity]int
	edges      map[Identity][]Identity
	dependents map[Identity][]Identity
}

// BuildGraph turns a manifest into a dependency graph.
// Every dependency must be declared in the manifest or reported as present by seeded.
// Dependencies satisfied only by seeded instances produce no edge.
func BuildGraph(m *Manifest, seeded func(Identity) bool) (*DependencyGraph, error) {
	g := &DependencyGraph{
		nodes:      make([]*ComponentDescriptor, 0, m.Len()),
		index:      make(map[Identity]int, m.Len()),
		edges:      make(map[Identity][]Identity, m.Len()),
		dependents: make(map[Identity][]Identity, m.Len()),
	}

	for i := range m.Components {
		d := &m.Components[i]
		if _, exists := g.index[d.ID]; exists {
			return nil, zerr.With(zerr.Wrap(ErrDuplicateDependency, "component declared twice"),
				"component", d.ID.String())
		}
		g.index[d.ID] = len(g.nodes)
		g.nodes = append(g.nodes, d)
	}

	for _, d := range g.nodes {
		edges := make([]Identity, 0, len(d.Fields)+1)
		for _, dep := range d.Dependencies() {
			if _, declared := g.index[dep]; declared {
				edges = append(edges, dep)
				g.dependents[dep] = append(g.dependents[dep], d.ID)
				continue
			}
			if seeded != nil && seeded(dep) {
				continue
			}
			err := zerr.With(zerr.Wrap(ErrUnresolvedDependency, "dependency is not declared or registered"),
				"requester", d.ID.String())
			return nil, zerr.With(err, "dependency", dep.String())
		}
		g.edges[d.ID] = edges
	}

	return g, nil
}

// Len returns the number of nodes.
func (g *DependencyGraph) Len() int {
	return len(g.nodes)
}

// Nodes returns the descriptors in manifest order.
func (g *DependencyGraph) Nodes() []*ComponentDescriptor {
	out := make([]*ComponentDescriptor, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Dependencies returns the identities id has edges to, in declaration order.
func (g *DependencyGraph) Dependencies(id Identity) []Identity {
	return append([]Identity(nil), g.edges[id]...)
}

// Dependents returns the identities that have an edge to id.
func (g *DependencyGraph) Dependents(id Identity) []Identity {
	return append([]Identity(nil), g.dependents[id]...)
}

// Resolve validates the manifest, builds its graph and returns the build order.
func Resolve(m *Manifest, seeded func(Identity) bool) (BuildOrder, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	g, err := BuildGraph(m, seeded)
	if err != nil {
		return nil, err
	}
	return g.Sort()
}
