package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// BuildOrder lists descriptors so that every dependency precedes its dependents.
type BuildOrder []*ComponentDescriptor

// Identities returns the identities in build order.
func (o BuildOrder) Identities() []Identity {
	ids := make([]Identity, len(o))
	for i, d := range o {
		ids[i] = d.ID
	}
	return ids
}

// IndexOf returns the position of id in the order, or -1.
func (o BuildOrder) IndexOf(id Identity) int {
	for i, d := range o {
		if d.ID == id {
			return i
		}
	}
	return -1
}

type color uint8

const (
	white color = iota // unvisited
	gray               // on the current path
	black              // finished
)

// Sort returns a build order for the graph using a depth-first postorder traversal.
// Roots are visited in manifest order and edges in declaration order, so equal graphs
// always yield the same order.
func (g *DependencyGraph) Sort() (BuildOrder, error) {
	order := make(BuildOrder, 0, len(g.nodes))
	colors := make(map[Identity]color, len(g.nodes))
	var path []Identity

	var visit func(d *ComponentDescriptor) error
	visit = func(d *ComponentDescriptor) error {
		colors[d.ID] = gray
		path = append(path, d.ID)

		for _, dep := range g.edges[d.ID] {
			switch colors[dep] {
			case gray:
				return cycleError(path, dep)
			case white:
				if err := visit(g.nodes[g.index[dep]]); err != nil {
					return err
				}
			}
		}

		colors[d.ID] = black
		path = path[:len(path)-1]
		order = append(order, d)
		return nil
	}

	for _, d := range g.nodes {
		if colors[d.ID] != white {
			continue
		}
		if err := visit(d); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// cycleError reports the segment of path starting at dep.
func cycleError(path []Identity, dep Identity) error {
	start := 0
	for i, id := range path {
		if id == dep {
			start = i
			break
		}
	}
	cycle := append([]Identity(nil), path[start:]...)
	rendered := strings.Join(append(Names(cycle), dep.String()), " -> ")

	err := zerr.With(zerr.Wrap(ErrCyclicDependency, "dependency graph contains a cycle"), "cycle", rendered)
	return zerr.With(err, "cycle_path", cycle)
}
