// pkg/deps/resolver.go
package deps

import (
	"context"
	"strings"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/daradege/dastore/pkg/core"
)

// InfoFunc looks up package metadata by name. Unknown packages should return
// an error; the resolver treats them as leaves (they may be virtual
// packages satisfied by a provider).
type InfoFunc func(ctx context.Context, name string) (*core.Package, error)

// Resolver builds the dependency closure of a set of packages.
type Resolver struct {
	info InfoFunc
}

func NewResolver(info InfoFunc) *Resolver {
	return &Resolver{info: info}
}

// StripConstraint removes a version constraint from a dependency string
// ("glibc>=2.35" -> "glibc").
func StripConstraint(dep string) string {
	if idx := strings.IndexAny(dep, "><="); idx != -1 {
		return dep[:idx]
	}
	return dep
}

// InstallOrder returns the dependency closure of the named packages in an
// order where every dependency precedes its dependents. Dependency cycles
// (which pacman metadata does contain, e.g. glibc <-> filesystem) are broken
// by dropping the closing edge.
func (r *Resolver) InstallOrder(ctx context.Context, names ...string) ([]string, error) {
	g := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())

	visited := make(map[string]bool)
	var visit func(name string) error
	visit = func(name string) error {
		name = StripConstraint(name)
		if visited[name] {
			return nil
		}
		visited[name] = true

		if err := g.AddVertex(name); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return err
		}

		pkg, err := r.info(ctx, name)
		if err != nil {
			// Virtual package or not in any database; treat as leaf.
			return nil
		}

		for _, dep := range pkg.Depends {
			dep = StripConstraint(dep)
			if dep == "" || dep == name {
				continue
			}
			if err := visit(dep); err != nil {
				return err
			}
			err := g.AddEdge(dep, name)
			if err != nil &&
				!errors.Is(err, graph.ErrEdgeAlreadyExists) &&
				!errors.Is(err, graph.ErrEdgeCreatesCycle) {
				return err
			}
		}
		return nil
	}

	for _, name := range names {
		if err := visit(name); err != nil {
			return nil, errors.Wrapf(err, "resolving %s", name)
		}
	}

	order, err := graph.StableTopologicalSort(g, func(a, b string) bool { return a < b })
	if err != nil {
		return nil, errors.Wrap(err, "ordering dependencies")
	}
	return order, nil
}
