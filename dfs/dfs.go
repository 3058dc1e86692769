// Package dfs implements depth-first reachability and connected components on core.Graph.
package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/socialgraph/core"
)

// walker encapsulates state during a traversal.
type walker struct {
	graph   *core.Graph
	visited map[string]bool
}

// Reachable returns every user connected to start (including start), sorted ascending.
func Reachable(g *core.Graph, start string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasUser(start) {
		return nil, fmt.Errorf("dfs: start %w: %q", core.ErrUserNotFound, start)
	}

	w := &walker{graph: g, visited: make(map[string]bool)}
	var out []string
	if err := w.traverse(start, &out); err != nil {
		return nil, err
	}
	sort.Strings(out)

	return out, nil
}

// Components returns the connected components of g. Each component is sorted
// ascending; components are ordered by their smallest member. Isolated users
// form singleton components.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	users := g.Users()
	w := &walker{graph: g, visited: make(map[string]bool, len(users))}
	var comps [][]string
	// Users are ascending, so each new root is its component's smallest member.
	for _, u := range users {
		if w.visited[u] {
			continue
		}
		var comp []string
		if err := w.traverse(u, &comp); err != nil {
			return nil, err
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

// traverse marks id visited, records it, and recurses into unseen friends.
func (w *walker) traverse(id string, out *[]string) error {
	w.visited[id] = true
	*out = append(*out, id)

	friends, err := w.graph.Friends(id)
	if err != nil {
		return fmt.Errorf("dfs: Friends(%q): %w", id, err)
	}
	for _, f := range friends {
		if w.visited[f] {
			continue
		}
		if err = w.traverse(f, out); err != nil {
			return err
		}
	}

	return nil
}

// ConnectedPairs lists every ordered pair (a, b), a != b, whose users share a
// component. Pairs are emitted in component order, then a, then b.
func ConnectedPairs(g *core.Graph) ([][2]string, error) {
	comps, err := Components(g)
	if err != nil {
		return nil, err
	}
	var pairs [][2]string
	for _, comp := range comps {
		for _, a := range comp {
			for _, b := range comp {
				if a != b {
					pairs = append(pairs, [2]string{a, b})
				}
			}
		}
	}

	return pairs, nil
}
