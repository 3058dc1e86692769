// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Snapshot helpers (deep clone, statistics).
//
// Concurrency:
//   - Read lock on the source only; results share no memory with it.

package core

// Clone returns a deep copy of g: same users, same friendships.
// Algorithms that must not observe concurrent mutation can run on the clone.
//
// Complexity: O(U + F)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		adjacency:   make(map[string]map[string]struct{}, len(g.adjacency)),
		friendships: g.friendships,
	}
	for id, set := range g.adjacency {
		cp := make(map[string]struct{}, len(set))
		for f := range set {
			cp[f] = struct{}{}
		}
		out.adjacency[id] = cp
	}

	return out
}

// Stats produces a read-only snapshot of user/friendship counts.
//
// Complexity: O(U)
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{
		Users:       len(g.adjacency),
		Friendships: g.friendships,
	}
	for _, set := range g.adjacency {
		d := len(set)
		if d == 0 {
			st.Isolated++
		}
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
	}

	return st
}
