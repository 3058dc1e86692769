// SPDX-License-Identifier: MIT
//
// File: methods_users.go
// Role: User lifecycle & queries.
//
// Determinism:
//   - Users() returns IDs sorted lexicographically ascending.

package core

import "sort"

// AddUser registers id with an empty friend set if it is not yet known.
// Adding an existing user is a no-op.
//
// Complexity: O(1) amortized.
func (g *Graph) AddUser(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[id]; ok {
		return
	}
	g.adjacency[id] = make(map[string]struct{})
}

// HasUser reports whether id is registered.
//
// Complexity: O(1)
func (g *Graph) HasUser(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]

	return ok
}

// Users returns all registered user IDs in ascending order.
// The slice is freshly allocated.
//
// Complexity: O(U·log U)
func (g *Graph) Users() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// UserCount returns the number of registered users.
//
// Complexity: O(1)
func (g *Graph) UserCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}
