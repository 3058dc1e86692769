// SPDX-License-Identifier: MIT
//
// File: methods_friendships.go
// Role: Friendship creation & neighbor queries.
//
// Determinism:
//   - Friends() returns IDs sorted lexicographically ascending.
//
// Atomicity:
//   - AddFriendship validates both endpoints before mutating anything.

package core

import (
	"fmt"
	"sort"
)

// AddFriendship links a and b in both directions.
//
// Both users must already be registered; missing users are never created.
// Linking users that are already friends is a no-op.
//
// Errors:
//   - ErrUserNotFound: a or b is not registered (graph unchanged).
//   - ErrSelfFriendship: a == b (graph unchanged).
//
// Complexity: O(1) amortized.
func (g *Graph) AddFriendship(a, b string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	fa, ok := g.adjacency[a]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUserNotFound, a)
	}
	fb, ok := g.adjacency[b]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUserNotFound, b)
	}
	if a == b {
		return fmt.Errorf("%w: %q", ErrSelfFriendship, a)
	}

	if _, linked := fa[b]; linked {
		return nil
	}
	fa[b] = struct{}{}
	fb[a] = struct{}{}
	g.friendships++

	return nil
}

// HasFriendship reports whether a and b are direct friends.
// Unknown users are simply not friends with anyone.
//
// Complexity: O(1)
func (g *Graph) HasFriendship(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[a][b]

	return ok
}

// Friends returns the direct friends of id in ascending order.
//
// The returned slice is a fresh copy; mutating it never affects the graph.
// An isolated user yields an empty slice and a nil error.
//
// Errors:
//   - ErrUserNotFound: id is not registered (result is an empty slice).
//
// Complexity: O(d·log d), d = degree of id.
func (g *Graph) Friends(id string) ([]string, error) {
	g.mu.RLock()
	set, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()
		return []string{}, fmt.Errorf("%w: %q", ErrUserNotFound, id)
	}
	ids := make([]string, 0, len(set))
	for f := range set {
		ids = append(ids, f)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids, nil
}

// Degree returns the number of direct friends of id.
//
// Errors:
//   - ErrUserNotFound: id is not registered.
//
// Complexity: O(1)
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUserNotFound, id)
	}

	return len(set), nil
}

// FriendshipCount returns the number of undirected friendships.
//
// Complexity: O(1)
func (g *Graph) FriendshipCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.friendships
}
