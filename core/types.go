// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, sentinel errors, shared result types and the constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrUserNotFound indicates an operation referenced an unregistered user.
	ErrUserNotFound = errors.New("core: user not found")

	// ErrSelfFriendship indicates AddFriendship was asked to link a user to itself.
	ErrSelfFriendship = errors.New("core: self-friendship not allowed")
)

// NoPath is the distance reported when both endpoints exist but no path connects them.
const NoPath = -1

// PathResult is the outcome of a shortest-path query.
//
// Distance is the number of hops (NoPath if unreachable) and Path lists the
// users from start to end inclusive (empty if unreachable).
type PathResult struct {
	Distance int
	Path     []string
}

// Found reports whether a path was found.
func (r PathResult) Found() bool { return r.Distance != NoPath }

// NoPathResult returns the canonical "no path" value: NoPath and an empty, non-nil path.
func NoPathResult() PathResult {
	return PathResult{Distance: NoPath, Path: []string{}}
}

// GraphStats is a read-only snapshot of graph sizes.
type GraphStats struct {
	Users       int // registered users
	Friendships int // undirected friendships (each pair counted once)
	Isolated    int // users without any friend
	MaxDegree   int // largest friend count
}

// Graph is the in-memory social graph.
//
// mu guards adjacency and friendships. adjacency maps every registered user
// to the set of its direct friends; isolated users map to an empty set.
type Graph struct {
	mu sync.RWMutex

	adjacency   map[string]map[string]struct{}
	friendships int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string]map[string]struct{}),
	}
}
