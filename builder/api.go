// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// api.go - public entry-points: BuildGraph, Demo and the Pair type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// configuration. Constructors validate parameters early and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// Pair is one undirected friendship between two user IDs.
type Pair struct {
	A, B string
}

// Demo user IDs of the reference network.
const (
	Alice   = "Alice"
	Bob     = "Bob"
	Charlie = "Charlie"
	David   = "David"
	Eve     = "Eve"
	Frank   = "Frank"
	Grace   = "Grace"
	Heidi   = "Heidi"
)

// DemoUsers lists the users of the reference network in registration order.
var DemoUsers = []string{Alice, Bob, Charlie, David, Eve, Frank, Grace, Heidi}

// DemoFriendships lists the friendships of the reference network.
// Grace is intentionally isolated.
var DemoFriendships = []Pair{
	{Alice, Bob},
	{Alice, Charlie},
	{Bob, David},
	{Charlie, David},
	{Charlie, Eve},
	{David, Eve},
	{Eve, Frank},
	{Frank, Heidi},
}

// BuildGraph creates a new core.Graph, resolves the configuration from opts
// and applies all constructors in order. The first constructor error is
// wrapped with "BuildGraph: %w" and returned immediately.
func BuildGraph(opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Demo returns a fresh instance of the 8-user reference network:
//
//	Alice ─── Bob
//	  │        │
//	Charlie ─ David
//	  │        │
//	  └─ Eve ──┘
//	      │
//	    Frank ─── Heidi        Grace (isolated)
//
// Edges: Alice–Bob, Alice–Charlie, Bob–David, Charlie–David, Charlie–Eve,
// David–Eve, Eve–Frank, Frank–Heidi.
func Demo() *core.Graph {
	g, err := BuildGraph(nil, Users(DemoUsers...), Friendships(DemoFriendships...))
	if err != nil {
		// Static data; unreachable unless the tables above are edited inconsistently.
		panic(err)
	}

	return g
}
