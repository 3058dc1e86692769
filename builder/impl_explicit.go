// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// impl_explicit.go - constructors over caller-supplied IDs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
)

const (
	methodUsers       = "Users"
	methodFriendships = "Friendships"
)

// Users returns a Constructor that registers ids in the given order.
func Users(ids ...string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, id := range ids {
			g.AddUser(id)
		}
		return nil
	}
}

// Friendships returns a Constructor that links each pair.
// Both users must already be registered (core.ErrUserNotFound otherwise).
func Friendships(pairs ...Pair) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, p := range pairs {
			if err := g.AddFriendship(p.A, p.B); err != nil {
				return fmt.Errorf("%s: AddFriendship(%s,%s): %w", methodFriendships, p.A, p.B, err)
			}
		}
		return nil
	}
}

// addIndexedUsers registers cfg.idFn(0..n-1) and returns their IDs.
func addIndexedUsers(g *core.Graph, cfg builderConfig, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		g.AddUser(ids[i])
	}

	return ids
}
