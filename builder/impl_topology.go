// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// impl_topology.go - classic deterministic topologies.
//
// Contract:
//   - Users are added via cfg.idFn in ascending index order.
//   - Friendships are emitted in a stable order (ascending indices).
//   - Size violations return ErrTooFewUsers before any mutation.

package builder

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
)

const (
	methodPath     = "Path"
	methodStar     = "Star"
	methodCycle    = "Cycle"
	methodComplete = "Complete"

	minPathUsers     = 1
	minStarUsers     = 2
	minCycleUsers    = 3
	minCompleteUsers = 1

	// CenterUserID is the fixed hub ID used by Star.
	CenterUserID = "Center"
)

// Path returns a Constructor that builds 0–1–…–(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathUsers {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathUsers, ErrTooFewUsers)
		}
		ids := addIndexedUsers(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			if err := g.AddFriendship(ids[i], ids[i+1]); err != nil {
				return fmt.Errorf("%s: AddFriendship(%s,%s): %w", methodPath, ids[i], ids[i+1], err)
			}
		}
		return nil
	}
}

// Star returns a Constructor with hub CenterUserID and n-1 leaves named
// idFn(1..n-1). An ID scheme that yields CenterUserID for a leaf fails with
// ErrConstructFailed.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarUsers {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarUsers, ErrTooFewUsers)
		}
		g.AddUser(CenterUserID)
		var leaf string
		for i := 1; i < n; i++ {
			leaf = cfg.idFn(i)
			if leaf == CenterUserID {
				return fmt.Errorf("%s: leaf %d has hub ID %q: %w", methodStar, i, CenterUserID, ErrConstructFailed)
			}
			g.AddUser(leaf)
			if err := g.AddFriendship(CenterUserID, leaf); err != nil {
				return fmt.Errorf("%s: AddFriendship(%s,%s): %w", methodStar, CenterUserID, leaf, err)
			}
		}
		return nil
	}
}

// Cycle returns a Constructor that builds the ring 0–1–…–(n-1)–0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleUsers {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleUsers, ErrTooFewUsers)
		}
		ids := addIndexedUsers(g, cfg, n)
		for i := 0; i < n; i++ {
			u, v := ids[i], ids[(i+1)%n]
			if err := g.AddFriendship(u, v); err != nil {
				return fmt.Errorf("%s: AddFriendship(%s,%s): %w", methodCycle, u, v, err)
			}
		}
		return nil
	}
}

// Complete returns a Constructor that links every pair of n users.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteUsers {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteUsers, ErrTooFewUsers)
		}
		ids := addIndexedUsers(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.AddFriendship(ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: AddFriendship(%s,%s): %w", methodComplete, ids[i], ids[j], err)
				}
			}
		}
		return nil
	}
}
