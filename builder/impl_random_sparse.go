// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n,p) social graph.
//
// Contract:
//   - n ≥ 1, p ∈ [0,1].
//   - cfg.rng is required when 0 < p < 1; p ∈ {0,1} is fully deterministic.
//   - Unordered pairs {i,j}, i<j, are sampled in ascending (i,j) order, so a
//     fixed seed always yields the same graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
)

const (
	methodRandomSparse = "RandomSparse"
	minRandomUsers     = 1
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor that links each pair of n users with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomUsers {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomUsers, ErrTooFewUsers)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := addIndexedUsers(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !sample(cfg, p) {
					continue
				}
				if err := g.AddFriendship(ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: AddFriendship(%s,%s): %w", methodRandomSparse, ids[i], ids[j], err)
				}
			}
		}
		return nil
	}
}

// sample performs one Bernoulli trial; p ∈ {0,1} never touches the RNG.
func sample(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
