// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// options.go - functional options and the resolved builder configuration.
//
// Option constructors panic on meaningless inputs (nil functions/RNGs);
// constructors themselves never panic and return sentinel errors.

package builder

import (
	"math/rand"
	"strconv"
)

// Option customizes the builder configuration before construction begins.
type Option func(*builderConfig)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// User ID strategy: index -> ID.
	idFn func(int) string
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
}

// newBuilderConfig applies options in order over deterministic defaults.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn: strconv.Itoa,
		rng:  nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the deterministic user ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// LetterIDs maps 0→"A", 1→"B", …, 25→"Z", 26→"AA" (spreadsheet-column style).
// Panics if idx < 0.
func LetterIDs(idx int) string {
	if idx < 0 {
		panic("builder: LetterIDs: negative index")
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
