// Package builder assembles deterministic core.Graph fixtures.
//
// Every call returns a fresh graph, so tests can run in isolation and in
// parallel without sharing mutable state.
//
// Entry points:
//
//	Demo()                              the 8-user reference network
//	BuildGraph(opts, cons...)           compose constructors in order
//
// Constructors:
//
//	Users(ids...)          register users
//	Friendships(pairs...)  link registered users
//	Path(n)                0–1–2–…–(n-1)
//	Star(n)                "Center" linked to n-1 leaves
//	Cycle(n)               path plus (n-1)–0
//	Complete(n)            every pair linked
//	RandomSparse(n, p)     each pair linked with probability p (needs WithSeed/WithRand for 0<p<1)
//
// Options:
//
//	WithIDScheme(fn)   index → user ID (default decimal "0","1",…)
//	WithSeed(seed)     deterministic RNG for RandomSparse
//	WithRand(r)        explicit RNG
//
// Errors:
//
//	ErrTooFewUsers, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed,
//	plus wrapped core errors (core.ErrUserNotFound for Friendships on unknown users).
package builder
