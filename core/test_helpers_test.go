// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for socialgraph/core.
//
// Purpose:
//   - Provide small deterministic fixtures and assertion utilities for core.Graph.
//   - Keep the helpers free of *testing.T usage inside goroutines.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/socialgraph/core"
)

// Common user IDs used across core tests.
const (
	UserAlice   = "Alice"
	UserBob     = "Bob"
	UserCharlie = "Charlie"
	UserGrace   = "Grace"
	UserNobody  = "Nobody"
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentUsers = 200
	NReaders         = 50
)

// newTriangle returns Alice–Bob–Charlie fully connected plus an isolated Grace.
func newTriangle(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, id := range []string{UserAlice, UserBob, UserCharlie, UserGrace} {
		g.AddUser(id)
	}
	MustErrorNil(t, g.AddFriendship(UserAlice, UserBob), "AddFriendship(Alice,Bob)")
	MustErrorNil(t, g.AddFriendship(UserBob, UserCharlie), "AddFriendship(Bob,Charlie)")
	MustErrorNil(t, g.AddFriendship(UserCharlie, UserAlice), "AddFriendship(Charlie,Alice)")

	return g
}

// MustErrorNil fails the test immediately if err is non-nil.
func MustErrorNil(t *testing.T, err error, ctx string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", ctx, err)
	}
}

// MustErrorIs fails the test immediately unless errors.Is(err, target).
func MustErrorIs(t *testing.T, err, target error, ctx string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: want %v, got %v", ctx, target, err)
	}
}
