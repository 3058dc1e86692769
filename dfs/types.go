// Package dfs defines the sentinel errors for connectivity queries.
package dfs

import "errors"

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")
)
