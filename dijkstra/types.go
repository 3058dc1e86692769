// Package dijkstra defines the sentinel errors and configuration options
// for the priority-queue shortest-path search.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// UnitWeight is the cost of traversing one friendship.
const UnitWeight = 1

// infinity marks users whose tentative distance is still unknown.
const infinity = math.MaxInt

// Options configures the behavior of the search.
//
// MaxDistance – popped entries farther than this stop the search.
// Must be ≥ 0. Default is math.MaxInt (no cap).
type Options struct {
	MaxDistance int
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Users farther than max are reported as unreachable.
// Panics on a negative value.
func WithMaxDistance(max int) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{
		MaxDistance: infinity,
	}
}
