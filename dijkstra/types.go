// Package dijkstra defines core types, sentinel errors and configuration
// options for the shortest-path Solver.
//
// The Solver operates on weighted directed graphs in adjacency-map form:
// every vertex maps to the slice of arcs leaving it. Weights are float64
// and must be non-negative and not NaN; +Inf is legal and behaves as an
// impassable wall under the default InfEdgeThreshold.
//
// Options (per query):
//
//	– MaxDistance:      cap on explored distances; vertices beyond it are
//	                    never settled and report as unreachable.
//	– InfEdgeThreshold: arcs with weight >= this threshold are skipped
//	                    as impassable.
//
// Errors (sentinel):
//
//	– ErrVertexNotFound  if a query names a vertex absent from the solver.
//	– ErrNegativeWeight  if a negative arc weight is supplied.
//	– ErrBadWeight       if a NaN arc weight is supplied.
//	– ErrInvalidGraph    if a raw adjacency map is structurally malformed.
//	– ErrBadMaxDistance  (panic) if MaxDistance is negative or NaN.
//	– ErrBadInfThreshold (panic) if InfEdgeThreshold is non-positive or NaN.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Solver.
var (
	// ErrVertexNotFound indicates that a query referenced a vertex that
	// does not exist in the solver. The wrapped message names the vertex.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found")

	// ErrNegativeWeight indicates that a negative arc weight was supplied.
	// Greedy settling is only correct when every weight is non-negative,
	// so such arcs are rejected at construction time.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight")

	// ErrBadWeight indicates a NaN arc weight, which cannot participate
	// in any distance ordering.
	ErrBadWeight = errors.New("dijkstra: edge weight must not be NaN")

	// ErrInvalidGraph indicates a malformed raw adjacency map, such as an
	// arc pointing at a vertex missing from the key set.
	ErrInvalidGraph = errors.New("dijkstra: invalid graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative
	// or NaN value, which is not meaningful for a distance cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to a
	// non-positive or NaN value, which would treat every arc (including
	// zero-weight arcs) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Edge is a single outgoing arc in the adjacency structure: the
// destination vertex and the non-negative traversal cost.
type Edge[N comparable] struct {
	To     N       // destination vertex
	Weight float64 // traversal cost; >= 0, never NaN
}

// Options configures a single shortest-path query.
//
// MaxDistance      – cap on distances to explore. Vertices whose shortest
// distance exceeds the cap are never settled and report as unreachable.
// Must be >= 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat arcs with weight >= this threshold as
// impassable obstacles. Must be > 0. Default is +Inf, under which only
// literally infinite arcs are skipped.
type Options struct {
	MaxDistance      float64 // maximum distance to explore
	InfEdgeThreshold float64 // weight threshold above which arcs are non-traversable
}

// Option represents a functional option for configuring a query.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not
// explored; queries report them as unreachable.
// Must pass a non-negative, non-NaN value; anything else causes
// ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which arcs are
// considered non-traversable. Arcs with weight >= threshold are skipped
// entirely during relaxation.
// Must pass a positive, non-NaN value; anything else causes
// ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// no distance cap, no finite impassability threshold.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
