// Package dijkstra: Solver construction and graph mutation. The query
// algorithm itself lives in dijkstra.go.
package dijkstra

import (
	"fmt"
	"math"
)

// Solver owns a weighted directed graph in adjacency-map form and answers
// shortest-path queries over it. The vertex identifier N can be any
// comparable type: strings, ints and small value structs all work.
//
// Arc slices preserve AddEdge insertion order. Together with the
// frontier's FIFO tie-break this makes equal-cost path choices
// reproducible run after run.
//
// Create a Solver with New or FromMap; the zero value has no adjacency
// storage. Mutation is not safe for concurrent use, but any number of
// queries may run concurrently as long as nobody mutates the solver.
type Solver[N comparable] struct {
	adj   map[N][]Edge[N] // vertex → arcs leaving it
	edges int             // running arc count
}

// New constructs an empty Solver.
func New[N comparable]() *Solver[N] {
	return &Solver[N]{adj: make(map[N][]Edge[N])}
}

// FromMap builds a Solver from a raw adjacency map, validating every arc
// and deep-copying the arc slices, so later mutation of the argument
// cannot corrupt queries.
//
// Validation per arc:
//  1. NaN weight → ErrBadWeight.
//  2. Negative weight → ErrNegativeWeight.
//  3. Destination absent from the key set → ErrInvalidGraph. Every
//     vertex a path could visit must appear as a key, even sinks with
//     no outgoing arcs (map them to nil or an empty slice).
//
// All errors are wrapped with the offending arc's endpoints.
//
// Complexity: O(V + E).
func FromMap[N comparable](adj map[N][]Edge[N]) (*Solver[N], error) {
	s := &Solver[N]{adj: make(map[N][]Edge[N], len(adj))}

	// 1) Register the full vertex set first, so arc destinations can be
	//    checked against complete membership.
	for v := range adj {
		s.adj[v] = nil
	}

	// 2) Validate and copy arcs.
	for from, arcs := range adj {
		for _, e := range arcs {
			if math.IsNaN(e.Weight) {
				return nil, fmt.Errorf("%w: edge %v→%v", ErrBadWeight, from, e.To)
			}
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, from, e.To, e.Weight)
			}
			if _, ok := s.adj[e.To]; !ok {
				return nil, fmt.Errorf("%w: edge %v→%v targets an undeclared vertex", ErrInvalidGraph, from, e.To)
			}
		}

		if len(arcs) > 0 {
			cp := make([]Edge[N], len(arcs))
			copy(cp, arcs)
			s.adj[from] = cp
			s.edges += len(arcs)
		}
	}

	return s, nil
}

// AddVertex ensures id exists in the solver; new vertices start with no
// outgoing arcs. Adding an existing vertex is a no-op. Isolated vertices
// are valid query endpoints (typically unreachable targets).
//
// Complexity: O(1).
func (s *Solver[N]) AddVertex(id N) {
	if _, ok := s.adj[id]; !ok {
		s.adj[id] = nil
	}
}

// AddEdge validates the weight, auto-creates both endpoints and appends
// the arc from→to. Parallel arcs and self-loops are permitted; a
// self-loop can never improve a distance, so it is naturally inert.
// A +Inf weight is legal and acts impassable under the default threshold.
//
// Errors: ErrBadWeight for NaN, ErrNegativeWeight below zero, each
// wrapped with the arc's endpoints.
//
// Complexity: amortized O(1).
func (s *Solver[N]) AddEdge(from, to N, weight float64) error {
	// 1) Reject weights the distance ordering cannot handle.
	if math.IsNaN(weight) {
		return fmt.Errorf("%w: edge %v→%v", ErrBadWeight, from, to)
	}
	if weight < 0 {
		return fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, from, to, weight)
	}

	// 2) Materialize both endpoints, then append the arc.
	s.AddVertex(from)
	s.AddVertex(to)
	s.adj[from] = append(s.adj[from], Edge[N]{To: to, Weight: weight})
	s.edges++

	return nil
}

// HasVertex reports whether id exists in the solver.
//
// Complexity: O(1).
func (s *Solver[N]) HasVertex(id N) bool {
	_, ok := s.adj[id]

	return ok
}

// VertexCount returns the number of vertices currently registered.
func (s *Solver[N]) VertexCount() int { return len(s.adj) }

// EdgeCount returns the number of arcs currently registered, counting
// parallel arcs individually.
func (s *Solver[N]) EdgeCount() int { return s.edges }

// Clone returns a deep copy of the solver: arc slices are duplicated, so
// mutations on either side never affect the other.
//
// Complexity: O(V + E).
func (s *Solver[N]) Clone() *Solver[N] {
	cp := &Solver[N]{adj: make(map[N][]Edge[N], len(s.adj)), edges: s.edges}
	for v, arcs := range s.adj {
		if len(arcs) == 0 {
			cp.adj[v] = nil
			continue
		}
		dup := make([]Edge[N], len(arcs))
		copy(dup, arcs)
		cp.adj[v] = dup
	}

	return cp
}
