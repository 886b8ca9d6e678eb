// Package dijkstra provides a precise implementation of Dijkstra's
// shortest-path algorithm on weighted directed graphs with non-negative
// arc weights, generic over the vertex identifier type.
//
// Overview:
//
//   - Solver[N] owns the graph as an adjacency map (vertex → outgoing
//     arcs) and answers point-to-point and single-source queries.
//   - Queries expand the next-closest vertex first, using a min-heap
//     frontier with a FIFO tie-break, so equal-cost route choices are
//     reproducible across runs.
//   - Unreachability is an answer, not an error: a missing route reports
//     cost +Inf and an empty path.
//
// When to use:
//
//   - Guaranteed shortest paths on a static weighted graph: routing,
//     traffic simulation, dependency cost analysis.
//   - As a foundation for A* and other heuristic searches (substitute
//     the priority with cost-plus-heuristic).
//
// Key features:
//
//   - Generic vertices: any comparable N (strings, ints, coordinate
//     structs) without conversion layers.
//   - Functional options tune each query without changing the API:
//     WithMaxDistance caps exploration, WithInfEdgeThreshold declares
//     arcs at or above a weight impassable.
//   - Two construction routes: incremental (New + AddEdge, validating
//     each arc as it arrives) and bulk (FromMap, validating a raw
//     adjacency map up front and deep-copying it).
//   - ShortestPath returns the realized vertex sequence, not just the
//     cost; Distances returns the full single-source cost map.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is settled at most once (V surviving pops).
//   - Each relaxation may push one frontier entry (up to E pushes).
//   - Heap operations cost O(log N), N ≤ V + E, simplified O(log V).
//   - Space: O(V + E)
//   - O(V) for distance, predecessor and settled maps, per query.
//   - O(E) worst-case frontier entries under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrVertexNotFound:
//     A query named a start or target vertex the solver does not hold;
//     wrapped with the offending identifier.
//   - ErrNegativeWeight:
//     A negative arc weight was supplied to AddEdge or FromMap. Rejected
//     at construction, never mid-query.
//   - ErrBadWeight:
//     A NaN arc weight was supplied; NaN cannot be ordered.
//   - ErrInvalidGraph:
//     A raw adjacency map given to FromMap references a vertex missing
//     from its key set.
//   - ErrBadMaxDistance:
//     (panic) WithMaxDistance was given a negative or NaN cap.
//   - ErrBadInfThreshold:
//     (panic) WithInfEdgeThreshold was given a non-positive or NaN value.
//
// API sketch:
//
//	s := dijkstra.New[string]()
//	_ = s.AddEdge("A", "B", 1)
//	_ = s.AddEdge("B", "C", 2)
//	cost, path, err := s.ShortestPath("A", "C")
//	// cost == 3, path == [A B C], err == nil
//
//	// One-shot over a raw adjacency map:
//	cost, path, err = dijkstra.ShortestPath(adj, "A", "C")
//
//	// Single-source sweep:
//	dist, err := s.Distances("A", dijkstra.WithMaxDistance(100))
//
// Thread safety:
//
//   - Mutation (AddVertex, AddEdge) is not safe for concurrent use.
//   - Queries allocate fresh state and only read the adjacency, so any
//     number of queries may run concurrently on an unchanging solver.
//
// See also:
//
//   - pqueue.PriorityQueue: the frontier implementation and its FIFO
//     tie-break guarantee.
//   - stack.Stack: used to reverse the predecessor walk during path
//     reconstruction.
package dijkstra
