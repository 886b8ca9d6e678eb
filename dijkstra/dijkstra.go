// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// weighted directed adjacency map with non-negative arc weights.
//
// The solver processes vertices in order of increasing distance using a
// min-heap frontier, relaxing arcs and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is settled at most once: V surviving pops.
//   - Each relaxation may push one new frontier entry: up to E pushes.
//   - Each heap operation costs O(log N), N ≤ V + E, simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for the distance, predecessor and settled maps.
//   - O(E) worst-case frontier entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: improving a distance pushes a duplicate frontier
//     entry; stale entries are skipped on pop via the settled set, never
//     removed in place.
//   - Arcs with weight >= InfEdgeThreshold are impassable walls.
//   - Exploration stops once the closest unsettled vertex lies beyond
//     MaxDistance; everything unsettled at that point is unreachable.
//   - Equal-cost ties resolve to the first-relaxed predecessor, which the
//     frontier's FIFO tie-break makes deterministic.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlcoll/pqueue"
	"github.com/katalvlaran/lvlcoll/stack"
)

// ShortestPath is the one-shot form: validate the raw adjacency map via
// FromMap, then run a single query on the resulting solver. Use a Solver
// directly when issuing several queries over one graph, to pay
// validation once.
func ShortestPath[N comparable](adj map[N][]Edge[N], start, target N, opts ...Option) (float64, []N, error) {
	s, err := FromMap(adj)
	if err != nil {
		return 0, nil, err
	}

	return s.ShortestPath(start, target, opts...)
}

// ShortestPath computes the minimum cost from start to target and the
// vertex sequence realizing it, both endpoints included.
//
// Returns:
//
//   - (cost, path, nil) when target is reachable; path[0] == start and
//     path[len-1] == target.
//   - (+Inf, empty path, nil) when target is unreachable or lies beyond
//     MaxDistance. Unreachability is an answer, not a failure.
//   - (0, [start], nil) when start == target.
//   - (0, nil, ErrVertexNotFound) when either endpoint is unknown, wrapped
//     with the offending vertex.
//
// Each call allocates fresh distance and predecessor state; the adjacency
// is only read, so concurrent queries on one solver are safe.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func (s *Solver[N]) ShortestPath(start, target N, opts ...Option) (float64, []N, error) {
	// 1) Build options from defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Both endpoints must exist.
	if !s.HasVertex(start) {
		return 0, nil, fmt.Errorf("%w: start %v", ErrVertexNotFound, start)
	}
	if !s.HasVertex(target) {
		return 0, nil, fmt.Errorf("%w: target %v", ErrVertexNotFound, target)
	}

	// 3) Trivial query: the path is the lone endpoint.
	if start == target {
		return 0, []N{start}, nil
	}

	// 4) Run the search with predecessor tracking, stopping as soon as
	//    target settles.
	r := newRunner(s, cfg, true)
	r.init(start)
	r.run(&target)

	// 5) Never settled means no path survives the thresholds. Report the
	//    infinite distance as a value.
	if !r.settled[target] {
		return math.Inf(1), []N{}, nil
	}

	// 6) Rebuild start…target from the predecessor chain.
	return r.dist[target], r.path(start, target), nil
}

// Distances computes the minimum cost from start to every vertex in one
// sweep. The returned map covers the full vertex set; unreachable
// vertices (and vertices beyond MaxDistance) hold +Inf. No predecessor
// state is allocated.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func (s *Solver[N]) Distances(start N, opts ...Option) (map[N]float64, error) {
	// 1) Build options from defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) The start vertex must exist.
	if !s.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %v", ErrVertexNotFound, start)
	}

	// 3) Exhaust the frontier: no target, no predecessor tracking.
	r := newRunner(s, cfg, false)
	r.init(start)
	r.run(nil)

	// 4) Tentative distances of unsettled vertices are not final answers;
	//    pin them to +Inf before handing the map to the caller.
	for v := range r.dist {
		if !r.settled[v] {
			r.dist[v] = math.Inf(1)
		}
	}

	return r.dist, nil
}

// runner holds the mutable state for a single query execution.
type runner[N comparable] struct {
	adj      map[N][]Edge[N]          // the solver's adjacency; read-only here
	opts     Options                  // per-query thresholds
	dist     map[N]float64            // vertex → current best distance from start
	prev     map[N]N                  // vertex → predecessor on the best path; nil when not tracked
	settled  map[N]bool               // vertex → distance finalized
	frontier *pqueue.PriorityQueue[N] // min-heap of (distance, vertex) candidates
}

// newRunner allocates fresh per-query state sized to the vertex count.
func newRunner[N comparable](s *Solver[N], cfg Options, withPrev bool) *runner[N] {
	n := len(s.adj)
	r := &runner[N]{
		adj:      s.adj,
		opts:     cfg,
		dist:     make(map[N]float64, n),
		settled:  make(map[N]bool, n),
		frontier: pqueue.New[N](pqueue.WithCapacity(n)),
	}
	if withPrev {
		r.prev = make(map[N]N, n)
	}

	return r
}

// init seeds every distance at +Inf, then opens the frontier at start.
func (r *runner[N]) init(start N) {
	// 1) All vertices begin unreachable.
	for v := range r.adj {
		r.dist[v] = math.Inf(1)
	}

	// 2) The start is at distance zero and is the first candidate.
	r.dist[start] = 0
	r.frontier.Push(start, 0)
}

// run settles vertices in ascending distance order until the frontier
// drains, the distance cap is crossed, or stop (when non-nil) settles.
func (r *runner[N]) run(stop *N) {
	for {
		// 1) Pop the closest candidate; a drained frontier ends the run.
		u, err := r.frontier.Pop()
		if err != nil {
			return
		}

		// 2) Skip stale entries: u already settled via a shorter path and
		//    this pop is a leftover duplicate (lazy decrease-key).
		if r.settled[u] {
			continue
		}

		// 3) Every surviving pop carries priority dist[u]. Once that
		//    exceeds the cap nothing closer can ever appear, so stop.
		if r.dist[u] > r.opts.MaxDistance {
			return
		}

		// 4) u's distance is now final.
		r.settled[u] = true

		// 5) Early exit once the requested target settles.
		if stop != nil && u == *stop {
			return
		}

		// 6) Relax every arc leaving u.
		r.relax(u)
	}
}

// relax attempts to improve the distance of each neighbor of u.
// Assumes dist[u] is finalized before the call.
func (r *runner[N]) relax(u N) {
	du := r.dist[u]
	for _, e := range r.adj[u] {
		// Arcs at or above the threshold are impassable.
		if e.Weight >= r.opts.InfEdgeThreshold {
			continue
		}

		// Candidate distance via start → … → u → e.To.
		candidate := du + e.Weight

		// Never explore beyond the distance cap.
		if candidate > r.opts.MaxDistance {
			continue
		}

		// Strictly-better paths only. Ties keep the earlier predecessor,
		// so the first-relaxed arc wins equal-cost races.
		if candidate >= r.dist[e.To] {
			continue
		}

		r.dist[e.To] = candidate
		if r.prev != nil {
			r.prev[e.To] = u
		}

		// Lazy decrease-key: push the improvement, leave stale entries
		// for the settled check to discard.
		r.frontier.Push(e.To, candidate)
	}
}

// path rebuilds start…target by walking the predecessor chain backward
// and letting a stack reverse the walk.
func (r *runner[N]) path(start, target N) []N {
	// The backward walk pushes target first, so Drain emits start first.
	rev := stack.New[N]()
	for v := target; ; v = r.prev[v] {
		rev.Push(v)
		if v == start {
			break
		}
	}

	return rev.Drain()
}
