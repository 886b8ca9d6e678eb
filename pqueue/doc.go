// Package pqueue provides an array-backed binary min-heap with stable
// FIFO ordering among equal priorities.
//
// Overview:
//
//   - PriorityQueue[T] ranks payloads of any type T by an external
//     float64 priority supplied at Push time; the payload itself is
//     never inspected or compared.
//   - Ties are broken by insertion order: a per-queue sequence counter
//     stamps every Push, and the heap compares (priority, seq)
//     lexicographically. Pushing (1.0, "a") then (1.0, "b") always pops
//     "a" first, run after run.
//   - Pop and Peek signal an empty queue with ErrEmptyQueue rather than
//     panicking.
//
// When to use:
//
//   - Frontier management in best-first search (dijkstra builds its
//     frontier on this package).
//   - Deadline or cost scheduling where submission order must decide
//     between equally urgent work.
//
// Performance and complexity:
//
//   - Push: O(log n) (append to the array tail, sift up).
//   - Pop:  O(log n) (swap root and last, shrink, sift down).
//   - Peek, Len, IsEmpty: O(1).
//   - Drain: O(n log n) (repeated Pop into a fresh slice).
//
// Error handling (sentinel errors):
//
//   - ErrEmptyQueue:  returned by Pop and Peek on an empty queue.
//   - ErrBadPriority: Push panics with this text when priority is NaN.
//   - ErrBadCapacity: WithCapacity panics with this text for negative sizes.
//
// ±Inf priorities are legal and sort to the extremes; only NaN is
// rejected, because it compares false against every value and would
// corrupt the heap order without any visible failure.
//
// The zero value is an empty, ready-to-use queue; New is only needed
// when a capacity hint matters.
//
// PriorityQueue is not safe for concurrent use; it is a single-owner
// container.
package pqueue
