// Package pqueue implements a generic binary min-heap with FIFO tie-breaking.
package pqueue

import (
	"container/heap"
	"math"
)

// entry couples a payload with its two ordering keys: the caller-supplied
// priority ranks entries, seq breaks ties in favour of the earlier Push.
type entry[T any] struct {
	value    T
	priority float64
	seq      uint64
}

// entryHeap is the container/heap backing store over *entry values.
type entryHeap[T any] []*entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	// Equal priorities: the entry pushed first wins.
	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x interface{}) { *h = append(*h, x.(*entry[T])) }

func (h *entryHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	// Drop the vacated pointer so the backing array does not pin the entry.
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

// PriorityQueue is an array-backed binary min-heap of T ranked by a
// float64 priority supplied at push time. Entries pushed with equal
// priorities pop in their push order, enforced by a per-queue sequence
// counter that never repeats for the lifetime of the queue.
//
// The zero value is an empty queue ready for use. PriorityQueue is not
// safe for concurrent use.
type PriorityQueue[T any] struct {
	h   entryHeap[T]
	seq uint64
}

// New constructs an empty PriorityQueue, applying any functional options.
//
// Complexity: O(1) (plus the capacity allocation, if requested).
func New[T any](opts ...Option) *PriorityQueue[T] {
	// 1) Build options from defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Allocate the backing heap slice with the requested capacity.
	return &PriorityQueue[T]{h: make(entryHeap[T], 0, cfg.Capacity)}
}

// Push inserts value ranked by priority: append to the array tail, then
// sift up until the heap order holds. Lower priorities pop first; ±Inf
// are legal and sort to the extremes.
// Panics with ErrBadPriority if priority is NaN, since NaN compares
// false against everything and would corrupt the heap order silently.
//
// Complexity: O(log n).
func (q *PriorityQueue[T]) Push(value T, priority float64) {
	if math.IsNaN(priority) {
		panic(ErrBadPriority.Error())
	}

	q.seq++
	heap.Push(&q.h, &entry[T]{value: value, priority: priority, seq: q.seq})
}

// Pop removes and returns the value with the smallest (priority, seq)
// key: swap root and last, shrink by one, sift the new root down.
// Returns ErrEmptyQueue if the queue holds no entries.
//
// Complexity: O(log n).
func (q *PriorityQueue[T]) Pop() (T, error) {
	if len(q.h) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	item := heap.Pop(&q.h).(*entry[T])

	return item.value, nil
}

// Peek returns the value that Pop would return next, without removing it.
// Returns ErrEmptyQueue if the queue holds no entries.
//
// Complexity: O(1).
func (q *PriorityQueue[T]) Peek() (T, error) {
	if len(q.h) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	return q.h[0].value, nil
}

// Len returns the number of entries currently queued.
func (q *PriorityQueue[T]) Len() int { return len(q.h) }

// IsEmpty reports whether the queue holds no entries.
func (q *PriorityQueue[T]) IsEmpty() bool { return len(q.h) == 0 }

// Drain removes and returns all values in pop order (ascending priority,
// FIFO within equal priorities), leaving the queue empty. The returned
// slice is freshly allocated and owned by the caller.
//
// Complexity: O(n log n).
func (q *PriorityQueue[T]) Drain() []T {
	out := make([]T, 0, len(q.h))
	for len(q.h) > 0 {
		out = append(out, heap.Pop(&q.h).(*entry[T]).value)
	}

	return out
}

// Clear discards all entries in place, retaining the backing capacity.
// The tie-break sequence counter is not reset, so entries pushed after
// Clear still order strictly after everything pushed before it.
//
// Complexity: O(n) (entry slots are zeroed).
func (q *PriorityQueue[T]) Clear() {
	clear(q.h)
	q.h = q.h[:0]
}
