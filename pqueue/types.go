// Package pqueue defines sentinel errors and configuration options
// for the PriorityQueue container.
package pqueue

import "errors"

// Sentinel errors returned by PriorityQueue operations.
var (
	// ErrEmptyQueue indicates Pop or Peek was called on an empty queue.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")

	// ErrBadCapacity indicates WithCapacity was given a negative size.
	ErrBadCapacity = errors.New("pqueue: capacity must be non-negative")

	// ErrBadPriority indicates Push was given a NaN priority, which has
	// no defined ordering against any other value.
	ErrBadPriority = errors.New("pqueue: priority must not be NaN")
)

// Options configures a PriorityQueue at construction time.
//
// Capacity – initial capacity of the backing heap slice. Zero means no
// preallocation; the slice grows as entries are pushed.
type Options struct {
	Capacity int // initial backing-slice capacity
}

// Option represents a functional option for configuring a PriorityQueue.
type Option func(*Options)

// WithCapacity pre-sizes the backing heap slice for n entries, avoiding
// reallocation during the first n pushes.
// Must pass a non-negative value; negative values cause ErrBadCapacity.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// no preallocated capacity.
func DefaultOptions() Options {
	return Options{Capacity: 0}
}
