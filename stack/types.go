// Package stack defines sentinel errors and configuration options
// for the Stack container.
package stack

import "errors"

// Sentinel errors returned by Stack operations.
var (
	// ErrEmptyStack indicates Pop or Peek was called on an empty stack.
	ErrEmptyStack = errors.New("stack: stack is empty")

	// ErrBadCapacity indicates WithCapacity was given a negative size.
	ErrBadCapacity = errors.New("stack: capacity must be non-negative")
)

// Options configures a Stack at construction time.
//
// Capacity – initial capacity of the backing slice. Zero means no
// preallocation; the slice grows as elements are pushed.
type Options struct {
	Capacity int // initial backing-slice capacity
}

// Option represents a functional option for configuring a Stack.
type Option func(*Options)

// WithCapacity pre-sizes the backing slice for n elements, avoiding
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
