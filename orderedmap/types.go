// Package orderedmap defines the pair and callback types, sentinel errors,
// and configuration options for the OrderedMap container.
package orderedmap

import "errors"

// Sentinel errors for OrderedMap configuration.
var (
	// ErrBadCapacity indicates WithCapacity was given a negative size.
	ErrBadCapacity = errors.New("orderedmap: capacity must be non-negative")
)

// Pair couples one key with its value; Items returns the map content as a
// slice of pairs in insertion order.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

type (
	// ForEachFn visits one pair; order is the zero-based insertion index.
	ForEachFn[K comparable, V any] func(key K, value V, order int)

	// LessFn reports whether pair a should sort before pair b.
	LessFn[K comparable, V any] func(a, b Pair[K, V]) bool
)

// Options configures an OrderedMap at construction time.
//
// Capacity – initial capacity of both backing slices. Zero means no
// preallocation.
type Options struct {
	Capacity int // initial capacity of the keys and values slices
}

// Option represents a functional option for configuring an OrderedMap.
type Option func(*Options)

// WithCapacity pre-sizes both backing slices for n entries.
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
