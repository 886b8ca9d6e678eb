// Package stack implements a generic LIFO stack over a single slice.
package stack

// Stack is a last-in-first-out buffer of T.
//
// The zero value is an empty stack ready for use. Stack is not safe for
// concurrent use.
type Stack[T any] struct {
	items []T
}

// New constructs an empty Stack, applying any functional options.
//
// Complexity: O(1) (plus the capacity allocation, if requested).
func New[T any](opts ...Option) *Stack[T] {
	// 1) Build options from defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Allocate the backing slice with the requested capacity.
	return &Stack[T]{items: make([]T, 0, cfg.Capacity)}
}

// Push appends item to the top of the stack. It never fails.
//
// Complexity: amortized O(1).
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the most recently pushed item.
// Returns ErrEmptyStack if the stack holds no elements.
//
// Complexity: O(1).
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, ErrEmptyStack
	}

	item := s.items[n-1]
	// Zero the vacated slot so the backing array does not pin the value.
	s.items[n-1] = zero
	s.items = s.items[:n-1]

	return item, nil
}

// Peek returns the top item without removing it.
// Returns ErrEmptyStack if the stack holds no elements.
//
// Complexity: O(1).
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmptyStack
	}

	return s.items[len(s.items)-1], nil
}

// Drain removes and returns all elements in pop order (most-recent-first),
// leaving the stack empty. The returned slice is freshly allocated and
// owned by the caller.
//
// Complexity: O(n).
func (s *Stack[T]) Drain() []T {
	n := len(s.items)
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = s.items[n-1-i]
	}

	// Release element references, keep the backing capacity for reuse.
	clear(s.items)
	s.items = s.items[:0]

	return out
}

// Len returns the number of elements currently on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Clear discards all elements in place, retaining the backing capacity.
//
// Complexity: O(n) (element slots are zeroed).
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Clone returns an independent copy of the stack: mutations on either
// side never affect the other.
//
// Complexity: O(n).
func (s *Stack[T]) Clone() *Stack[T] {
	cp := make([]T, len(s.items))
	copy(cp, s.items)

	return &Stack[T]{items: cp}
}
