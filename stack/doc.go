// Package stack provides a minimal, slice-backed LIFO buffer.
//
// Overview:
//
//   - Stack[T] stores elements of any type T; the last-pushed,
//     not-yet-popped element is always returned first.
//   - Pop and Peek signal an empty stack with ErrEmptyStack rather than
//     panicking, so callers can branch on absence cheaply.
//   - Drain removes and returns every element in pop order
//     (most-recent-first), leaving the stack empty in one call.
//
// When to use:
//
//   - Depth-first exploration, undo histories, backtracking buffers.
//   - Reversing a sequence built back-to-front: push while walking,
//     Drain to read it forward (dijkstra uses exactly this for paths).
//
// Performance and complexity:
//
//   - Push: amortized O(1) (slice append).
//   - Pop, Peek, Len, IsEmpty: O(1).
//   - Drain, Clone: O(n).
//   - Popped slots are zeroed so the backing array drops references early.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyStack:  returned by Pop and Peek on an empty stack.
//   - ErrBadCapacity: WithCapacity panics with this text for negative sizes.
//
// The zero value is an empty, ready-to-use stack; New is only needed when
// a capacity hint matters.
//
// Stack is not safe for concurrent use; it is a single-owner container.
package stack
