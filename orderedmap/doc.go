// Package orderedmap provides an associative container that preserves
// insertion order, built on two parallel, index-aligned slices.
//
// Overview:
//
//   - OrderedMap[K,V] keeps `keys` and `values` slices in lockstep:
//     position i of one always pairs with position i of the other.
//   - Every lookup, insert, and removal is a linear equality scan. That is
//     a deliberate trade: K needs only equality (`comparable`), not hashing
//     or ordering, and iteration order is exactly insertion order,
//     deterministic across runs with no bucket shuffling.
//   - Updating the value of an existing key never moves the key; new keys
//     always append at the end.
//
// When to use:
//
//   - Small registries and config tables where a stable, human-predictable
//     order matters more than O(1) lookups.
//   - Snapshot-friendly state: Keys/Values/Items return fresh slices, so
//     callers can iterate safely while deciding on mutations.
//
// When NOT to use:
//
//   - Hot paths with thousands of keys: every operation is O(n). Reach for
//     a plain map plus an explicit order slice instead.
//
// Performance and complexity:
//
//   - Put, PutNX, Get, Has, Remove: O(n) linear scan.
//   - Keys, Values, Items, Clone, ForEach: O(n).
//   - SortBy, SortByKeys: O(n log n) comparisons, swapping both slices in
//     lockstep.
//
// Error handling:
//
//   - Lookups use comma-ok returns; a missing key is an absent value, not
//     an error.
//   - ErrBadCapacity: WithCapacity panics with this text for negative sizes.
//
// OrderedMap is not safe for concurrent use; it is a single-owner container.
package orderedmap
