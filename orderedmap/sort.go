// Package orderedmap sorting: in-place reordering of the parallel slices.
package orderedmap

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// pairSorter adapts the two parallel slices to sort.Interface, swapping
// keys and values in lockstep so index alignment survives the sort.
type pairSorter[K comparable, V any] struct {
	m    *OrderedMap[K, V]
	less LessFn[K, V]
}

func (p pairSorter[K, V]) Len() int { return len(p.m.keys) }

func (p pairSorter[K, V]) Less(i, j int) bool {
	return p.less(
		Pair[K, V]{Key: p.m.keys[i], Value: p.m.values[i]},
		Pair[K, V]{Key: p.m.keys[j], Value: p.m.values[j]},
	)
}

func (p pairSorter[K, V]) Swap(i, j int) {
	p.m.keys[i], p.m.keys[j] = p.m.keys[j], p.m.keys[i]
	p.m.values[i], p.m.values[j] = p.m.values[j], p.m.values[i]
}

// SortBy reorders the map in place by the caller's pair comparison.
// The sort is stable, so equal pairs keep their relative insertion order.
// After SortBy, iteration order is the sorted order until the next mutation.
//
// Complexity: O(n log n) comparisons.
func (m *OrderedMap[K, V]) SortBy(less LessFn[K, V]) {
	sort.Stable(pairSorter[K, V]{m: m, less: less})
}

// SortByKeys reorders m in place into ascending key order. It is the
// package-level form because the ordering bound on K cannot be expressed
// on a method.
//
// Complexity: O(n log n) comparisons.
func SortByKeys[K constraints.Ordered, V any](m *OrderedMap[K, V]) {
	m.SortBy(func(a, b Pair[K, V]) bool { return a.Key < b.Key })
}
