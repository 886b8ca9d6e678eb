// Package orderedmap implements the insertion-order-preserving map over
// two parallel slices.
package orderedmap

// OrderedMap is an associative container whose iteration order is the
// insertion order of its keys. It holds two index-aligned slices; the
// invariant len(keys) == len(values) holds after every operation, and all
// keys are unique.
//
// OrderedMap is not safe for concurrent use.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values []V
}

// New constructs an empty OrderedMap, applying any functional options.
//
// Complexity: O(1) (plus the capacity allocation, if requested).
func New[K comparable, V any](opts ...Option) *OrderedMap[K, V] {
	// 1) Build options from defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Allocate both sequences with the same capacity so they grow together.
	return &OrderedMap[K, V]{
		keys:   make([]K, 0, cfg.Capacity),
		values: make([]V, 0, cfg.Capacity),
	}
}

// indexOf returns the position of key, or -1 when absent.
// This linear equality scan is the container's single lookup primitive.
func (m *OrderedMap[K, V]) indexOf(key K) int {
	for i, k := range m.keys {
		if k == key {
			return i
		}
	}

	return -1
}

// Put inserts key with value, or overwrites the value in place when the
// key is already present. Existing keys keep their original insertion
// position; new keys append at the end.
//
// Complexity: O(n).
func (m *OrderedMap[K, V]) Put(key K, value V) {
	if i := m.indexOf(key); i >= 0 {
		m.values[i] = value
		return
	}

	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
}

// PutNX inserts key with value only when the key is absent, and reports
// whether it inserted. An existing key is left untouched.
//
// Complexity: O(n).
func (m *OrderedMap[K, V]) PutNX(key K, value V) (added bool) {
	if m.indexOf(key) >= 0 {
		return false
	}

	m.keys = append(m.keys, key)
	m.values = append(m.values, value)

	return true
}

// Get returns the value paired with key and whether the key was present.
//
// Complexity: O(n).
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	if i := m.indexOf(key); i >= 0 {
		return m.values[i], true
	}

	var zero V

	return zero, false
}

// Has reports whether key is present.
//
// Complexity: O(n).
func (m *OrderedMap[K, V]) Has(key K) bool {
	return m.indexOf(key) >= 0
}

// Remove deletes key and its value, shifting all subsequent pairs one
// position left, and returns the removed value and whether the key was
// present.
//
// Complexity: O(n).
func (m *OrderedMap[K, V]) Remove(key K) (V, bool) {
	i := m.indexOf(key)
	if i < 0 {
		var zero V
		return zero, false
	}

	removed := m.values[i]

	// Shift the tails left, then zero and drop the duplicated last slot
	// so neither backing array pins removed data.
	var zeroK K
	var zeroV V
	last := len(m.keys) - 1
	copy(m.keys[i:], m.keys[i+1:])
	copy(m.values[i:], m.values[i+1:])
	m.keys[last] = zeroK
	m.values[last] = zeroV
	m.keys = m.keys[:last]
	m.values = m.values[:last]

	return removed, true
}

// Len returns the number of stored pairs.
func (m *OrderedMap[K, V]) Len() int { return len(m.keys) }

// Keys returns a snapshot of all keys in insertion order. Mutating the
// returned slice never affects the map.
//
// Complexity: O(n).
func (m *OrderedMap[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)

	return out
}

// Values returns a snapshot of all values in insertion order.
//
// Complexity: O(n).
func (m *OrderedMap[K, V]) Values() []V {
	out := make([]V, len(m.values))
	copy(out, m.values)

	return out
}

// Items returns a snapshot of all pairs in insertion order.
//
// Complexity: O(n).
func (m *OrderedMap[K, V]) Items() []Pair[K, V] {
	out := make([]Pair[K, V], len(m.keys))
	for i := range m.keys {
		out[i] = Pair[K, V]{Key: m.keys[i], Value: m.values[i]}
	}

	return out
}

// ForEach visits every pair in insertion order, passing the zero-based
// insertion index as order. The map must not be mutated during the walk.
//
// Complexity: O(n), plus the callback cost.
func (m *OrderedMap[K, V]) ForEach(fn ForEachFn[K, V]) {
	for i := range m.keys {
		fn(m.keys[i], m.values[i], i)
	}
}

// Clear discards all pairs in place, retaining the backing capacity.
//
// Complexity: O(n).
func (m *OrderedMap[K, V]) Clear() {
	clear(m.keys)
	clear(m.values)
	m.keys = m.keys[:0]
	m.values = m.values[:0]
}

// Clone returns an independent copy: mutations on either side never
// affect the other.
//
// Complexity: O(n).
func (m *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	cp := &OrderedMap[K, V]{
		keys:   make([]K, len(m.keys)),
		values: make([]V, len(m.values)),
	}
	copy(cp.keys, m.keys)
	copy(cp.values, m.values)

	return cp
}
