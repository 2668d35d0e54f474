package grouped

import (
	"encoding/json"
	"fmt"
	"iter"
)

// Map is a two-level mapping: group identifier → (key → value).
//
// Groups are created lazily on the first [Map.Set] and removed automatically
// when a [Map.Delete] empties them, so a group identifier is present exactly
// while it holds at least one key. (group, key) pairs are unique: setting an
// existing pair overwrites its value.
//
// # Creating and chaining
//
//	m := grouped.NewMap[string, int, User]().
//	    Set("users", 1, alice).
//	    Set("users", 2, bob)
//
// # Lookup
//
//	u, ok := m.Get("users", 1)   // comma-ok, never an error
//	m.HasKey("users", 99)        // → false, also for absent groups
//
// Map is not safe for concurrent mutation; see the package documentation.
type Map[G, K comparable, V any] struct {
	groups map[G]map[K]V
}

// NewMap creates an empty grouped Map.
func NewMap[G, K comparable, V any]() *Map[G, K, V] {
	return &Map[G, K, V]{groups: make(map[G]map[K]V)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Existence & counting
// ─────────────────────────────────────────────────────────────────────────────

// Has reports whether the group exists. A group exists exactly while it
// holds at least one key.
func (m *Map[G, K, V]) Has(group G) bool {
	_, ok := m.groups[group]
	return ok
}

// HasKey reports whether the (group, key) pair is present.
// Returns false, not an error, when the group is absent.
func (m *Map[G, K, V]) HasKey(group G, key K) bool {
	_, ok := m.groups[group][key]
	return ok
}

// HasAllKeys reports whether the group exists and every given key is
// present. With zero keys it reduces to Has(group).
func (m *Map[G, K, V]) HasAllKeys(group G, keys ...K) bool {
	inner, ok := m.groups[group]
	if !ok {
		return false
	}
	for _, k := range keys {
		if _, ok := inner[k]; !ok {
			return false
		}
	}
	return true
}

// HasAnyKey reports whether the group exists and at least one given key is
// present. Returns false when the group is absent or no keys are given.
func (m *Map[G, K, V]) HasAnyKey(group G, keys ...K) bool {
	inner, ok := m.groups[group]
	if !ok {
		return false
	}
	for _, k := range keys {
		if _, ok := inner[k]; ok {
			return true
		}
	}
	return false
}

// Count returns the total number of key→value pairs across every group.
func (m *Map[G, K, V]) Count() int {
	n := 0
	for _, inner := range m.groups {
		n += len(inner)
	}
	return n
}

// CountOf returns the number of keys in one group (0 when absent).
func (m *Map[G, K, V]) CountOf(group G) int {
	return len(m.groups[group])
}

// GroupCount returns the number of non-empty groups.
func (m *Map[G, K, V]) GroupCount() int { return len(m.groups) }

// IsEmpty reports whether no groups exist.
func (m *Map[G, K, V]) IsEmpty() bool { return len(m.groups) == 0 }

// IsNotEmpty reports whether at least one group exists.
func (m *Map[G, K, V]) IsNotEmpty() bool { return len(m.groups) > 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Reading
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value stored at (group, key) together with a presence
// flag. Returns the zero value and false when the group or key is absent.
func (m *Map[G, K, V]) Get(group G, key K) (V, bool) {
	v, ok := m.groups[group][key]
	return v, ok
}

// GetAll returns the live inner map for the group, or nil when the group is
// absent. The map is the internal representation, not a copy: mutating it
// mutates the structure directly and can bypass the auto-delete-on-empty
// invariant. This is a deliberate performance trade-off for bulk reads;
// callers who need safety should copy with maps.Clone.
func (m *Map[G, K, V]) GetAll(group G) map[K]V {
	return m.groups[group]
}

// ─────────────────────────────────────────────────────────────────────────────
// Writing
// ─────────────────────────────────────────────────────────────────────────────

// Set stores value at (group, key), overwriting any previous value, and
// returns m for chaining. The group's inner map is created on first use.
func (m *Map[G, K, V]) Set(group G, key K, value V) *Map[G, K, V] {
	inner, ok := m.groups[group]
	if !ok {
		inner = make(map[K]V)
		m.groups[group] = inner
	}
	inner[key] = value
	return m
}

// Delete removes each given key from the group and returns the removed
// key→prior-value pairs (empty, never nil, when nothing matched or the
// group is absent). If the group becomes empty it is removed entirely.
func (m *Map[G, K, V]) Delete(group G, keys ...K) map[K]V {
	removed := make(map[K]V, len(keys))
	inner, ok := m.groups[group]
	if !ok {
		return removed
	}
	for _, k := range keys {
		if v, ok := inner[k]; ok {
			removed[k] = v
			delete(inner, k)
		}
	}
	if len(inner) == 0 {
		delete(m.groups, group)
	}
	return removed
}

// Flush removes the entire group and returns its former contents in one
// step, with no window where both exist. Returns an empty, never nil, map
// when the group was absent.
func (m *Map[G, K, V]) Flush(group G) map[K]V {
	inner, ok := m.groups[group]
	if !ok {
		return make(map[K]V)
	}
	delete(m.groups, group)
	return inner
}

// Clear removes every group.
func (m *Map[G, K, V]) Clear() {
	m.groups = make(map[G]map[K]V)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Groups returns a fresh lazy sequence of the group identifiers, in Go's
// native map order.
func (m *Map[G, K, V]) Groups() iter.Seq[G] {
	return func(yield func(G) bool) {
		for g := range m.groups {
			if !yield(g) {
				return
			}
		}
	}
}

// Keys returns a fresh lazy sequence of the keys within the group.
// An absent group yields an empty sequence, never nil.
func (m *Map[G, K, V]) Keys(group G) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.groups[group] {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns a fresh lazy sequence of the values within the group.
// An absent group yields an empty sequence, never nil.
func (m *Map[G, K, V]) Values(group G) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.groups[group] {
			if !yield(v) {
				return
			}
		}
	}
}

// Entries returns a fresh lazy sequence of the (key, value) pairs within
// the group. An absent group yields an empty sequence, never nil.
func (m *Map[G, K, V]) Entries(group G) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m.groups[group] {
			if !yield(k, v) {
				return
			}
		}
	}
}

// All returns a fresh lazy sequence over the whole structure: every group
// paired with each of its entries, outer-then-inner.
func (m *Map[G, K, V]) All() iter.Seq2[G, Entry[K, V]] {
	return func(yield func(G, Entry[K, V]) bool) {
		for g, inner := range m.groups {
			for k, v := range inner {
				if !yield(g, Entry[K, V]{Key: k, Value: v}) {
					return
				}
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Serialisation
// ─────────────────────────────────────────────────────────────────────────────

// ToJSON serialises the structure as a JSON object of objects.
// Fails when G or K cannot serve as a JSON object key.
func (m *Map[G, K, V]) ToJSON() ([]byte, error) {
	return json.Marshal(m.groups)
}

// String returns a JSON representation, falling back to fmt formatting for
// unserialisable key types. It implements [fmt.Stringer].
func (m *Map[G, K, V]) String() string {
	b, err := m.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", m.groups)
	}
	return string(b)
}
