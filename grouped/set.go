package grouped

import (
	"encoding/json"
	"fmt"
	"iter"
)

// Set is a two-level mapping: group identifier → set of unique values.
//
// Groups are created lazily on the first [Set.Add] and removed automatically
// when a [Set.Delete] empties them, so a group identifier is present exactly
// while it holds at least one value. Adding a value a group already holds is
// a no-op.
//
// # Creating and chaining
//
//	tags := grouped.NewSet[string, string]().
//	    Add("post-1", "go", "generics", "go"). // duplicates collapse
//	    Add("post-2", "testing")
//
// Add inserts into the existing group; [Set.Set] replaces the group
// wholesale. The two are deliberately different operations.
//
// Set is not safe for concurrent mutation; see the package documentation.
type Set[G, V comparable] struct {
	groups map[G]map[V]struct{}
}

// NewSet creates an empty grouped Set.
func NewSet[G, V comparable]() *Set[G, V] {
	return &Set[G, V]{groups: make(map[G]map[V]struct{})}
}

// ─────────────────────────────────────────────────────────────────────────────
// Existence & counting
// ─────────────────────────────────────────────────────────────────────────────

// Has reports whether the group exists. A group exists exactly while it
// holds at least one value.
func (s *Set[G, V]) Has(group G) bool {
	_, ok := s.groups[group]
	return ok
}

// Contains reports whether the group holds value.
// Returns false, not an error, when the group is absent.
func (s *Set[G, V]) Contains(group G, value V) bool {
	_, ok := s.groups[group][value]
	return ok
}

// ContainsAll reports whether the group exists and holds every given value.
// With zero values it reduces to Has(group).
func (s *Set[G, V]) ContainsAll(group G, values ...V) bool {
	inner, ok := s.groups[group]
	if !ok {
		return false
	}
	for _, v := range values {
		if _, ok := inner[v]; !ok {
			return false
		}
	}
	return true
}

// ContainsAny reports whether the group exists and holds at least one of the
// given values. Returns false when the group is absent or no values are
// given.
func (s *Set[G, V]) ContainsAny(group G, values ...V) bool {
	inner, ok := s.groups[group]
	if !ok {
		return false
	}
	for _, v := range values {
		if _, ok := inner[v]; ok {
			return true
		}
	}
	return false
}

// Count returns the total number of values across every group.
func (s *Set[G, V]) Count() int {
	n := 0
	for _, inner := range s.groups {
		n += len(inner)
	}
	return n
}

// CountOf returns the number of values in one group (0 when absent).
func (s *Set[G, V]) CountOf(group G) int {
	return len(s.groups[group])
}

// GroupCount returns the number of non-empty groups.
func (s *Set[G, V]) GroupCount() int { return len(s.groups) }

// IsEmpty reports whether no groups exist.
func (s *Set[G, V]) IsEmpty() bool { return len(s.groups) == 0 }

// IsNotEmpty reports whether at least one group exists.
func (s *Set[G, V]) IsNotEmpty() bool { return len(s.groups) > 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Writing
// ─────────────────────────────────────────────────────────────────────────────

// Add inserts each value into the group's set and returns s for chaining.
// Values the group already holds are ignored. The group is created on first
// use; a call with zero values is a no-op and creates nothing.
func (s *Set[G, V]) Add(group G, values ...V) *Set[G, V] {
	if len(values) == 0 {
		return s
	}
	inner, ok := s.groups[group]
	if !ok {
		inner = make(map[V]struct{}, len(values))
		s.groups[group] = inner
	}
	for _, v := range values {
		inner[v] = struct{}{}
	}
	return s
}

// Set replaces the group's entire set with the given values and returns s
// for chaining. With zero values the group is deleted outright. Contrast
// with [Set.Add], which inserts into the existing set.
func (s *Set[G, V]) Set(group G, values ...V) *Set[G, V] {
	if len(values) == 0 {
		delete(s.groups, group)
		return s
	}
	inner := make(map[V]struct{}, len(values))
	for _, v := range values {
		inner[v] = struct{}{}
	}
	s.groups[group] = inner
	return s
}

// Delete removes each given value from the group and returns the values
// actually removed, in argument order, each at most once (empty, never nil,
// when nothing matched or the group is absent). If the group becomes empty
// it is removed entirely.
func (s *Set[G, V]) Delete(group G, values ...V) []V {
	removed := make([]V, 0, len(values))
	inner, ok := s.groups[group]
	if !ok {
		return removed
	}
	for _, v := range values {
		if _, ok := inner[v]; ok {
			removed = append(removed, v)
			delete(inner, v)
		}
	}
	if len(inner) == 0 {
		delete(s.groups, group)
	}
	return removed
}

// Flush removes the entire group and returns its former values in one step,
// with no window where both exist. Returns an empty, never nil, slice when
// the group was absent. The order of the returned values is unspecified.
func (s *Set[G, V]) Flush(group G) []V {
	inner, ok := s.groups[group]
	if !ok {
		return []V{}
	}
	delete(s.groups, group)
	out := make([]V, 0, len(inner))
	for v := range inner {
		out = append(out, v)
	}
	return out
}

// Clear removes every group.
func (s *Set[G, V]) Clear() {
	s.groups = make(map[G]map[V]struct{})
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Groups returns a fresh lazy sequence of the group identifiers, in Go's
// native map order.
func (s *Set[G, V]) Groups() iter.Seq[G] {
	return func(yield func(G) bool) {
		for g := range s.groups {
			if !yield(g) {
				return
			}
		}
	}
}

// Values returns a fresh lazy sequence of the values within the group.
// An absent group yields an empty sequence, never nil.
func (s *Set[G, V]) Values(group G) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range s.groups[group] {
			if !yield(v) {
				return
			}
		}
	}
}

// Keys is an alias for [Set.Values]: a set has no key concept separate from
// its values. Kept for symmetry with [Map.Keys].
func (s *Set[G, V]) Keys(group G) iter.Seq[V] {
	return s.Values(group)
}

// All returns a fresh lazy sequence over the whole structure: every group
// paired with each of its values, outer-then-inner.
func (s *Set[G, V]) All() iter.Seq2[G, V] {
	return func(yield func(G, V) bool) {
		for g, inner := range s.groups {
			for v := range inner {
				if !yield(g, v) {
					return
				}
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Serialisation
// ─────────────────────────────────────────────────────────────────────────────

// ToJSON serialises the structure as a JSON object of arrays. The order of
// each array is unspecified. Fails when G cannot serve as a JSON object key.
func (s *Set[G, V]) ToJSON() ([]byte, error) {
	out := make(map[G][]V, len(s.groups))
	for g, inner := range s.groups {
		vs := make([]V, 0, len(inner))
		for v := range inner {
			vs = append(vs, v)
		}
		out[g] = vs
	}
	return json.Marshal(out)
}

// String returns a JSON representation, falling back to fmt formatting for
// unserialisable key types. It implements [fmt.Stringer].
func (s *Set[G, V]) String() string {
	b, err := s.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", s.groups)
	}
	return string(b)
}
