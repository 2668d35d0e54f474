package grouped

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
)

// List is a two-level mapping: group identifier → ordered list of values.
//
// Groups are created lazily on the first [List.Add] and removed
// automatically when a [List.Delete] empties them, so a group identifier is
// present exactly while it holds at least one value. Unlike [Set], a group
// may hold the same value several times, and values iterate in insertion
// order.
//
// # Creating and chaining
//
//	log := grouped.NewList[string, string]().
//	    Add("boot", "a", "b").
//	    Add("boot", "a") // → boot holds [a b a]
//
// Add appends to the existing group; [List.Set] replaces the group
// wholesale. The two are deliberately different operations.
//
// List is not safe for concurrent mutation; see the package documentation.
type List[G, V comparable] struct {
	groups map[G][]V
}

// NewList creates an empty grouped List.
func NewList[G, V comparable]() *List[G, V] {
	return &List[G, V]{groups: make(map[G][]V)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Existence & counting
// ─────────────────────────────────────────────────────────────────────────────

// Has reports whether the group exists. A group exists exactly while it
// holds at least one value.
func (l *List[G, V]) Has(group G) bool {
	_, ok := l.groups[group]
	return ok
}

// Contains reports whether the group holds at least one occurrence of value.
// Returns false, not an error, when the group is absent.
func (l *List[G, V]) Contains(group G, value V) bool {
	return slices.Contains(l.groups[group], value)
}

// ContainsAll reports whether the group exists and holds every given value.
// With zero values it reduces to Has(group).
func (l *List[G, V]) ContainsAll(group G, values ...V) bool {
	inner, ok := l.groups[group]
	if !ok {
		return false
	}
	for _, v := range values {
		if !slices.Contains(inner, v) {
			return false
		}
	}
	return true
}

// ContainsAny reports whether the group exists and holds at least one of the
// given values. Returns false when the group is absent or no values are
// given.
func (l *List[G, V]) ContainsAny(group G, values ...V) bool {
	inner, ok := l.groups[group]
	if !ok {
		return false
	}
	for _, v := range values {
		if slices.Contains(inner, v) {
			return true
		}
	}
	return false
}

// Count returns the total number of values across every group, counting
// duplicates.
func (l *List[G, V]) Count() int {
	n := 0
	for _, inner := range l.groups {
		n += len(inner)
	}
	return n
}

// CountOf returns the number of values in one group (0 when absent).
func (l *List[G, V]) CountOf(group G) int {
	return len(l.groups[group])
}

// GroupCount returns the number of non-empty groups.
func (l *List[G, V]) GroupCount() int { return len(l.groups) }

// IsEmpty reports whether no groups exist.
func (l *List[G, V]) IsEmpty() bool { return len(l.groups) == 0 }

// IsNotEmpty reports whether at least one group exists.
func (l *List[G, V]) IsNotEmpty() bool { return len(l.groups) > 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Writing
// ─────────────────────────────────────────────────────────────────────────────

// Add appends each value, in argument order, to the end of the group's list
// and returns l for chaining. The group is created on first use; a call
// with zero values is a no-op and creates nothing.
func (l *List[G, V]) Add(group G, values ...V) *List[G, V] {
	if len(values) == 0 {
		return l
	}
	l.groups[group] = append(l.groups[group], values...)
	return l
}

// Set replaces the group's entire list with the given values and returns l
// for chaining. With zero values the group is deleted outright. Contrast
// with [List.Add], which appends to the existing list.
func (l *List[G, V]) Set(group G, values ...V) *List[G, V] {
	if len(values) == 0 {
		delete(l.groups, group)
		return l
	}
	l.groups[group] = slices.Clone(values)
	return l
}

// Delete removes every occurrence of each given value from the group's list
// and returns the removed occurrences — one entry per occurrence, in the
// list's encounter order (empty, never nil, when nothing matched or the
// group is absent). If the group becomes empty it is removed entirely.
func (l *List[G, V]) Delete(group G, values ...V) []V {
	removed := []V{}
	inner, ok := l.groups[group]
	if !ok || len(values) == 0 {
		return removed
	}
	drop := make(map[V]struct{}, len(values))
	for _, v := range values {
		drop[v] = struct{}{}
	}
	kept := inner[:0]
	for _, v := range inner {
		if _, hit := drop[v]; hit {
			removed = append(removed, v)
		} else {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		delete(l.groups, group)
	} else {
		l.groups[group] = kept
	}
	return removed
}

// Flush removes the entire group and returns its former list, in insertion
// order, in one step, with no window where both exist. Returns an empty,
// never nil, slice when the group was absent.
func (l *List[G, V]) Flush(group G) []V {
	inner, ok := l.groups[group]
	if !ok {
		return []V{}
	}
	delete(l.groups, group)
	return inner
}

// Clear removes every group.
func (l *List[G, V]) Clear() {
	l.groups = make(map[G][]V)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Groups returns a fresh lazy sequence of the group identifiers, in Go's
// native map order.
func (l *List[G, V]) Groups() iter.Seq[G] {
	return func(yield func(G) bool) {
		for g := range l.groups {
			if !yield(g) {
				return
			}
		}
	}
}

// Values returns a fresh lazy sequence of the values within the group, in
// insertion order. An absent group yields an empty sequence, never nil.
func (l *List[G, V]) Values(group G) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range l.groups[group] {
			if !yield(v) {
				return
			}
		}
	}
}

// Keys is an alias for [List.Values]: a list has no key concept separate
// from its values. Kept for symmetry with [Map.Keys].
func (l *List[G, V]) Keys(group G) iter.Seq[V] {
	return l.Values(group)
}

// All returns a fresh lazy sequence over the whole structure: every group
// paired with each of its values in insertion order, outer-then-inner.
func (l *List[G, V]) All() iter.Seq2[G, V] {
	return func(yield func(G, V) bool) {
		for g, inner := range l.groups {
			for _, v := range inner {
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

// ToJSON serialises the structure as a JSON object of arrays, each in
// insertion order. Fails when G cannot serve as a JSON object key.
func (l *List[G, V]) ToJSON() ([]byte, error) {
	return json.Marshal(l.groups)
}

// String returns a JSON representation, falling back to fmt formatting for
// unserialisable key types. It implements [fmt.Stringer].
func (l *List[G, V]) String() string {
	b, err := l.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", l.groups)
	}
	return string(b)
}
