package grouped

import "iter"

// Grouper is the surface shared by all three grouped-collection variants,
// parameterized only by the group identifier type.
//
// Accept Grouper in your own functions when you need group-level
// bookkeeping (existence, counting, clearing) and do not care which inner
// collection kind a caller hands you. Item-level operations differ per
// variant and live on the concrete types [Map], [Set] and [List].
type Grouper[G comparable] interface {
	// Has reports whether the group exists, i.e. holds at least one item.
	Has(group G) bool

	// Count returns the total number of items across every group.
	Count() int

	// CountOf returns the number of items in one group (0 when absent).
	CountOf(group G) int

	// GroupCount returns the number of non-empty groups.
	GroupCount() int

	// IsEmpty reports whether no groups exist.
	IsEmpty() bool

	// IsNotEmpty reports whether at least one group exists.
	IsNotEmpty() bool

	// Groups returns a fresh lazy sequence of the group identifiers.
	Groups() iter.Seq[G]

	// Clear removes every group.
	Clear()
}
