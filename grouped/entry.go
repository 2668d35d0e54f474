package grouped

import "fmt"

// Entry holds one key→value pair from a keyed group.
// It is the element type yielded by [Map.All].
//
// Portability note: in Python this maps to a 2-tuple; in TypeScript to
// [K, V]; in Rust to (K, V).
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// String returns a human-readable representation: "key=value".
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v=%v", e.Key, e.Value)
}
