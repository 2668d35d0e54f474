// Package grouped provides two-level, in-memory grouped collections: a
// mapping from a group identifier to an inner collection that is created
// lazily on first write and removed automatically the moment it becomes
// empty.
//
// # Overview
//
// Three variants share the same contract and differ only in the inner
// collection's semantics:
//
//   - [Map][G, K, V] — each group holds a key→value mapping
//   - [Set][G, V]    — each group holds unique values
//   - [List][G, V]   — each group holds an ordered sequence, duplicates allowed
//
// Write operations return the receiver, so calls chain:
//
//	users := grouped.NewMap[string, int, string]().
//	    Set("admins", 1, "Alice").
//	    Set("admins", 2, "Bob")
//
//	tags := grouped.NewSet[string, string]().
//	    Add("post-1", "go", "generics", "go") // duplicates collapse
//
// # The group-existence invariant
//
// A group identifier is present exactly as long as its inner collection is
// non-empty. There is no way to observe an empty group: deleting the last
// item of a group removes the group itself, and Has reports false
// immediately afterwards.
//
//	log := grouped.NewList[string, string]()
//	log.Add("boot", "a", "b")
//	log.Delete("boot", "a", "b")
//	log.Has("boot") // → false
//
// # Absence is a value, never an error
//
// No operation returns an error or panics for a missing group or item.
// Lookups use comma-ok, membership tests return false, Delete returns an
// empty removed-collection, and Keys/Values on an absent group yield an
// empty (but always safely rangeable) sequence.
//
// # Lazy iteration
//
// Keys, Values, Entries, Groups and All return iter.Seq / iter.Seq2
// sequences. Each call produces a fresh, restartable sequence that reads the
// live structure as iteration proceeds — mutating a collection while ranging
// over one of its sequences has the same caveats as mutating a native map
// mid-range, and callers must avoid it. Map and Set groups iterate in Go's
// native (unspecified) map order; List groups iterate in insertion order.
//
// # Concurrency
//
// Instances perform no internal locking. Concurrent readers are safe only
// while no goroutine mutates; callers who share an instance across
// goroutines must serialize access themselves (for example with a
// sync.Mutex per instance).
//
// # Portability
//
// The contract mirrors the map-of-maps / map-of-sets / map-of-arrays
// pattern found in other ecosystems:
//
//   - JavaScript: Map<G, Map<K, V>> with manual create-on-write/delete-on-empty
//   - Python: collections.defaultdict(dict | set | list) plus explicit pruning
//   - Rust: HashMap<G, HashMap<K, V>> with the entry API
package grouped
