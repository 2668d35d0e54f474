package grouped_test

import (
	"slices"
	"testing"

	"github.com/hasbyte1/go-grouped-collections/grouped"
)

func tagSet() *grouped.Set[string, string] {
	return grouped.NewSet[string, string]().
		Add("post-1", "go", "generics").
		Add("post-2", "testing")
}

// ─────────────────────────────────────────────────────────────────────────────
// Construction & adding
// ─────────────────────────────────────────────────────────────────────────────

func TestNewSetIsEmpty(t *testing.T) {
	s := grouped.NewSet[string, string]()
	if !s.IsEmpty() || s.Count() != 0 || s.GroupCount() != 0 {
		t.Fatal("new set should be empty")
	}
}

func TestSetAddDeduplicates(t *testing.T) {
	s := grouped.NewSet[string, string]().Add("tags", "js", "node", "js")
	if s.CountOf("tags") != 2 {
		t.Fatalf("CountOf = %d; want 2 (duplicates collapse)", s.CountOf("tags"))
	}
	s.Add("tags", "js")
	if s.CountOf("tags") != 2 {
		t.Fatal("re-adding an existing value should be a no-op")
	}
}

func TestSetAddNothing(t *testing.T) {
	s := grouped.NewSet[string, string]().Add("tags")
	if s.Has("tags") {
		t.Fatal("Add with zero values should not create the group")
	}
}

func TestSetAddChaining(t *testing.T) {
	s := grouped.NewSet[string, string]()
	if s.Add("g", "a") != s {
		t.Fatal("Add should return the receiver for chaining")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Replace semantics
// ─────────────────────────────────────────────────────────────────────────────

func TestSetSetReplaces(t *testing.T) {
	s := grouped.NewSet[string, string]().
		Add("tags", "old-1", "old-2").
		Set("tags", "new")
	if s.CountOf("tags") != 1 || !s.Contains("tags", "new") {
		t.Fatal("Set should replace the group's contents wholesale")
	}
	if s.Contains("tags", "old-1") {
		t.Fatal("Set should discard previous values")
	}
}

func TestSetSetWithNoValuesDeletes(t *testing.T) {
	s := tagSet()
	s.Set("post-1")
	if s.Has("post-1") {
		t.Fatal("Set with zero values should delete the group")
	}
	if !s.Has("post-2") {
		t.Fatal("other groups must be untouched")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Membership
// ─────────────────────────────────────────────────────────────────────────────

func TestSetContains(t *testing.T) {
	s := tagSet()
	if !s.Contains("post-1", "go") {
		t.Fatal("Contains failed for present value")
	}
	if s.Contains("post-1", "rust") || s.Contains("ghost", "go") {
		t.Fatal("Contains should be false for missing value or group")
	}
}

func TestSetContainsAll(t *testing.T) {
	s := tagSet()
	if !s.ContainsAll("post-1", "go", "generics") {
		t.Fatal("ContainsAll failed when all present")
	}
	if s.ContainsAll("post-1", "go", "rust") {
		t.Fatal("ContainsAll should be false when any value is missing")
	}
	if !s.ContainsAll("post-1") {
		t.Fatal("ContainsAll with no values should be true on a present group")
	}
	if s.ContainsAll("ghost") {
		t.Fatal("ContainsAll should be false on an absent group")
	}
}

func TestSetContainsAny(t *testing.T) {
	s := tagSet()
	if !s.ContainsAny("post-1", "rust", "go") {
		t.Fatal("ContainsAny failed when one value present")
	}
	if s.ContainsAny("post-1", "rust", "zig") || s.ContainsAny("post-1") {
		t.Fatal("ContainsAny should be false with no matches or no values")
	}
	if s.ContainsAny("ghost", "go") {
		t.Fatal("ContainsAny should be false on an absent group")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Deleting
// ─────────────────────────────────────────────────────────────────────────────

func TestSetDelete(t *testing.T) {
	s := grouped.NewSet[string, string]().Add("tags", "js", "node")
	removed := s.Delete("tags", "node", "rust")
	assertSlice(t, removed, []string{"node"})
	if !s.Has("tags") {
		t.Fatal("group should survive while a value remains")
	}
}

func TestSetDeleteEmptiesGroup(t *testing.T) {
	s := grouped.NewSet[string, string]().Add("tags", "js", "node")
	removed := s.Delete("tags", "js", "node")
	assertSlice(t, removed, []string{"js", "node"}) // argument order
	if s.Has("tags") {
		t.Fatal("deleting the last values should remove the group")
	}
}

func TestSetDeleteAbsent(t *testing.T) {
	s := tagSet()
	removed := s.Delete("ghost", "go")
	if removed == nil || len(removed) != 0 {
		t.Fatalf("Delete on absent group = %v; want empty non-nil slice", removed)
	}
}

func TestSetFlush(t *testing.T) {
	s := tagSet()
	prior := s.Flush("post-1")
	assertElements(t, prior, []string{"generics", "go"})
	if s.Has("post-1") {
		t.Fatal("Flush should leave the group absent")
	}
}

func TestSetFlushAbsent(t *testing.T) {
	s := grouped.NewSet[string, string]()
	prior := s.Flush("ghost")
	if prior == nil || len(prior) != 0 {
		t.Fatalf("Flush on absent group = %v; want empty non-nil slice", prior)
	}
}

func TestSetClear(t *testing.T) {
	s := tagSet()
	s.Clear()
	if !s.IsEmpty() {
		t.Fatal("Clear should remove every group")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration & counting
// ─────────────────────────────────────────────────────────────────────────────

func TestSetValues(t *testing.T) {
	s := tagSet()
	assertElements(t, slices.Collect(s.Values("post-1")), []string{"generics", "go"})
	if n := len(slices.Collect(s.Values("ghost"))); n != 0 {
		t.Fatalf("Values on absent group yielded %d items; want 0", n)
	}
}

func TestSetKeysAliasesValues(t *testing.T) {
	s := tagSet()
	assertElements(t,
		slices.Collect(s.Keys("post-1")),
		slices.Collect(s.Values("post-1")))
}

func TestSetAll(t *testing.T) {
	s := tagSet()
	total := 0
	for g, v := range s.All() {
		total++
		if !s.Contains(g, v) {
			t.Fatalf("All yielded (%v, %v) not present in the set", g, v)
		}
	}
	if total != 3 {
		t.Fatalf("All traversal yielded %d pairs; want 3", total)
	}
}

func TestSetCounts(t *testing.T) {
	s := tagSet()
	if s.Count() != 3 || s.GroupCount() != 2 {
		t.Fatalf("Count=%d GroupCount=%d; want 3, 2", s.Count(), s.GroupCount())
	}
}

// Worked scenario mirroring typical tag bookkeeping.
func TestSetScenario(t *testing.T) {
	s := grouped.NewSet[string, string]().Add("tags", "js", "node", "js")
	if s.CountOf("tags") != 2 {
		t.Fatalf("CountOf = %d; want 2", s.CountOf("tags"))
	}
	removed := s.Delete("tags", "node")
	assertSlice(t, removed, []string{"node"})
	if !s.Has("tags") {
		t.Fatal("tags should still exist: js remains")
	}
}
