//go:build property
// +build property

package container

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestSortedMapProperties checks the container invariants over random
// operation sequences. Run with: go test -tags property ./container
func TestSortedMapProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: after any insert sequence, keys iterate in
	// non-decreasing order.
	properties.Property("insert preserves sortedness", prop.ForAll(
		func(keys []int) bool {
			m := NewSortedMap[int, int]()
			for i, k := range keys {
				m.Insert(k, i)
			}
			return isSortedKeys(m)
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
	))

	// Property: bulk insertion yields the same sorted key multiset as
	// one-by-one insertion, regardless of input order.
	properties.Property("bulk equivalence", prop.ForAll(
		func(keys []int) bool {
			bulk := NewSortedMap[int, struct{}]()
			bulk.BeginBulk()
			for _, k := range keys {
				bulk.InsertBulk(k, struct{}{})
			}
			bulk.EndBulk()

			want := slices.Clone(keys)
			slices.Sort(want)
			return slices.Equal(slices.Collect(bulk.Keys()), want)
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
	))

	// Property: duplicates of any key occupy one contiguous index range.
	properties.Property("duplicate adjacency", prop.ForAll(
		func(keys []int) bool {
			m := NewSortedMap[int, int]()
			for i, k := range keys {
				m.Insert(k%16, i) // narrow key space forces duplicates
			}
			seen := map[int]bool{}
			last := 0
			for i := 0; i < m.Len(); i++ {
				k := m.KeyAt(i)
				if i > 0 && k != last && seen[k] {
					return false // key range re-opened: not contiguous
				}
				seen[k] = true
				last = k
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 1<<20)),
	))

	// Property: Erase removes every entry with the key and nothing else.
	properties.Property("erase completeness", prop.ForAll(
		func(keys []int, victim int) bool {
			m := NewSortedMap[int, int]()
			expect := 0
			for i, k := range keys {
				k %= 8
				m.Insert(k, i)
				if k == victim {
					expect++
				}
			}
			if got := m.Erase(victim); got != expect {
				return false
			}
			return !m.Contains(victim) && m.Len() == len(keys)-expect && isSortedKeys(m)
		},
		gen.SliceOf(gen.IntRange(0, 1<<20)),
		gen.IntRange(0, 7),
	))

	// Property: Insert then Get round-trips the value for fresh keys.
	properties.Property("insert/get round-trip", prop.ForAll(
		func(key int, value string) bool {
			m := NewSortedMap[int, string]()
			m.Insert(key, value)
			got, ok := m.Get(key)
			return ok && got == value
		},
		gen.Int(),
		gen.AnyString(),
	))

	// Property: the second InsertUnique for a key fails and leaves the
	// first value in place.
	properties.Property("unique constraint", prop.ForAll(
		func(key int, v1, v2 string) bool {
			m := NewSortedMap[int, string]()
			if !m.InsertUnique(key, v1) {
				return false
			}
			if m.InsertUnique(key, v2) {
				return false
			}
			return m.MustGet(key) == v1 && m.Len() == 1
		},
		gen.Int(),
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func isSortedKeys(m *SortedMap[int, int]) bool {
	for i := 1; i < m.Len(); i++ {
		if m.KeyAt(i) < m.KeyAt(i-1) {
			return false
		}
	}
	return true
}
