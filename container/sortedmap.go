package container

import (
	"cmp"
	"iter"
	"slices"
	"sort"
)

// InvalidIndex is the sentinel returned by index-returning lookups
// (FindIndex, FindDuplicate) when no matching entry exists.
const InvalidIndex = -1

// Default growth policy. When a full map needs room it grows by half
// its current capacity, clamped to [minGrow, maxGrow] elements.
const (
	DefaultMinGrow = 16
	DefaultMaxGrow = 1 << 16
)

// Entry is a key-value pair stored in a SortedMap. Entries are ordered
// by key only; the value never participates in ordering or equality.
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// SortedMap is a key-ordered associative container backed by a
// double-ended contiguous buffer. Lookups are O(log n) binary searches,
// insertion and erasure are O(n) worst case (one memmove over the
// shorter side of the buffer), and index-based access is O(1).
//
// Unlike the built-in map, SortedMap tolerates duplicate keys: entries
// sharing a key always occupy adjacent indices. Use InsertUnique to
// enforce key uniqueness and FindDuplicate to audit for redundant
// entries.
//
// See the package documentation for bulk mode, the failure model, and
// the invalidation contract.
type SortedMap[K cmp.Ordered, V any] struct {
	buf     buffer[Entry[K, V]]
	minGrow int
	maxGrow int
	bulk    bool
}

// NewSortedMap creates an empty SortedMap with the default growth
// policy.
func NewSortedMap[K cmp.Ordered, V any]() *SortedMap[K, V] {
	return &SortedMap[K, V]{minGrow: DefaultMinGrow, maxGrow: DefaultMaxGrow}
}

// NewSortedMapWithPolicy creates an empty SortedMap with a custom
// growth policy. Each reallocation grows the capacity by
// clamp(capacity/2, minGrow, maxGrow). Panics if minGrow is not
// positive or maxGrow is below minGrow.
func NewSortedMapWithPolicy[K cmp.Ordered, V any](minGrow, maxGrow int) *SortedMap[K, V] {
	if minGrow <= 0 || maxGrow < minGrow {
		panic("container: invalid grow policy")
	}
	return &SortedMap[K, V]{minGrow: minGrow, maxGrow: maxGrow}
}

// SetGrowPolicy replaces the growth policy. The same validity rules as
// NewSortedMapWithPolicy apply.
func (m *SortedMap[K, V]) SetGrowPolicy(minGrow, maxGrow int) {
	if minGrow <= 0 || maxGrow < minGrow {
		panic("container: invalid grow policy")
	}
	m.minGrow = minGrow
	m.maxGrow = maxGrow
}

// MinGrow returns the minimum per-reallocation growth.
func (m *SortedMap[K, V]) MinGrow() int { return m.minGrow }

// MaxGrow returns the maximum per-reallocation growth.
func (m *SortedMap[K, V]) MaxGrow() int { return m.maxGrow }

// Len returns the number of entries.
func (m *SortedMap[K, V]) Len() int { return m.buf.size() }

// Cap returns the current capacity of the backing buffer.
func (m *SortedMap[K, V]) Cap() int { return m.buf.capacity() }

// Empty reports whether the map holds no entries.
func (m *SortedMap[K, V]) Empty() bool { return m.buf.size() == 0 }

// InBulk reports whether the map is in bulk-insert mode.
func (m *SortedMap[K, V]) InBulk() bool { return m.bulk }

// mustSorted traps calls that require the sortedness invariant while
// bulk mode has suspended it.
func (m *SortedMap[K, V]) mustSorted() {
	if m.bulk {
		panic("container: SortedMap operation requires sorted order (EndBulk not called)")
	}
}

// lowerBound returns the first index whose key is >= key, or Len() if
// all keys are smaller.
func (m *SortedMap[K, V]) lowerBound(key K) int {
	return sort.Search(m.buf.size(), func(i int) bool {
		return m.buf.at(i).Key >= key
	})
}

// Contains reports whether at least one entry with the given key
// exists. O(log n). Panics in bulk mode.
func (m *SortedMap[K, V]) Contains(key K) bool {
	m.mustSorted()
	idx := m.lowerBound(key)
	return idx < m.buf.size() && m.buf.at(idx).Key == key
}

// FindIndex returns the index of the first entry with the given key,
// or InvalidIndex if the key is absent. O(log n). Panics in bulk mode.
func (m *SortedMap[K, V]) FindIndex(key K) int {
	m.mustSorted()
	idx := m.lowerBound(key)
	if idx < m.buf.size() && m.buf.at(idx).Key == key {
		return idx
	}
	return InvalidIndex
}

// Get returns the value of the first entry with the given key, and
// whether the key exists. O(log n). Panics in bulk mode.
func (m *SortedMap[K, V]) Get(key K) (V, bool) {
	m.mustSorted()
	idx := m.lowerBound(key)
	if idx < m.buf.size() {
		if e := m.buf.at(idx); e.Key == key {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// MustGet returns the value for key and panics if the key is absent.
// A missing key is a programmer error here; callers that need to probe
// must use Get, Contains or FindIndex instead.
func (m *SortedMap[K, V]) MustGet(key K) V {
	v, ok := m.Get(key)
	if !ok {
		panic("container: SortedMap key not found")
	}
	return v
}

// Insert adds an entry, keeping the map sorted. Duplicate keys are
// allowed; the new entry lands adjacent to existing entries with the
// same key. O(log n) search plus O(n) shift worst case. Panics in bulk
// mode.
func (m *SortedMap[K, V]) Insert(key K, value V) {
	m.mustSorted()
	if m.buf.spare() == 0 {
		m.grow()
	}
	m.buf.insert(m.lowerBound(key), Entry[K, V]{Key: key, Value: value})
}

// InsertUnique adds an entry only if no entry with the same key exists.
// It returns false, without mutating the map, when the key is already
// present. Panics in bulk mode.
func (m *SortedMap[K, V]) InsertUnique(key K, value V) bool {
	m.mustSorted()
	idx := m.lowerBound(key)
	if idx < m.buf.size() && m.buf.at(idx).Key == key {
		return false
	}
	if m.buf.spare() == 0 {
		m.grow()
	}
	m.buf.insert(idx, Entry[K, V]{Key: key, Value: value})
	return true
}

// Set replaces the value of the first entry with the given key, or
// inserts a new entry if the key is absent. Panics in bulk mode.
func (m *SortedMap[K, V]) Set(key K, value V) {
	m.mustSorted()
	idx := m.lowerBound(key)
	if idx < m.buf.size() {
		if e := m.buf.at(idx); e.Key == key {
			e.Value = value
			return
		}
	}
	if m.buf.spare() == 0 {
		m.grow()
		idx = m.lowerBound(key)
	}
	m.buf.insert(idx, Entry[K, V]{Key: key, Value: value})
}

// Erase removes every entry with the given key (duplicates are always
// adjacent) and returns how many were removed. Removing an absent key
// is a no-op. Panics in bulk mode.
func (m *SortedMap[K, V]) Erase(key K) int {
	m.mustSorted()
	idx := m.lowerBound(key)
	n := 0
	for idx < m.buf.size() && m.buf.at(idx).Key == key {
		m.buf.erase(idx)
		n++
	}
	return n
}

// EraseIndex removes the entry at the given index. Panics in bulk mode
// or if the index is out of range.
func (m *SortedMap[K, V]) EraseIndex(idx int) {
	m.mustSorted()
	m.buf.erase(idx)
}

// KeyAt returns the key of the entry at the given index.
func (m *SortedMap[K, V]) KeyAt(idx int) K {
	return m.buf.at(idx).Key
}

// ValueAt returns the value of the entry at the given index.
func (m *SortedMap[K, V]) ValueAt(idx int) V {
	return m.buf.at(idx).Value
}

// SetValueAt replaces the value of the entry at the given index. The
// key cannot be changed in place, as that could break the sort order.
func (m *SortedMap[K, V]) SetValueAt(idx int, value V) {
	m.buf.at(idx).Value = value
}

// FindDuplicate scans from startIndex for the first pair of adjacent
// entries sharing a key and returns the index of the first of the
// pair, or InvalidIndex if no duplicates exist. O(n). Panics in bulk
// mode.
func (m *SortedMap[K, V]) FindDuplicate(startIndex int) int {
	m.mustSorted()
	size := m.buf.size()
	for idx := startIndex; idx < size-1; idx++ {
		if m.buf.at(idx).Key == m.buf.at(idx+1).Key {
			return idx
		}
	}
	return InvalidIndex
}

// BeginBulk enters bulk-insert mode. While bulk mode is active the
// sortedness invariant is suspended and only InsertBulk, EndBulk and
// the size/capacity accessors may be used. Panics if bulk mode is
// already active.
func (m *SortedMap[K, V]) BeginBulk() {
	if m.bulk {
		panic("container: SortedMap already in bulk mode")
	}
	m.bulk = true
}

// InsertBulk appends an entry without maintaining sort order, choosing
// whichever end of the buffer has more spare room so the two spares
// stay balanced. O(1) amortized. Panics outside bulk mode.
func (m *SortedMap[K, V]) InsertBulk(key K, value V) {
	if !m.bulk {
		panic("container: InsertBulk outside bulk mode")
	}
	if m.buf.spare() == 0 {
		m.grow()
	}
	e := Entry[K, V]{Key: key, Value: value}
	if m.buf.frontSpare() > m.buf.backSpare() {
		m.buf.pushFront(e)
	} else {
		m.buf.pushBack(e)
	}
}

// EndBulk leaves bulk mode and restores the sortedness invariant with
// a single O(n log n) sort. Panics outside bulk mode.
func (m *SortedMap[K, V]) EndBulk() {
	if !m.bulk {
		panic("container: EndBulk outside bulk mode")
	}
	m.bulk = false
	slices.SortFunc(m.buf.live(), func(a, b Entry[K, V]) int {
		return cmp.Compare(a.Key, b.Key)
	})
}

// Reserve grows the capacity so that at least n more entries fit
// without reallocation. The spare capacity is rebalanced evenly
// between front and back. No-op if enough capacity already exists.
func (m *SortedMap[K, V]) Reserve(n int) {
	if n < 0 {
		panic("container: negative reserve count")
	}
	if newCap := m.buf.size() + n; newCap > m.buf.capacity() {
		m.adjustCapacity(newCap)
	}
}

// Trim reallocates the buffer to exactly the current size, releasing
// all spare capacity.
func (m *SortedMap[K, V]) Trim() {
	if m.buf.size() < m.buf.capacity() {
		m.adjustCapacity(m.buf.size())
	}
}

// Clear removes all entries but keeps the allocated capacity.
func (m *SortedMap[K, V]) Clear() {
	m.buf.clear()
}

// Clone returns an independent copy truncated to the exact current
// size; spare capacity is not carried over.
func (m *SortedMap[K, V]) Clone() *SortedMap[K, V] {
	return &SortedMap[K, V]{
		buf:     m.buf.cloneTruncated(),
		minGrow: m.minGrow,
		maxGrow: m.maxGrow,
		bulk:    m.bulk,
	}
}

// All returns an iterator over entries in non-decreasing key order.
// The iterator is invalidated by any mutation of the map; do not
// insert or erase while ranging. Panics in bulk mode.
func (m *SortedMap[K, V]) All() iter.Seq2[K, V] {
	m.mustSorted()
	return func(yield func(K, V) bool) {
		for i := 0; i < m.buf.size(); i++ {
			e := m.buf.at(i)
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over keys in non-decreasing order, under
// the same invalidation contract as All. Panics in bulk mode.
func (m *SortedMap[K, V]) Keys() iter.Seq[K] {
	m.mustSorted()
	return func(yield func(K) bool) {
		for i := 0; i < m.buf.size(); i++ {
			if !yield(m.buf.at(i).Key) {
				return
			}
		}
	}
}

// Values returns an iterator over values in key order, under the same
// invalidation contract as All. Panics in bulk mode.
func (m *SortedMap[K, V]) Values() iter.Seq[V] {
	m.mustSorted()
	return func(yield func(V) bool) {
		for i := 0; i < m.buf.size(); i++ {
			if !yield(m.buf.at(i).Value) {
				return
			}
		}
	}
}

// adjustCapacity reallocates to newCapacity with the spare capacity
// split evenly between front and back, so future insertions at either
// end cost the same.
func (m *SortedMap[K, V]) adjustCapacity(newCapacity int) {
	frontSpare := (newCapacity - m.buf.size()) / 2
	m.buf.alloc(newCapacity, frontSpare)
}

// grow enlarges the buffer per the growth policy:
// growBy = clamp(capacity/2, minGrow, maxGrow).
func (m *SortedMap[K, V]) grow() {
	growBy := m.buf.capacity() / 2
	if growBy < m.minGrow {
		growBy = m.minGrow
	} else if growBy > m.maxGrow {
		growBy = m.maxGrow
	}
	m.adjustCapacity(m.buf.capacity() + growBy)
}
