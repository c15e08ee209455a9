// Package container provides the custom containers used by appkit's
// resource tables and lookup caches.
//
// # SortedMap
//
// The central type is [SortedMap], a key-ordered associative container
// backed by a single contiguous buffer with spare capacity tracked at
// both ends. Compared to the built-in map it keeps entries sorted by
// key, supports duplicate keys (which always occupy adjacent indices),
// and allows cheap index-based access.
//
// For large batch insertions, use bulk mode:
//
//	m := container.NewSortedMap[string, int]()
//	m.BeginBulk()
//	for _, e := range entries {
//	    m.InsertBulk(e.Key, e.Value)
//	}
//	m.EndBulk() // single O(n log n) sort
//
// # Failure model
//
// Operations distinguish two failure classes. Ordinary negative results
// (key not found, duplicate on InsertUnique) are reported through bool
// returns or the [InvalidIndex] sentinel. Contract violations — calling
// a sorted-mode operation while bulk mode is active, or [SortedMap.MustGet]
// on a missing key — are programmer errors and panic immediately rather
// than corrupting the container.
//
// # Invalidation
//
// Any mutating call (Insert, Erase, Reserve, Trim, EndBulk, ...) may
// reallocate or shift the backing buffer. Indices obtained from
// FindIndex/FindDuplicate and in-flight iterators from All/Keys/Values
// are invalidated by mutation; do not mutate the map while ranging
// over it.
//
// SortedMap is not safe for concurrent use. Guard it externally if it
// is shared between goroutines.
package container
