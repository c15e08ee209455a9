package container

// buffer is a contiguous element store with spare capacity tracked at
// both ends. Live elements occupy slots[start:end); slots[:start] is
// the front spare and slots[end:] the back spare. Keeping room at both
// ends makes insertion near the front as cheap as insertion near the
// back, because a middle insertion shifts whichever side has fewer
// elements (and available spare).
//
// buffer performs no growth policy of its own. Callers must check
// spare() and call alloc before inserting into a full buffer.
type buffer[T any] struct {
	slots []T
	start int
	end   int
}

func (b *buffer[T]) size() int       { return b.end - b.start }
func (b *buffer[T]) capacity() int   { return len(b.slots) }
func (b *buffer[T]) frontSpare() int { return b.start }
func (b *buffer[T]) backSpare() int  { return len(b.slots) - b.end }
func (b *buffer[T]) spare() int      { return b.frontSpare() + b.backSpare() }

// at returns a pointer to the element at logical index idx.
func (b *buffer[T]) at(idx int) *T {
	if idx < 0 || idx >= b.size() {
		panic("container: buffer index out of range")
	}
	return &b.slots[b.start+idx]
}

// live returns the live window as a slice. The slice aliases the
// backing store and is invalidated by any mutation.
func (b *buffer[T]) live() []T {
	return b.slots[b.start:b.end]
}

// alloc reallocates the buffer to the given capacity, placing the
// existing elements so that frontSpare slots remain free in front of
// them. Elements are relocated with a single copy; the old backing
// store is released to the garbage collector.
func (b *buffer[T]) alloc(capacity, frontSpare int) {
	size := b.size()
	if capacity < size {
		panic("container: buffer capacity below size")
	}
	if frontSpare < 0 || frontSpare+size > capacity {
		panic("container: buffer front spare out of range")
	}
	slots := make([]T, capacity)
	copy(slots[frontSpare:], b.live())
	b.slots = slots
	b.start = frontSpare
	b.end = frontSpare + size
}

// insert places elm at logical index idx, shifting the cheaper side.
// idx == size() appends. The caller must guarantee spare() > 0.
func (b *buffer[T]) insert(idx int, elm T) {
	size := b.size()
	if idx < 0 || idx > size {
		panic("container: buffer insert index out of range")
	}
	if b.spare() == 0 {
		panic("container: buffer insert without spare capacity")
	}
	switch {
	// the append case must win the idx==0==size tie on an empty buffer,
	// or appending would silently consume the front spare
	case idx == size && b.end < len(b.slots):
		b.slots[b.end] = elm
		b.end++
	case idx == 0 && b.start > 0:
		b.start--
		b.slots[b.start] = elm
	case (idx <= size-idx && b.start > 0) || b.end == len(b.slots):
		// fewer elements before idx, or no room behind: shift the head left
		copy(b.slots[b.start-1:], b.slots[b.start:b.start+idx])
		b.start--
		b.slots[b.start+idx] = elm
	default:
		// shift the tail right
		copy(b.slots[b.start+idx+1:b.end+1], b.slots[b.start+idx:b.end])
		b.end++
		b.slots[b.start+idx] = elm
	}
}

// erase removes the element at logical index idx, closing the gap from
// whichever end has fewer elements to move. The vacated slot is zeroed
// so the element no longer pins memory.
func (b *buffer[T]) erase(idx int) {
	size := b.size()
	if idx < 0 || idx >= size {
		panic("container: buffer erase index out of range")
	}
	var zero T
	if idx < size-idx-1 {
		copy(b.slots[b.start+1:], b.slots[b.start:b.start+idx])
		b.slots[b.start] = zero
		b.start++
	} else {
		copy(b.slots[b.start+idx:b.end-1], b.slots[b.start+idx+1:b.end])
		b.slots[b.end-1] = zero
		b.end--
	}
}

// pushFront prepends elm into the front spare. insert cannot carry this
// case: on an empty buffer idx 0 and idx size coincide, and insert
// resolves that tie in favor of appending. Falls back to a shifting
// insert when the front spare is exhausted; the caller must guarantee
// spare() > 0.
func (b *buffer[T]) pushFront(elm T) {
	if b.start > 0 {
		b.start--
		b.slots[b.start] = elm
		return
	}
	b.insert(0, elm)
}

// pushBack appends elm under the same spare-capacity contract.
func (b *buffer[T]) pushBack(elm T) { b.insert(b.size(), elm) }

// clear removes all elements but keeps the allocation, recentering the
// live window so both spares end up balanced.
func (b *buffer[T]) clear() {
	var zero T
	for i := b.start; i < b.end; i++ {
		b.slots[i] = zero
	}
	b.start = len(b.slots) / 2
	b.end = b.start
}

// cloneTruncated returns an independent copy sized exactly to the live
// elements, with no spare capacity carried over.
func (b *buffer[T]) cloneTruncated() buffer[T] {
	slots := make([]T, b.size())
	copy(slots, b.live())
	return buffer[T]{slots: slots, start: 0, end: len(slots)}
}
