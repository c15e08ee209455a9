// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"iter"

	"github.com/gogpu/appkit/container"
)

// registryEntry is one shared resource slot. Distinct locators can hash
// to the same key, so each entry keeps its full locator and lookups
// scan the adjacent duplicate run for an exact match.
type registryEntry[R any] struct {
	locator  Locator
	resource R
	useCount int
}

// Registry is a use-counted lookup table for shared resources keyed by
// Locator. Add registers a resource, Lookup finds it and bumps its use
// count, Release drops a use and reports when the last one is gone so
// the caller can destroy the underlying resource.
//
// The zero value is not usable; create registries with NewRegistry.
// Registry is not safe for concurrent use.
type Registry[R any] struct {
	entries *container.SortedMap[uint64, registryEntry[R]]
}

// NewRegistry creates an empty resource registry.
func NewRegistry[R any]() *Registry[R] {
	return &Registry[R]{
		entries: container.NewSortedMap[uint64, registryEntry[R]](),
	}
}

// findIndex locates the entry whose locator equals loc, scanning the
// duplicate run that shares its hash key. Returns container.InvalidIndex
// if no entry matches. Identity equality, not Locator.Matches: the
// use-count bookkeeping (UseCount, Release) must reach non-shared
// entries too, which Matches deliberately never does.
func (r *Registry[R]) findIndex(loc Locator) int {
	key := loc.HashKey()
	idx := r.entries.FindIndex(key)
	if idx == container.InvalidIndex {
		return container.InvalidIndex
	}
	for ; idx < r.entries.Len() && r.entries.KeyAt(idx) == key; idx++ {
		if r.entries.ValueAt(idx).locator == loc {
			return idx
		}
	}
	return container.InvalidIndex
}

// Contains reports whether a resource is registered under loc.
func (r *Registry[R]) Contains(loc Locator) bool {
	return r.findIndex(loc) != container.InvalidIndex
}

// Add registers resource under loc with a use count of one. Duplicate
// registration is a programmer error and panics; locators from
// NonSharedLocator are unique by construction and never trip this.
func (r *Registry[R]) Add(loc Locator, resource R) {
	if r.Contains(loc) {
		panic("gfx: resource already registered: " + loc.Location())
	}
	r.entries.Insert(loc.HashKey(), registryEntry[R]{
		locator:  loc,
		resource: resource,
		useCount: 1,
	})
}

// Lookup finds the resource registered under loc and increments its use
// count. The second result is false when nothing matches. Lookup is the
// sharing path, so non-shared locators never match; their owner drops
// the single use via Release.
func (r *Registry[R]) Lookup(loc Locator) (R, bool) {
	if !loc.IsShared() {
		var zero R
		return zero, false
	}
	idx := r.findIndex(loc)
	if idx == container.InvalidIndex {
		var zero R
		return zero, false
	}
	entry := r.entries.ValueAt(idx)
	entry.useCount++
	r.entries.SetValueAt(idx, entry)
	return entry.resource, true
}

// UseCount returns the current use count of the resource under loc, or
// zero when nothing is registered.
func (r *Registry[R]) UseCount(loc Locator) int {
	idx := r.findIndex(loc)
	if idx == container.InvalidIndex {
		return 0
	}
	return r.entries.ValueAt(idx).useCount
}

// Release drops one use of the resource under loc. It returns the
// resource and true when the use count reached zero and the entry was
// removed, so the caller can destroy the underlying resource. Releasing
// an unregistered locator panics.
func (r *Registry[R]) Release(loc Locator) (R, bool) {
	idx := r.findIndex(loc)
	if idx == container.InvalidIndex {
		panic("gfx: release of unregistered resource: " + loc.Location())
	}
	entry := r.entries.ValueAt(idx)
	entry.useCount--
	if entry.useCount > 0 {
		r.entries.SetValueAt(idx, entry)
		var zero R
		return zero, false
	}
	r.entries.EraseIndex(idx)
	return entry.resource, true
}

// Len returns the number of registered resources.
func (r *Registry[R]) Len() int { return r.entries.Len() }

// AddBulk registers many resources with a single sort at the end,
// calling fn for each locator to produce its resource. Use it when
// preloading a level's worth of assets.
func (r *Registry[R]) AddBulk(locs []Locator, fn func(Locator) R) {
	r.entries.Reserve(len(locs))
	r.entries.BeginBulk()
	for _, loc := range locs {
		r.entries.InsertBulk(loc.HashKey(), registryEntry[R]{
			locator:  loc,
			resource: fn(loc),
			useCount: 1,
		})
	}
	r.entries.EndBulk()
}

// All iterates over the registered resources in hash-key order. The
// registry must not be modified during iteration.
func (r *Registry[R]) All() iter.Seq2[Locator, R] {
	return func(yield func(Locator, R) bool) {
		for _, entry := range r.entries.All() {
			if !yield(entry.locator, entry.resource) {
				return
			}
		}
	}
}
