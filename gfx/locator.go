// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"hash/fnv"
	"strconv"
	"sync/atomic"
)

// nonSharedSignature marks a locator that never matches another
// locator, so the resource it names is never shared via the registry.
const nonSharedSignature uint32 = 0xFFFFFFFF

// DefaultSignature is the signature of locators created by NewLocator.
const DefaultSignature uint32 = 0

// nonSharedCounter makes every NonSharedLocator distinct for debugging
// purposes even though signatures alone already prevent matching.
var nonSharedCounter atomic.Uint32

// Locator names a sharable resource: a location string (usually a URL
// or virtual path like "tex:walls/brick.png") plus a signature that
// partitions the sharing domain. Two locators match — and the registry
// will share the resource between them — only if both location and
// signature are equal and neither side is non-shared.
type Locator struct {
	location  string
	signature uint32
}

// NewLocator creates a shared locator with the default signature.
func NewLocator(location string) Locator {
	return Locator{location: location, signature: DefaultSignature}
}

// NewLocatorWithSignature creates a shared locator with an explicit
// signature. Panics if the signature is the reserved non-shared value.
func NewLocatorWithSignature(location string, signature uint32) Locator {
	if signature == nonSharedSignature {
		panic("gfx: signature value reserved for non-shared locators")
	}
	return Locator{location: location, signature: signature}
}

// NonSharedLocator creates a locator that never matches any other
// locator, including itself. Use it for resources that must not be
// shared through the registry. The location string is synthesized and
// unique, so non-shared resources remain distinguishable in logs.
func NonSharedLocator() Locator {
	n := nonSharedCounter.Add(1)
	return Locator{
		location:  "nonshared:" + strconv.FormatUint(uint64(n), 10),
		signature: nonSharedSignature,
	}
}

// Location returns the location string.
func (l Locator) Location() string { return l.location }

// Signature returns the sharing signature.
func (l Locator) Signature() uint32 { return l.signature }

// IsShared reports whether the locator participates in resource
// sharing.
func (l Locator) IsShared() bool { return l.signature != nonSharedSignature }

// Matches reports whether two locators name the same sharable
// resource. Non-shared locators match nothing.
func (l Locator) Matches(rhs Locator) bool {
	return l.IsShared() && rhs.IsShared() &&
		l.signature == rhs.signature && l.location == rhs.location
}

// HashKey returns a 64-bit key for use in the registry's sorted lookup
// table. Distinct locators may collide; the registry resolves
// collisions by comparing full locators across the adjacent duplicate
// run.
func (l Locator) HashKey() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(l.location)) // fnv.Write never returns an error
	var sig [4]byte
	sig[0] = byte(l.signature)
	sig[1] = byte(l.signature >> 8)
	sig[2] = byte(l.signature >> 16)
	sig[3] = byte(l.signature >> 24)
	_, _ = h.Write(sig[:])
	return h.Sum64()
}
