// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"fmt"
	"testing"
)

func TestRegistryAddLookup(t *testing.T) {
	reg := NewRegistry[int]()
	loc := NewLocator("tex:walls/brick.png")

	if reg.Contains(loc) {
		t.Error("empty registry contains a locator")
	}
	reg.Add(loc, 42)

	got, ok := reg.Lookup(NewLocator("tex:walls/brick.png"))
	if !ok {
		t.Fatal("Lookup failed for registered locator")
	}
	if got != 42 {
		t.Errorf("Lookup = %d, want 42", got)
	}
	if n := reg.UseCount(loc); n != 2 {
		t.Errorf("UseCount after Add+Lookup = %d, want 2", n)
	}
	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
}

func TestRegistryLookupMiss(t *testing.T) {
	reg := NewRegistry[int]()
	reg.Add(NewLocator("tex:a"), 1)

	if _, ok := reg.Lookup(NewLocator("tex:b")); ok {
		t.Error("Lookup succeeded for unregistered locator")
	}
	if n := reg.UseCount(NewLocator("tex:b")); n != 0 {
		t.Errorf("UseCount of unregistered locator = %d, want 0", n)
	}
}

func TestRegistryRelease(t *testing.T) {
	reg := NewRegistry[string]()
	loc := NewLocator("tex:a")
	reg.Add(loc, "resource")
	reg.Lookup(loc) // use count 2

	if _, last := reg.Release(loc); last {
		t.Error("first Release reported last use")
	}
	res, last := reg.Release(loc)
	if !last {
		t.Error("second Release did not report last use")
	}
	if res != "resource" {
		t.Errorf("Release returned %q, want %q", res, "resource")
	}
	if reg.Contains(loc) {
		t.Error("registry still contains released resource")
	}
}

func TestRegistryReleaseUnregisteredPanics(t *testing.T) {
	reg := NewRegistry[int]()
	defer func() {
		if recover() == nil {
			t.Error("Release of unregistered locator did not panic")
		}
	}()
	reg.Release(NewLocator("tex:missing"))
}

func TestRegistryDuplicateAddPanics(t *testing.T) {
	reg := NewRegistry[int]()
	loc := NewLocator("tex:a")
	reg.Add(loc, 1)
	defer func() {
		if recover() == nil {
			t.Error("duplicate Add did not panic")
		}
	}()
	reg.Add(loc, 2)
}

func TestRegistryNonShared(t *testing.T) {
	reg := NewRegistry[int]()
	a := NonSharedLocator()
	b := NonSharedLocator()
	reg.Add(a, 1)
	reg.Add(b, 2) // never collides with a

	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reg.Len())
	}
	if _, ok := reg.Lookup(a); ok {
		t.Error("non-shared resource was shared via Lookup")
	}
}

func TestRegistryNonSharedRelease(t *testing.T) {
	reg := NewRegistry[int]()
	loc := NonSharedLocator()
	reg.Add(loc, 7)

	if !reg.Contains(loc) {
		t.Fatal("Contains() = false for registered non-shared locator")
	}
	if n := reg.UseCount(loc); n != 1 {
		t.Errorf("UseCount() = %d, want 1", n)
	}

	res, last := reg.Release(loc)
	if !last {
		t.Error("Release did not report last use")
	}
	if res != 7 {
		t.Errorf("Release returned %d, want 7", res)
	}
	if reg.Contains(loc) || reg.Len() != 0 {
		t.Error("non-shared entry not removed by Release")
	}
}

func TestRegistrySignaturePartition(t *testing.T) {
	reg := NewRegistry[int]()
	reg.Add(NewLocatorWithSignature("tex:a", 1), 10)
	reg.Add(NewLocatorWithSignature("tex:a", 2), 20)

	got, ok := reg.Lookup(NewLocatorWithSignature("tex:a", 2))
	if !ok || got != 20 {
		t.Errorf("Lookup(sig 2) = %d, %v, want 20, true", got, ok)
	}
}

func TestRegistryAddBulk(t *testing.T) {
	reg := NewRegistry[string]()
	var locs []Locator
	for i := 0; i < 100; i++ {
		locs = append(locs, NewLocator(fmt.Sprintf("tex:bulk/%03d", i)))
	}
	reg.AddBulk(locs, func(l Locator) string { return l.Location() })

	if reg.Len() != 100 {
		t.Fatalf("Len() = %d, want 100", reg.Len())
	}
	for _, loc := range locs {
		got, ok := reg.Lookup(loc)
		if !ok || got != loc.Location() {
			t.Fatalf("Lookup(%q) = %q, %v", loc.Location(), got, ok)
		}
	}
}

func TestRegistryAll(t *testing.T) {
	reg := NewRegistry[int]()
	reg.Add(NewLocator("tex:a"), 1)
	reg.Add(NewLocator("tex:b"), 2)

	seen := map[string]int{}
	for loc, res := range reg.All() {
		seen[loc.Location()] = res
	}
	if len(seen) != 2 || seen["tex:a"] != 1 || seen["tex:b"] != 2 {
		t.Errorf("All() visited %v", seen)
	}
}
