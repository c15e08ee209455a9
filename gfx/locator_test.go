// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"strings"
	"testing"
)

func TestLocatorMatches(t *testing.T) {
	a := NewLocator("tex:walls/brick.png")
	b := NewLocator("tex:walls/brick.png")
	c := NewLocator("tex:walls/stone.png")
	d := NewLocatorWithSignature("tex:walls/brick.png", 7)

	if !a.Matches(b) {
		t.Error("same location and signature should match")
	}
	if a.Matches(c) {
		t.Error("different locations must not match")
	}
	if a.Matches(d) {
		t.Error("different signatures must not match")
	}
}

func TestNonSharedLocator(t *testing.T) {
	a := NonSharedLocator()
	b := NonSharedLocator()

	if a.IsShared() {
		t.Error("NonSharedLocator().IsShared() = true, want false")
	}
	if a.Matches(a) {
		t.Error("non-shared locator must not match itself")
	}
	if a.Matches(b) || b.Matches(a) {
		t.Error("non-shared locators must not match each other")
	}
	if a.Location() == b.Location() {
		t.Errorf("non-shared locations not unique: %q", a.Location())
	}
	if !strings.HasPrefix(a.Location(), "nonshared:") {
		t.Errorf("Location() = %q, want nonshared: prefix", a.Location())
	}
}

func TestLocatorHashKey(t *testing.T) {
	a := NewLocator("tex:walls/brick.png")
	b := NewLocator("tex:walls/brick.png")
	c := NewLocator("tex:walls/stone.png")
	d := NewLocatorWithSignature("tex:walls/brick.png", 7)

	if a.HashKey() != b.HashKey() {
		t.Error("equal locators must hash equal")
	}
	if a.HashKey() == c.HashKey() {
		t.Error("distinct locations hashed equal (unlucky FNV collision in test data)")
	}
	if a.HashKey() == d.HashKey() {
		t.Error("signature must contribute to the hash key")
	}
}

func TestNewLocatorWithSignatureReserved(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("reserved signature did not panic")
		}
	}()
	NewLocatorWithSignature("tex:x", nonSharedSignature)
}
