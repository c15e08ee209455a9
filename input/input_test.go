// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import "testing"

// queueSource replays a fixed event list once.
type queueSource struct {
	events []Event
}

func (s *queueSource) Poll(emit func(Event)) {
	for _, e := range s.events {
		emit(e)
	}
	s.events = nil
}

func TestKeyEdgeAndLevelState(t *testing.T) {
	src := &queueSource{events: []Event{
		{Type: EventKeyDown, Key: KeyW},
	}}
	m := NewManager(src)

	m.Update()
	if !m.Keyboard.KeyDown(KeyW) {
		t.Error("KeyDown(W) = false in the frame the key went down")
	}
	if !m.Keyboard.KeyPressed(KeyW) {
		t.Error("KeyPressed(W) = false while held")
	}

	// next frame, no events: edge state clears, level state persists
	m.Update()
	if m.Keyboard.KeyDown(KeyW) {
		t.Error("KeyDown(W) = true one frame later")
	}
	if !m.Keyboard.KeyPressed(KeyW) {
		t.Error("KeyPressed(W) = false while still held")
	}

	src.events = []Event{{Type: EventKeyUp, Key: KeyW}}
	m.Update()
	if !m.Keyboard.KeyUp(KeyW) {
		t.Error("KeyUp(W) = false in the frame the key went up")
	}
	if m.Keyboard.KeyPressed(KeyW) {
		t.Error("KeyPressed(W) = true after release")
	}
}

func TestCharInput(t *testing.T) {
	m := NewManager(nil)
	m.Update()
	m.Apply(Event{Type: EventChar, Char: 'h'})
	m.Apply(Event{Type: EventChar, Char: 'é'})

	if got := string(m.Keyboard.Text()); got != "hé" {
		t.Errorf("Text() = %q, want %q", got, "hé")
	}
	m.Update()
	if len(m.Keyboard.Text()) != 0 {
		t.Error("Text() not cleared at frame start")
	}
}

func TestMouseButtons(t *testing.T) {
	m := NewManager(nil)
	m.Update()
	m.Apply(Event{Type: EventMouseDown, Button: MouseButtonLeft, X: 10, Y: 20})

	if !m.Mouse.ButtonDown(MouseButtonLeft) || !m.Mouse.ButtonPressed(MouseButtonLeft) {
		t.Error("left button state wrong after press")
	}
	if x, y := m.Mouse.Position(); x != 10 || y != 20 {
		t.Errorf("Position() = %v,%v, want 10,20", x, y)
	}

	m.Update()
	m.Apply(Event{Type: EventMouseUp, Button: MouseButtonLeft, X: 11, Y: 21})
	if !m.Mouse.ButtonUp(MouseButtonLeft) {
		t.Error("ButtonUp(Left) = false in release frame")
	}
	if m.Mouse.ButtonPressed(MouseButtonLeft) {
		t.Error("ButtonPressed(Left) = true after release")
	}
}

func TestMouseMovementAccumulates(t *testing.T) {
	m := NewManager(nil)
	m.Update()
	m.Apply(Event{Type: EventMouseMove, X: 5, Y: 5, DX: 5, DY: 5})
	m.Apply(Event{Type: EventMouseMove, X: 8, Y: 3, DX: 3, DY: -2})

	if dx, dy := m.Mouse.Movement(); dx != 8 || dy != 3 {
		t.Errorf("Movement() = %v,%v, want 8,3", dx, dy)
	}
	if x, y := m.Mouse.Position(); x != 8 || y != 3 {
		t.Errorf("Position() = %v,%v, want 8,3", x, y)
	}

	m.Update()
	if dx, dy := m.Mouse.Movement(); dx != 0 || dy != 0 {
		t.Errorf("Movement() = %v,%v after frame reset, want 0,0", dx, dy)
	}
	if x, y := m.Mouse.Position(); x != 8 || y != 3 {
		t.Error("Position() lost across frames")
	}
}

func TestMouseScroll(t *testing.T) {
	m := NewManager(nil)
	m.Update()
	m.Apply(Event{Type: EventMouseScroll, DY: 1})
	m.Apply(Event{Type: EventMouseScroll, DY: 1})

	if _, dy := m.Mouse.Scroll(); dy != 2 {
		t.Errorf("Scroll() dy = %v, want 2", dy)
	}
}

func TestInvalidEventsDropped(t *testing.T) {
	m := NewManager(nil)
	m.Update()
	m.Apply(Event{Type: EventKeyDown, Key: KeyCount})
	m.Apply(Event{Type: EventMouseDown, Button: MouseButtonCount})
	m.Apply(Event{Type: EventInvalid})

	for k := Key(0); k < KeyCount; k++ {
		if m.Keyboard.KeyPressed(k) {
			t.Fatalf("key %v pressed after invalid events", k)
		}
	}
	for b := MouseButton(0); b < MouseButtonCount; b++ {
		if m.Mouse.ButtonPressed(b) {
			t.Fatalf("button %v pressed after invalid events", b)
		}
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyA, "A"},
		{KeySpace, "Space"},
		{KeyF12, "F12"},
		{KeyInvalid, "Invalid"},
		{KeyCount, "Invalid"},
		{Key(250), "Invalid"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestSourcePolledOncePerUpdate(t *testing.T) {
	src := &queueSource{events: []Event{{Type: EventKeyDown, Key: KeyA}}}
	m := NewManager(src)
	m.Update()
	m.Update() // queue drained, must not re-apply
	if m.Keyboard.KeyDown(KeyA) {
		t.Error("event re-applied on second Update")
	}
}
