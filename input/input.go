// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package input tracks keyboard and mouse state across frames. A
// Manager consumes events from a platform Source once per frame and
// exposes the resulting state through edge queries (went down or up
// this frame) and level queries (currently held).
package input

import (
	"github.com/gogpu/appkit"
)

// EventType discriminates input events.
type EventType uint8

const (
	EventInvalid EventType = iota
	EventKeyDown
	EventKeyUp
	EventChar
	EventMouseDown
	EventMouseUp
	EventMouseMove
	EventMouseScroll
)

// String returns the event type name for logging.
func (t EventType) String() string {
	switch t {
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	case EventChar:
		return "Char"
	case EventMouseDown:
		return "MouseDown"
	case EventMouseUp:
		return "MouseUp"
	case EventMouseMove:
		return "MouseMove"
	case EventMouseScroll:
		return "MouseScroll"
	default:
		return "Invalid"
	}
}

// Event is one raw input event from a platform source. Only the fields
// relevant to the event type are set.
type Event struct {
	Type   EventType
	Key    Key
	Char   rune
	Button MouseButton
	X, Y   float64 // pointer position for mouse events
	DX, DY float64 // movement for MouseMove, wheel delta for MouseScroll
}

// Source produces platform input events. Poll must call emit once per
// pending event and return; the Manager polls once per frame.
type Source interface {
	Poll(emit func(Event))
}

// Keyboard is the per-frame keyboard state.
type Keyboard struct {
	down    [KeyCount]bool
	up      [KeyCount]bool
	pressed [KeyCount]bool
	text    []rune
}

// KeyDown reports whether the key went down this frame.
func (k *Keyboard) KeyDown(key Key) bool { return key < KeyCount && k.down[key] }

// KeyUp reports whether the key went up this frame.
func (k *Keyboard) KeyUp(key Key) bool { return key < KeyCount && k.up[key] }

// KeyPressed reports whether the key is currently held.
func (k *Keyboard) KeyPressed(key Key) bool { return key < KeyCount && k.pressed[key] }

// Text returns the characters typed this frame.
func (k *Keyboard) Text() []rune { return k.text }

func (k *Keyboard) reset() {
	k.down = [KeyCount]bool{}
	k.up = [KeyCount]bool{}
	k.text = k.text[:0]
}

// Mouse is the per-frame mouse state.
type Mouse struct {
	down    [MouseButtonCount]bool
	up      [MouseButtonCount]bool
	pressed [MouseButtonCount]bool
	posX    float64
	posY    float64
	movX    float64
	movY    float64
	scrollX float64
	scrollY float64
}

// ButtonDown reports whether the button went down this frame.
func (m *Mouse) ButtonDown(b MouseButton) bool { return b < MouseButtonCount && m.down[b] }

// ButtonUp reports whether the button went up this frame.
func (m *Mouse) ButtonUp(b MouseButton) bool { return b < MouseButtonCount && m.up[b] }

// ButtonPressed reports whether the button is currently held.
func (m *Mouse) ButtonPressed(b MouseButton) bool { return b < MouseButtonCount && m.pressed[b] }

// Position returns the current pointer position.
func (m *Mouse) Position() (x, y float64) { return m.posX, m.posY }

// Movement returns the accumulated pointer movement this frame.
func (m *Mouse) Movement() (dx, dy float64) { return m.movX, m.movY }

// Scroll returns the accumulated wheel delta this frame.
func (m *Mouse) Scroll() (dx, dy float64) { return m.scrollX, m.scrollY }

func (m *Mouse) reset() {
	m.down = [MouseButtonCount]bool{}
	m.up = [MouseButtonCount]bool{}
	m.movX, m.movY = 0, 0
	m.scrollX, m.scrollY = 0, 0
}

// Manager owns the input state for an application. Call Update once at
// the top of each frame; it clears the previous frame's edge state and
// applies all pending source events. Manager is not safe for
// concurrent use.
type Manager struct {
	Keyboard Keyboard
	Mouse    Mouse
	source   Source
}

// NewManager creates a Manager polling the given source. A nil source
// is allowed; events can then be fed manually with Apply.
func NewManager(source Source) *Manager {
	return &Manager{source: source}
}

// Update begins a new input frame: edge state from the previous frame
// is cleared, then pending source events are applied.
func (m *Manager) Update() {
	m.Keyboard.reset()
	m.Mouse.reset()
	if m.source != nil {
		m.source.Poll(m.Apply)
	}
}

// Apply folds one event into the current frame's state. Events with
// out-of-range key or button codes are dropped with a debug log.
func (m *Manager) Apply(e Event) {
	switch e.Type {
	case EventKeyDown:
		if !e.Key.IsValid() {
			appkit.Logger().Debug("dropped input event", "type", e.Type.String(), "key", int(e.Key))
			return
		}
		m.Keyboard.down[e.Key] = true
		m.Keyboard.pressed[e.Key] = true
	case EventKeyUp:
		if !e.Key.IsValid() {
			appkit.Logger().Debug("dropped input event", "type", e.Type.String(), "key", int(e.Key))
			return
		}
		m.Keyboard.up[e.Key] = true
		m.Keyboard.pressed[e.Key] = false
	case EventChar:
		m.Keyboard.text = append(m.Keyboard.text, e.Char)
	case EventMouseDown:
		if e.Button >= MouseButtonCount {
			appkit.Logger().Debug("dropped input event", "type", e.Type.String(), "button", int(e.Button))
			return
		}
		m.Mouse.down[e.Button] = true
		m.Mouse.pressed[e.Button] = true
		m.Mouse.posX, m.Mouse.posY = e.X, e.Y
	case EventMouseUp:
		if e.Button >= MouseButtonCount {
			appkit.Logger().Debug("dropped input event", "type", e.Type.String(), "button", int(e.Button))
			return
		}
		m.Mouse.up[e.Button] = true
		m.Mouse.pressed[e.Button] = false
		m.Mouse.posX, m.Mouse.posY = e.X, e.Y
	case EventMouseMove:
		m.Mouse.movX += e.DX
		m.Mouse.movY += e.DY
		m.Mouse.posX, m.Mouse.posY = e.X, e.Y
	case EventMouseScroll:
		m.Mouse.scrollX += e.DX
		m.Mouse.scrollY += e.DY
	default:
		appkit.Logger().Debug("dropped input event", "type", int(e.Type))
	}
}
