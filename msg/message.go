// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package msg

// ID identifies a message type on the wire. IDs must be unique within a
// Codec and stable across builds that need to interoperate.
type ID int32

// InvalidID marks an unassigned message ID.
const InvalidID ID = -1

// Message is a typed application message. Implementations are plain
// structs with exported fields; the wire payload is their MessagePack
// encoding.
type Message interface {
	// MsgID returns the message's wire ID.
	MsgID() ID
}

// HandledTracker is optionally implemented by messages that want to
// know whether any handler saw them. Embed Handled to get it.
type HandledTracker interface {
	SetHandled()
	IsHandled() bool
}

// Handled is an embeddable delivery flag. The Dispatcher sets it when
// at least one handler runs for the message. The flag is unexported so
// the MessagePack codec never puts it on the wire.
type Handled struct {
	handled bool
}

// SetHandled marks the message as handled.
func (h *Handled) SetHandled() { h.handled = true }

// IsHandled reports whether any handler has seen the message.
func (h *Handled) IsHandled() bool { return h.handled }
