// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package msg

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/gogpu/appkit/container"
	"github.com/gogpu/appkit/stream"
)

// ErrUnknownMessage is returned by Codec.Decode when the wire ID has no
// registered constructor.
var ErrUnknownMessage = errors.New("msg: unknown message ID")

// Codec encodes and decodes messages. Each frame is a little-endian
// int32 message ID followed by a length-prefixed MessagePack payload.
// Constructors registered with Register let Decode materialize the
// concrete type for an incoming ID.
//
// Codec is not safe for concurrent use; register all message types
// before sharing it read-only across encode and decode paths.
type Codec struct {
	ctors *container.SortedMap[ID, func() Message]
}

// NewCodec creates a Codec with no registered message types.
func NewCodec() *Codec {
	return &Codec{ctors: container.NewSortedMap[ID, func() Message]()}
}

// Register adds a constructor for a message type. The constructor must
// return a pointer so Decode can unmarshal into it. Registering
// InvalidID or a duplicate ID panics.
func (c *Codec) Register(id ID, ctor func() Message) {
	if id == InvalidID {
		panic("msg: cannot register InvalidID")
	}
	if ctor == nil {
		panic("msg: nil message constructor")
	}
	if !c.ctors.InsertUnique(id, ctor) {
		panic(fmt.Sprintf("msg: message ID %d already registered", id))
	}
}

// Knows reports whether a constructor is registered for id.
func (c *Codec) Knows(id ID) bool { return c.ctors.Contains(id) }

// Encode writes one message frame to w.
func (c *Codec) Encode(w io.Writer, m Message) error {
	if m == nil {
		panic("msg: Encode with nil Message")
	}
	payload, err := msgpack.Marshal(m)
	if err != nil {
		return fmt.Errorf("msg: marshal message %d: %w", m.MsgID(), err)
	}
	sw := stream.NewWriter(w)
	sw.WriteInt32(int32(m.MsgID()))
	sw.WriteBytes(payload)
	if err := sw.Err(); err != nil {
		return fmt.Errorf("msg: write message %d: %w", m.MsgID(), err)
	}
	return nil
}

// Decode reads one message frame from r. Returns io.EOF unwrapped when
// the stream ends cleanly before a frame starts, so pump loops can
// terminate on it.
func (c *Codec) Decode(r io.Reader) (Message, error) {
	sr := stream.NewReader(r)
	id := ID(sr.ReadInt32())
	if err := sr.Err(); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) && sr.BytesRead() == 0 {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("msg: read frame header: %w", err)
	}
	payload := sr.ReadBytes()
	if err := sr.Err(); err != nil {
		return nil, fmt.Errorf("msg: read message %d payload: %w", id, err)
	}

	ctor, ok := c.ctors.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMessage, id)
	}
	m := ctor()
	if err := msgpack.Unmarshal(payload, m); err != nil {
		return nil, fmt.Errorf("msg: unmarshal message %d: %w", id, err)
	}
	return m, nil
}
