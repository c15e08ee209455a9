// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package msg

import (
	"fmt"
	"io"

	"github.com/gogpu/appkit"
	"github.com/gogpu/appkit/container"
)

// Handler processes one decoded message.
type Handler func(Message)

// Dispatcher routes messages to handlers by ID. Multiple handlers may
// subscribe to the same ID; all of them run on a matching dispatch, in
// unspecified relative order. Dispatcher is not safe for concurrent
// use.
type Dispatcher struct {
	handlers *container.SortedMap[ID, Handler]
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: container.NewSortedMap[ID, Handler]()}
}

// Subscribe registers a handler for the given message ID.
func (d *Dispatcher) Subscribe(id ID, h Handler) {
	if h == nil {
		panic("msg: Subscribe with nil Handler")
	}
	d.handlers.Insert(id, h)
}

// Unsubscribe removes all handlers for the given ID and returns how
// many were removed.
func (d *Dispatcher) Unsubscribe(id ID) int {
	return d.handlers.Erase(id)
}

// HandlerCount returns the number of handlers subscribed to id.
func (d *Dispatcher) HandlerCount(id ID) int {
	n := 0
	idx := d.handlers.FindIndex(id)
	if idx == container.InvalidIndex {
		return 0
	}
	for ; idx < d.handlers.Len() && d.handlers.KeyAt(idx) == id; idx++ {
		n++
	}
	return n
}

// Dispatch delivers m to every handler subscribed to its ID and returns
// the number of handlers invoked. Messages with no handler are dropped
// with a debug log.
func (d *Dispatcher) Dispatch(m Message) int {
	if m == nil {
		panic("msg: Dispatch with nil Message")
	}
	id := m.MsgID()
	idx := d.handlers.FindIndex(id)
	if idx == container.InvalidIndex {
		appkit.Logger().Debug("message dropped, no handler", "id", int32(id))
		return 0
	}
	n := 0
	for ; idx < d.handlers.Len() && d.handlers.KeyAt(idx) == id; idx++ {
		d.handlers.ValueAt(idx)(m)
		n++
	}
	if n > 0 {
		if ht, ok := m.(HandledTracker); ok {
			ht.SetHandled()
		}
	}
	return n
}

// Pump decodes frames from r with codec and dispatches each one until
// the stream ends. It returns the number of messages dispatched; a
// clean end of stream is not an error.
func (d *Dispatcher) Pump(codec *Codec, r io.Reader) (int, error) {
	n := 0
	for {
		m, err := codec.Decode(r)
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, fmt.Errorf("msg: pump after %d messages: %w", n, err)
		}
		d.Dispatch(m)
		n++
	}
}
