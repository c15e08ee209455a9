// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package msg implements typed application messages: identified message
// values, a wire codec framing MessagePack payloads behind an ID and
// length header, and a dispatcher routing decoded messages to handlers
// by ID.
//
// Message types register a constructor with a Codec so the decoder can
// materialize the right concrete type from the ID header. The
// Dispatcher is single-threaded, matching the per-frame message pump of
// an application loop.
package msg
