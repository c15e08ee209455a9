// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gfx provides graphics resource setup descriptors and the
// resource registry used to share them.
//
// Setup descriptors are plain value types describing how a resource is
// to be created — from a file, from encoded image data, from raw
// pixels, or as a render target. They carry no GPU state themselves:
// lowering to gputypes (WebGPU descriptor types) or to the gogpu/wgpu
// native path happens via TextureSetup.Desc and TextureSetup.NativeDesc.
// Command submission and pipeline construction are out of scope; those
// live in the rendering stack (gogpu/gg, gogpu/wgpu).
//
// The Registry maps Locators to already-created resources so that
// loading code can share textures instead of re-creating them. It is
// backed by container.SortedMap, the engine's resource lookup table.
package gfx
