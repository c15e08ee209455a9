// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import "github.com/gogpu/gputypes"

// PixelFormat identifies the pixel format of a texture resource at the
// setup-descriptor level. It is a small engine-side enum; lowering to
// the WebGPU format enums happens in PixelFormat.GPUFormat and the
// native-descriptor path.
type PixelFormat uint8

const (
	// PixelFormatNone marks an unset format (for example the depth
	// format of a color-only render target).
	PixelFormatNone PixelFormat = iota

	// PixelFormatRGBA8 is 8-bit RGBA, normalized unsigned integer.
	PixelFormatRGBA8

	// PixelFormatBGRA8 is 8-bit BGRA, normalized unsigned integer.
	// Common swapchain/surface format.
	PixelFormatBGRA8

	// PixelFormatR8 is 8-bit single channel, normalized unsigned
	// integer. Used for masks and font atlases.
	PixelFormatR8

	// PixelFormatDepth24Stencil8 is a combined 24-bit depth, 8-bit
	// stencil format. Valid only as a depth attachment format.
	PixelFormatDepth24Stencil8
)

// String returns the format name for logging.
func (f PixelFormat) String() string {
	switch f {
	case PixelFormatNone:
		return "None"
	case PixelFormatRGBA8:
		return "RGBA8"
	case PixelFormatBGRA8:
		return "BGRA8"
	case PixelFormatR8:
		return "R8"
	case PixelFormatDepth24Stencil8:
		return "Depth24Stencil8"
	default:
		return "Invalid"
	}
}

// ByteSize returns the size of one pixel in bytes, or 0 for
// PixelFormatNone and unknown formats.
func (f PixelFormat) ByteSize() int {
	switch f {
	case PixelFormatRGBA8, PixelFormatBGRA8, PixelFormatDepth24Stencil8:
		return 4
	case PixelFormatR8:
		return 1
	default:
		return 0
	}
}

// IsValidColorFormat reports whether f can be used as a texture color
// format.
func (f PixelFormat) IsValidColorFormat() bool {
	switch f {
	case PixelFormatRGBA8, PixelFormatBGRA8, PixelFormatR8:
		return true
	default:
		return false
	}
}

// IsDepthFormat reports whether f is a depth/stencil format.
func (f PixelFormat) IsDepthFormat() bool {
	return f == PixelFormatDepth24Stencil8
}

// GPUFormat lowers the engine format to the WebGPU format enum.
// PixelFormatNone lowers to TextureFormatUndefined.
func (f PixelFormat) GPUFormat() gputypes.TextureFormat {
	switch f {
	case PixelFormatRGBA8:
		return gputypes.TextureFormatRGBA8Unorm
	case PixelFormatBGRA8:
		return gputypes.TextureFormatBGRA8Unorm
	case PixelFormatR8:
		return gputypes.TextureFormatR8Unorm
	case PixelFormatDepth24Stencil8:
		return gputypes.TextureFormatDepth24PlusStencil8
	default:
		return gputypes.TextureFormatUndefined
	}
}

// FromGPUFormat converts a WebGPU format to the engine enum. Formats
// appkit does not model map to PixelFormatNone.
func FromGPUFormat(f gputypes.TextureFormat) PixelFormat {
	switch f {
	case gputypes.TextureFormatRGBA8Unorm:
		return PixelFormatRGBA8
	case gputypes.TextureFormatBGRA8Unorm:
		return PixelFormatBGRA8
	case gputypes.TextureFormatR8Unorm:
		return PixelFormatR8
	case gputypes.TextureFormatDepth24PlusStencil8:
		return PixelFormatDepth24Stencil8
	default:
		return PixelFormatNone
	}
}
