// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"math/bits"

	"github.com/gogpu/gputypes"
)

// TextureSetup describes how a texture resource is to be created. It
// is a plain value type: construct one through the TextureFrom* /
// RenderTarget constructors, optionally adjust the sampler fields, and
// hand it to a loader or resource factory. Invalid constructor
// arguments (non-positive sizes, depth formats where a color format is
// required) are programmer errors and panic.
type TextureSetup struct {
	// Locator names the resource for sharing through the Registry.
	Locator Locator

	// Width and Height are the texture dimensions in pixels. Unused
	// (zero) for relative-size render targets.
	Width  int
	Height int

	// RelWidth and RelHeight are the dimensions relative to the
	// current display size, used only by RelSizeRenderTarget.
	RelWidth  float32
	RelHeight float32

	// ColorFormat is the pixel format of the color surface.
	ColorFormat PixelFormat

	// DepthFormat is the depth surface format of a render target, or
	// PixelFormatNone when the target has no owned depth buffer.
	DepthFormat PixelFormat

	// DepthRenderTarget names the render target whose depth buffer is
	// shared, for SharedDepthRenderTarget setups.
	DepthRenderTarget Locator

	// Sampler state applied when the texture is bound.
	WrapU     gputypes.AddressMode
	WrapV     gputypes.AddressMode
	WrapW     gputypes.AddressMode
	MagFilter gputypes.FilterMode
	MinFilter gputypes.FilterMode

	fromFile      bool
	fromImageData bool
	fromPixelData bool
	renderTarget  bool
	relSize       bool
	sharedDepth   bool
	hasMipMaps    bool
}

// defaultTextureSetup carries the field defaults shared by all
// constructors: repeat wrapping and nearest filtering, RGBA8 color.
func defaultTextureSetup() TextureSetup {
	return TextureSetup{
		ColorFormat: PixelFormatRGBA8,
		DepthFormat: PixelFormatNone,
		WrapU:       gputypes.AddressModeRepeat,
		WrapV:       gputypes.AddressModeRepeat,
		WrapW:       gputypes.AddressModeRepeat,
		MagFilter:   gputypes.FilterModeNearest,
		MinFilter:   gputypes.FilterModeNearest,
	}
}

// TextureFromFile describes a texture loaded asynchronously from loc.
// The blueprint provides sampler state and format expectations; pass
// defaults with TextureBlueprint().
func TextureFromFile(loc Locator, blueprint TextureSetup) TextureSetup {
	setup := blueprint
	setup.fromFile = true
	setup.Locator = loc
	return setup
}

// TextureFromData describes a texture decoded from in-memory encoded
// image data (PNG, JPEG, BMP, TIFF — see DecodeImageData).
func TextureFromData(blueprint TextureSetup) TextureSetup {
	setup := blueprint
	setup.fromImageData = true
	return setup
}

// TextureFromPixels describes a texture created from raw uncompressed
// pixel data of the given size and color format.
func TextureFromPixels(width, height int, mipMaps bool, format PixelFormat) TextureSetup {
	if width <= 0 || height <= 0 {
		panic("gfx: texture dimensions must be positive")
	}
	if !format.IsValidColorFormat() {
		panic("gfx: " + format.String() + " is not a valid texture color format")
	}
	setup := defaultTextureSetup()
	setup.fromPixelData = true
	setup.hasMipMaps = mipMaps
	setup.Width = width
	setup.Height = height
	setup.ColorFormat = format
	return setup
}

// RenderTarget describes an offscreen render target of a fixed pixel
// size. Render targets clamp at the edges instead of wrapping.
func RenderTarget(width, height int) TextureSetup {
	if width <= 0 || height <= 0 {
		panic("gfx: render target dimensions must be positive")
	}
	setup := defaultTextureSetup()
	setup.renderTarget = true
	setup.Width = width
	setup.Height = height
	setup.WrapU = gputypes.AddressModeClampToEdge
	setup.WrapV = gputypes.AddressModeClampToEdge
	setup.WrapW = gputypes.AddressModeClampToEdge
	return setup
}

// RelSizeRenderTarget describes a render target sized relative to the
// current display dimensions (1.0 means full size).
func RelSizeRenderTarget(relWidth, relHeight float32) TextureSetup {
	if relWidth <= 0 || relHeight <= 0 {
		panic("gfx: relative render target dimensions must be positive")
	}
	setup := defaultTextureSetup()
	setup.renderTarget = true
	setup.relSize = true
	setup.RelWidth = relWidth
	setup.RelHeight = relHeight
	setup.WrapU = gputypes.AddressModeClampToEdge
	setup.WrapV = gputypes.AddressModeClampToEdge
	setup.WrapW = gputypes.AddressModeClampToEdge
	return setup
}

// SharedDepthRenderTarget describes a render target that reuses the
// depth buffer of another render target instead of owning one.
func SharedDepthRenderTarget(width, height int, depthTarget Locator) TextureSetup {
	setup := RenderTarget(width, height)
	setup.sharedDepth = true
	setup.DepthRenderTarget = depthTarget
	return setup
}

// TextureBlueprint returns a setup with default sampler state, for use
// as the blueprint argument of TextureFromFile/TextureFromData.
func TextureBlueprint() TextureSetup {
	return defaultTextureSetup()
}

// ShouldSetupFromFile reports whether the texture loads from a file.
func (s TextureSetup) ShouldSetupFromFile() bool { return s.fromFile }

// ShouldSetupFromImageData reports whether the texture decodes from
// in-memory encoded image data.
func (s TextureSetup) ShouldSetupFromImageData() bool { return s.fromImageData }

// ShouldSetupFromPixelData reports whether the texture is created from
// raw pixel data.
func (s TextureSetup) ShouldSetupFromPixelData() bool { return s.fromPixelData }

// ShouldSetupAsRenderTarget reports whether the texture is an
// offscreen render target.
func (s TextureSetup) ShouldSetupAsRenderTarget() bool { return s.renderTarget }

// IsRelSizeRenderTarget reports whether the render target is sized
// relative to the display.
func (s TextureSetup) IsRelSizeRenderTarget() bool { return s.relSize }

// HasDepth reports whether the render target has a depth surface,
// owned or shared.
func (s TextureSetup) HasDepth() bool {
	return s.sharedDepth || s.DepthFormat.IsDepthFormat()
}

// HasSharedDepth reports whether the depth surface is borrowed from
// another render target.
func (s TextureSetup) HasSharedDepth() bool { return s.sharedDepth }

// HasMipMaps reports whether a mip chain is created for the texture.
func (s TextureSetup) HasMipMaps() bool { return s.hasMipMaps }

// NumMipLevels returns the mip level count implied by the setup: the
// full chain down to 1x1 when mipmaps are enabled, otherwise 1.
func (s TextureSetup) NumMipLevels() int {
	if !s.hasMipMaps || s.Width <= 0 || s.Height <= 0 {
		return 1
	}
	max := s.Width
	if s.Height > max {
		max = s.Height
	}
	return bits.Len(uint(max))
}

// Desc lowers the setup to a WebGPU texture descriptor. Render targets
// gain the render-attachment usage; everything is created copyable and
// bindable.
func (s TextureSetup) Desc() gputypes.TextureDescriptor {
	usage := gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst
	if s.renderTarget {
		usage |= gputypes.TextureUsageRenderAttachment
	}
	return gputypes.TextureDescriptor{
		Label: s.Locator.Location(),
		Size: gputypes.Extent3D{
			Width:              uint32(s.Width),
			Height:             uint32(s.Height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: uint32(s.NumMipLevels()),
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        s.ColorFormat.GPUFormat(),
		Usage:         usage,
	}
}
