// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"github.com/gogpu/gpucontext"
	types "github.com/gogpu/gputypes"
)

// NativeTextureDescriptor is the descriptor shape accepted by the
// gogpu/wgpu native texture path. It mirrors gputypes.TextureDescriptor
// but uses the wgpu HAL-level type enums, sparing native-backend code
// a second conversion layer.
type NativeTextureDescriptor struct {
	Label         string
	Size          types.Extent3D
	MipLevelCount uint32
	SampleCount   uint32
	Dimension     types.TextureDimension
	Format        types.TextureFormat
	Usage         types.TextureUsage
}

// NativeDesc lowers the setup to the gogpu/wgpu native descriptor.
func (s TextureSetup) NativeDesc() NativeTextureDescriptor {
	usage := types.TextureUsageTextureBinding | types.TextureUsageCopyDst
	if s.renderTarget {
		usage |= types.TextureUsageRenderAttachment
	}
	return NativeTextureDescriptor{
		Label: s.Locator.Location(),
		Size: types.Extent3D{
			Width:              uint32(s.Width),
			Height:             uint32(s.Height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: uint32(s.NumMipLevels()),
		SampleCount:   1,
		Dimension:     types.TextureDimension2D,
		Format:        nativeFormat(s.ColorFormat),
		Usage:         usage,
	}
}

// nativeFormat converts the engine format to the wgpu HAL format enum.
func nativeFormat(f PixelFormat) types.TextureFormat {
	switch f {
	case PixelFormatRGBA8:
		return types.TextureFormatRGBA8Unorm
	case PixelFormatBGRA8:
		return types.TextureFormatBGRA8Unorm
	case PixelFormatR8:
		return types.TextureFormatR8Unorm
	default:
		return types.TextureFormatUndefined
	}
}

// SurfaceRenderTarget builds a render target setup whose color format
// matches the host application's surface, taken from the provider the
// host passes in (gogpu.App.GPUContextProvider() in gogpu programs).
// Rendering into such a target composites onto the surface without a
// format conversion pass.
func SurfaceRenderTarget(provider gpucontext.DeviceProvider, width, height int) TextureSetup {
	setup := RenderTarget(width, height)
	if provider != nil {
		if f := FromGPUFormat(provider.SurfaceFormat()); f.IsValidColorFormat() {
			setup.ColorFormat = f
		}
	}
	return setup
}
