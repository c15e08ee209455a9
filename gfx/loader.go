// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"bytes"
	"fmt"
	"image"
	"os"

	_ "image/gif"  // register GIF decoding
	_ "image/jpeg" // register JPEG decoding
	_ "image/png"  // register PNG decoding

	_ "golang.org/x/image/bmp"  // register BMP decoding
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoding

	"github.com/gogpu/appkit"
)

// ImageData is a decoded texture image: tightly packed RGBA8 pixel
// levels, mip level 0 first, each level half the previous size (rounded
// down, minimum 1).
type ImageData struct {
	Width  int
	Height int
	Levels [][]byte
}

// DecodeImageData decodes encoded image data (PNG, JPEG, GIF, BMP or
// TIFF) per the setup and converts it to RGBA8 pixel levels. When the
// setup requests mipmaps the full chain is generated by successive
// bilinear downscaling.
func DecodeImageData(setup TextureSetup, data []byte) (ImageData, error) {
	if !setup.ShouldSetupFromImageData() && !setup.ShouldSetupFromFile() {
		panic("gfx: setup does not describe an image-data texture")
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return ImageData{}, fmt.Errorf("gfx: decode %q: %w", setup.Locator.Location(), err)
	}
	appkit.Logger().Debug("decoded texture image",
		"locator", setup.Locator.Location(),
		"format", format,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy())
	return buildImageData(img, setup.HasMipMaps()), nil
}

// LoadImageFile reads and decodes the image file named by the setup's
// locator location.
func LoadImageFile(setup TextureSetup) (ImageData, error) {
	if !setup.ShouldSetupFromFile() {
		panic("gfx: setup does not describe a file texture")
	}
	data, err := os.ReadFile(setup.Locator.Location())
	if err != nil {
		return ImageData{}, fmt.Errorf("gfx: read %q: %w", setup.Locator.Location(), err)
	}
	return DecodeImageData(setup, data)
}

func buildImageData(img image.Image, mipMaps bool) ImageData {
	bounds := img.Bounds()
	level0 := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(level0, level0.Bounds(), img, bounds.Min, draw.Src)

	out := ImageData{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Levels: [][]byte{tightPixels(level0)},
	}
	if !mipMaps {
		return out
	}

	prev := level0
	for prev.Bounds().Dx() > 1 || prev.Bounds().Dy() > 1 {
		next := image.NewRGBA(image.Rect(0, 0,
			max(1, prev.Bounds().Dx()/2),
			max(1, prev.Bounds().Dy()/2)))
		draw.BiLinear.Scale(next, next.Bounds(), prev, prev.Bounds(), draw.Src, nil)
		out.Levels = append(out.Levels, tightPixels(next))
		prev = next
	}
	return out
}

// tightPixels returns the RGBA pixels without row padding. NewRGBA
// images are already tight, so this is a straight reference except for
// subimages.
func tightPixels(img *image.RGBA) []byte {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if img.Stride == 4*w {
		return img.Pix[:4*w*h]
	}
	pix := make([]byte, 0, 4*w*h)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+4*w]
		pix = append(pix, row...)
	}
	return pix
}
