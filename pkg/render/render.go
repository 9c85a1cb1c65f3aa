// Package render converts colorized arrays into standard Go images.
//
// The colorize package produces arrays of shape (x, y, 3) or (x, y, z, 3)
// with values in [0, 1]. This package is the glue for looking at them:
// [Image] converts a single plane to an *image.NRGBA, [Volume] converts a
// 3-dimensional result into one image per z-slice, [Upscale] magnifies
// small arrays for display, and [Colorbar] draws a colormap swatch.
// Everything stays in memory; encoding and file output are left to the
// caller.
package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/matzehuels/colorize/pkg/colormap"
	"github.com/matzehuels/colorize/pkg/errors"
	"github.com/matzehuels/colorize/pkg/narray"
)

// Image converts an (x, y, 3) RGB array into an image. The first axis
// maps to image rows, the second to columns; component values are expected
// in [0, 1] and are clamped during quantization.
func Image(rgb *narray.Dense) (*image.NRGBA, error) {
	shape := rgb.Shape()
	if len(shape) != 3 || shape[2] != 3 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"expected shape (x, y, 3), got %v", shape)
	}
	h, w := shape[0], shape[1]
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: quantize(rgb.At(y, x, 0)),
				G: quantize(rgb.At(y, x, 1)),
				B: quantize(rgb.At(y, x, 2)),
				A: 255,
			})
		}
	}
	return img, nil
}

// Volume converts an (x, y, z, 3) RGB array into one image per z-slice,
// in slice order.
func Volume(rgb *narray.Dense) ([]*image.NRGBA, error) {
	shape := rgb.Shape()
	if len(shape) != 4 || shape[3] != 3 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"expected shape (x, y, z, 3), got %v", shape)
	}
	h, w, depth := shape[0], shape[1], shape[2]
	out := make([]*image.NRGBA, depth)
	for z := 0; z < depth; z++ {
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				img.SetNRGBA(x, y, color.NRGBA{
					R: quantize(rgb.At(y, x, z, 0)),
					G: quantize(rgb.At(y, x, z, 1)),
					B: quantize(rgb.At(y, x, z, 2)),
					A: 255,
				})
			}
		}
		out[z] = img
	}
	return out, nil
}

// Upscale magnifies an image by an integer factor using nearest-neighbor
// resampling, keeping the blocky per-pixel look of small data arrays.
func Upscale(img image.Image, factor int) (*image.NRGBA, error) {
	if factor < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"upscale factor must be at least 1, got %d", factor)
	}
	b := img.Bounds()
	return imaging.Resize(img, b.Dx()*factor, b.Dy()*factor, imaging.NearestNeighbor), nil
}

// Colorbar draws a horizontal swatch of cm: value 0 at the left edge,
// value 1 at the right.
func Colorbar(cm colormap.Colormap, w, h int) (image.Image, error) {
	if w < 1 || h < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"colorbar dimensions must be positive, got %dx%d", w, h)
	}
	dc := gg.NewContext(w, h)
	for x := 0; x < w; x++ {
		v := 0.0
		if w > 1 {
			v = float64(x) / float64(w-1)
		}
		c := cm.At(v)
		dc.SetRGB(c.R, c.G, c.B)
		dc.DrawRectangle(float64(x), 0, 1, float64(h))
		dc.Fill()
	}
	return dc.Image(), nil
}

func quantize(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
