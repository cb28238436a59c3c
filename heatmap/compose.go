package heatmap

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Colorize maps every pixel of a greyscale density field through the
// colormap: grey 0 (maximum density) evaluates the colormap at 0,
// grey 255 (no density) at 1. The field is not modified.
func Colorize(field *image.Gray, cmap Colormap) *image.NRGBA {
	// Greyscale values are 8-bit, so a lookup table covers every input.
	var lut [256]color.NRGBA
	for i := range lut {
		lut[i] = cmap.At(float64(i) / 255)
	}

	bounds := field.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.SetNRGBA(x-bounds.Min.X, y-bounds.Min.Y, lut[field.GrayAt(x, y).Y])
		}
	}
	return out
}

// ApplyOpacity returns a copy of img with every alpha value multiplied
// by opacity; the colour channels and the input image are untouched.
// Opacity values outside [0,1] are clamped.
func ApplyOpacity(img *image.NRGBA, opacity float64) *image.NRGBA {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}

	bounds := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			c.A = uint8(math.Round(float64(c.A) * opacity))
			out.SetNRGBA(x-bounds.Min.X, y-bounds.Min.Y, c)
		}
	}
	return out
}

// Composite draws the overlay on top of the background using the
// standard "over" operator. The background is converted to NRGBA first
// and neither input is mutated. Both images must have the same
// dimensions.
func Composite(background image.Image, overlay *image.NRGBA) (*image.NRGBA, error) {
	bb := background.Bounds()
	ob := overlay.Bounds()
	if bb.Dx() != ob.Dx() || bb.Dy() != ob.Dy() {
		return nil, fmt.Errorf("%w: background is %dx%d, overlay is %dx%d",
			ErrDimensionMismatch, bb.Dx(), bb.Dy(), ob.Dx(), ob.Dy())
	}

	out := image.NewNRGBA(image.Rect(0, 0, ob.Dx(), ob.Dy()))
	draw.Draw(out, out.Bounds(), background, bb.Min, draw.Src)
	draw.Draw(out, out.Bounds(), overlay, ob.Min, draw.Over)
	return out, nil
}
