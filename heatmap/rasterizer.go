package heatmap

import (
	"fmt"
	"image"
	"iter"
	"math"
)

// Point is a coordinate in image pixel space. Points are not
// bounds-checked: a point outside the canvas contributes whatever part
// of its influence circle overlaps the canvas, possibly nothing.
type Point struct {
	X float64
	Y float64
}

// Rasterizer converts a stream of points into a greyscale density
// field: 255 (white) is zero density, 0 (black) is maximum density.
// The points sequence is consumed exactly once, so a one-shot producer
// is acceptable.
type Rasterizer interface {
	Rasterize(width, height int, points iter.Seq[Point]) *image.Gray
}

// RadialRasterizer is the default software Rasterizer. Each point is
// painted as a circular brush whose contribution peaks at the centre
// and falls off linearly to zero at radius diameter/2. Brushes darken
// the canvas multiplicatively, so overlapping points accumulate
// towards black rather than overwriting each other.
type RadialRasterizer struct {
	radius   float64
	strength float64
}

// NewRadialRasterizer validates the brush parameters eagerly.
// Diameter is the influence circle's width in pixels; strength is the
// peak per-point contribution in [0,1].
func NewRadialRasterizer(diameter, strength float64) (*RadialRasterizer, error) {
	if diameter <= 0 || math.IsNaN(diameter) {
		return nil, fmt.Errorf("%w: point diameter %v must be positive", ErrInvalidConfig, diameter)
	}
	if strength < 0 || strength > 1 || math.IsNaN(strength) {
		return nil, fmt.Errorf("%w: alpha strength %v outside [0,1]", ErrInvalidConfig, strength)
	}
	return &RadialRasterizer{radius: diameter / 2, strength: strength}, nil
}

func (r *RadialRasterizer) Rasterize(width, height int, points iter.Seq[Point]) *image.Gray {
	field := image.NewGray(image.Rect(0, 0, width, height))
	for i := range field.Pix {
		field.Pix[i] = 0xff
	}
	for p := range points {
		r.paint(field, p)
	}
	return field
}

func (r *RadialRasterizer) paint(field *image.Gray, p Point) {
	bounds := field.Bounds()
	x0 := max(bounds.Min.X, int(math.Floor(p.X-r.radius)))
	x1 := min(bounds.Max.X, int(math.Ceil(p.X+r.radius))+1)
	y0 := max(bounds.Min.Y, int(math.Floor(p.Y-r.radius)))
	y1 := min(bounds.Max.Y, int(math.Ceil(p.Y+r.radius))+1)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dist := math.Hypot(float64(x)-p.X, float64(y)-p.Y)
			// Linear falloff to zero at the rim doubles as edge
			// antialiasing: fractional distances yield fractional
			// contributions, so there is no visible stepping.
			alpha := r.strength * (1 - dist/r.radius)
			if alpha <= 0 {
				continue
			}
			i := field.PixOffset(x, y)
			field.Pix[i] = uint8(math.Round(float64(field.Pix[i]) * (1 - alpha)))
		}
	}
}
