// Package heatmap renders density heatmap overlays from sets of 2D
// points. Points are rasterized into a greyscale density field using
// additive radial brushes, the field is mapped through a colour
// gradient, and the result is optionally composited over a background
// image.
package heatmap

import (
	"fmt"
	"image"
	"iter"
)

const (
	DefaultPointDiameter = 50
	DefaultAlphaStrength = 0.2
	DefaultOpacity       = 0.65
)

// Renderer holds the immutable rendering configuration. Construct one
// with New; a Renderer is safe to reuse across calls since nothing in
// it is mutated by rendering.
type Renderer struct {
	colormap Colormap
	opacity  float64
	raster   Rasterizer
}

type options struct {
	pointDiameter float64
	alphaStrength float64
	opacity       float64
	colours       string
	colormap      Colormap
	rasterizer    Rasterizer
}

type Option func(*options)

// WithPointDiameter sets the pixel diameter of each point's influence
// circle. Must be positive.
func WithPointDiameter(diameter float64) Option {
	return func(o *options) { o.pointDiameter = diameter }
}

// WithAlphaStrength sets the peak density contribution of a single
// point, in [0,1], before accumulation with overlapping points.
func WithAlphaStrength(strength float64) Option {
	return func(o *options) { o.alphaStrength = strength }
}

// WithOpacity sets the global overlay opacity multiplier, in [0,1].
func WithOpacity(opacity float64) Option {
	return func(o *options) { o.opacity = opacity }
}

// WithColours selects the colour scheme: "default", "reveal", or the
// path to a horizontal gradient image.
func WithColours(colours string) Option {
	return func(o *options) { o.colours = colours }
}

// WithColormap supplies a pre-built colormap, overriding WithColours.
func WithColormap(cmap Colormap) Option {
	return func(o *options) { o.colormap = cmap }
}

// WithRasterizer plugs in an alternative greyscale rasterizer backend,
// overriding the point diameter and alpha strength options.
func WithRasterizer(r Rasterizer) Option {
	return func(o *options) { o.rasterizer = r }
}

// New builds a Renderer, validating all configuration eagerly so that
// bad values fail here rather than on the first render.
func New(opts ...Option) (*Renderer, error) {
	o := &options{
		pointDiameter: DefaultPointDiameter,
		alphaStrength: DefaultAlphaStrength,
		opacity:       DefaultOpacity,
		colours:       "default",
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.opacity < 0 || o.opacity > 1 {
		return nil, fmt.Errorf("%w: opacity %v outside [0,1]", ErrInvalidConfig, o.opacity)
	}

	cmap := o.colormap
	if cmap == nil {
		var err error
		if cmap, err = gradientFor(o.colours); err != nil {
			return nil, err
		}
	}

	raster := o.rasterizer
	if raster == nil {
		var err error
		if raster, err = NewRadialRasterizer(o.pointDiameter, o.alphaStrength); err != nil {
			return nil, err
		}
	}

	return &Renderer{colormap: cmap, opacity: o.opacity, raster: raster}, nil
}

// Heatmap renders the points onto a transparent width x height canvas.
// The points sequence is consumed exactly once.
func (r *Renderer) Heatmap(width, height int, points iter.Seq[Point]) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: canvas size %dx%d", ErrInvalidConfig, width, height)
	}
	field := r.raster.Rasterize(width, height, points)
	return ApplyOpacity(Colorize(field, r.colormap), r.opacity), nil
}

// HeatmapOn renders the points over a background image, deriving the
// canvas size from the background.
func (r *Renderer) HeatmapOn(background image.Image, points iter.Seq[Point]) (*image.NRGBA, error) {
	bounds := background.Bounds()
	return r.HeatmapOnCanvas(bounds.Dx(), bounds.Dy(), points, background)
}

// HeatmapOnCanvas renders the points onto an explicitly sized canvas,
// composited over the background if one is given. A non-nil background
// must match the canvas size exactly.
func (r *Renderer) HeatmapOnCanvas(width, height int, points iter.Seq[Point], background image.Image) (*image.NRGBA, error) {
	if background == nil {
		return r.Heatmap(width, height, points)
	}

	bounds := background.Bounds()
	if bounds.Dx() != width || bounds.Dy() != height {
		return nil, fmt.Errorf("%w: background is %dx%d, canvas is %dx%d",
			ErrDimensionMismatch, bounds.Dx(), bounds.Dy(), width, height)
	}

	overlay, err := r.Heatmap(width, height, points)
	if err != nil {
		return nil, err
	}
	return Composite(background, overlay)
}
