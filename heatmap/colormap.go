package heatmap

import (
	"embed"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"github.com/anthonynsimon/bild/transform"
)

//go:embed assets/default.png assets/reveal.png
var assets embed.FS

var presets = map[string]string{
	"default": "assets/default.png",
	"reveal":  "assets/reveal.png",
}

// Colormap maps a normalized scalar in [0,1] to a colour. Position 0
// corresponds to maximum density (black in the greyscale field) and
// position 1 to zero density (white); values outside [0,1] are clamped.
type Colormap interface {
	At(t float64) color.NRGBA
}

// Gradient is a Colormap built from 256 evenly-spaced anchor colours,
// linearly interpolated between neighbours.
type Gradient struct {
	anchors [256]color.NRGBA
}

func (g *Gradient) At(t float64) color.NRGBA {
	if t <= 0 {
		return g.anchors[0]
	}
	if t >= 1 {
		return g.anchors[255]
	}
	pos := t * 255
	i := int(pos)
	frac := pos - float64(i)
	if frac == 0 {
		return g.anchors[i]
	}
	return lerpNRGBA(g.anchors[i], g.anchors[i+1], frac)
}

func lerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + t*(float64(y)-float64(x))))
	}
	return color.NRGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}

// GradientFromImage builds a colour gradient from a horizontal
// reference image. The image is resized to exactly 256 columns (its
// height is irrelevant) and the top-row pixel of each column becomes an
// anchor colour, left to right.
func GradientFromImage(img image.Image) (*Gradient, error) {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("%w: reference image is %dx%d", ErrInvalidResource, bounds.Dx(), bounds.Dy())
	}
	if bounds.Dx() != 256 {
		img = transform.Resize(img, 256, bounds.Dy(), transform.Linear)
		bounds = img.Bounds()
	}

	var g Gradient
	for x := range 256 {
		g.anchors[x] = color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y)).(color.NRGBA)
	}
	return &g, nil
}

// GradientFromFile builds a colour gradient from a horizontal reference
// image on disk.
func GradientFromFile(path string) (*Gradient, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileAccess, err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %v", ErrInvalidResource, path, err)
	}
	return GradientFromImage(img)
}

// PresetGradient returns one of the bundled colour schemes, currently
// "default" or "reveal".
func PresetGradient(name string) (*Gradient, error) {
	path, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, name)
	}
	f, err := assets.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileAccess, err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode preset %s: %v", ErrInvalidResource, name, err)
	}
	return GradientFromImage(img)
}

// gradientFor resolves a colour-scheme name: a preset if one matches,
// otherwise a path to a horizontal gradient image.
func gradientFor(colours string) (*Gradient, error) {
	if _, ok := presets[colours]; ok {
		return PresetGradient(colours)
	}
	return GradientFromFile(colours)
}
