package stage

import (
	"image"
	"image/color"

	"github.com/rm-hull/heatmap-overlay/internal/imaging"
)

type MonochromeStage struct{}

// Process reduces a coloured heatmap overlay to a white density mask
// Each pixel becomes white with its opacity derived from luminance, so the
// output can be used as a standalone mask layer
// Fully transparent pixels remain transparent
func (s *MonochromeStage) Process(p *imaging.Image) error {
	mask := image.NewNRGBA(p.Bounds)
	for y := p.Bounds.Min.Y; y < p.Bounds.Max.Y; y++ {
		for x := p.Bounds.Min.X; x < p.Bounds.Max.X; x++ {
			r, g, b, a := p.Img.At(x, y).RGBA()
			if a == 0 {
				mask.Set(x, y, color.NRGBA{0, 0, 0, 0})
				continue
			}
			// Calculate luminance using standard coefficients
			// Reference: https://en.wikipedia.org/wiki/Grayscale#Luma_coding_in_video_systems
			lum := uint8(0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8))
			mask.Set(x, y, color.NRGBA{255, 255, 255, lum})
		}
	}
	p.Img = mask
	return nil
}
