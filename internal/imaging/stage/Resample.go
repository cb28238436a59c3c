package stage

import (
	"image"

	"github.com/rm-hull/heatmap-overlay/internal/imaging"
	"golang.org/x/image/draw"
)

type ResampleStage struct{}

// Process applies a Catmull-Rom resampling to smooth the image
// This can help reduce artifacts introduced by other processing stages
// such as blurring or very small brush diameters
func (s *ResampleStage) Process(p *imaging.Image) error {
	smoothed := image.NewNRGBA(p.Bounds)
	draw.CatmullRom.Scale(smoothed, p.Bounds, p.Img, p.Bounds, draw.Over, nil)
	p.Img = smoothed
	return nil
}
