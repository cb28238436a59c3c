package stage

import (
	"github.com/anthonynsimon/bild/blur"
	"github.com/rm-hull/heatmap-overlay/internal/imaging"
)

type GaussianBlurStage struct {
	Sigma float64
}

// Process softens the heatmap overlay with a Gaussian blur
// Higher Sigma values result in a more pronounced blur effect
func (s *GaussianBlurStage) Process(p *imaging.Image) error {
	p.Img = blur.Gaussian(p.Img, s.Sigma)
	return nil
}
