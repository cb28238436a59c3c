package cmd

import (
	"errors"
	"fmt"
	"image"
	"os"
	"runtime"
	"slices"

	"github.com/rm-hull/heatmap-overlay/internal/imaging"
	"golang.org/x/sync/errgroup"
)

// Animate renders a progressive build-up of the points as an animated
// PNG: frame i contains the first i/frames of the point set. Frames are
// rendered concurrently since each render is independent.
func Animate(pointsPath, backgroundPath, outPath string, frames int, frameDelay float64, opts RenderOptions) error {
	if frames < 1 {
		return errors.New("frame count must be at least 1")
	}

	points, err := ReadPointsCSV(pointsPath)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(opts)
	if err != nil {
		return err
	}

	background, err := loadBackground(backgroundPath)
	if err != nil {
		return err
	}

	width, height := opts.Width, opts.Height
	if background != nil {
		width, height = background.Bounds().Dx(), background.Bounds().Dy()
	}

	imgs := make([]image.Image, frames)
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i := range frames {
		g.Go(func() error {
			cut := ((i + 1) * len(points)) / frames
			img, err := renderer.HeatmapOnCanvas(width, height, slices.Values(points[:cut]), background)
			if err != nil {
				return fmt.Errorf("failed to render frame %d: %w", i, err)
			}
			imgs[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	apngBytes, err := imaging.Animate(imgs, frameDelay)
	if err != nil {
		return fmt.Errorf("failed to encode animation: %w", err)
	}

	return os.WriteFile(outPath, apngBytes, 0644)
}
