package cmd

import (
	"encoding/csv"
	"fmt"
	"image"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/rm-hull/heatmap-overlay/heatmap"
	"github.com/rm-hull/heatmap-overlay/internal/imaging"
	"github.com/rm-hull/heatmap-overlay/internal/imaging/stage"
)

type RenderOptions struct {
	Width         int
	Height        int
	Colours       string
	Opacity       float64
	PointDiameter float64
	AlphaStrength float64
	BlurSigma     float64
	Monochrome    bool
	Resample      bool
}

// Render reads x,y points from a CSV file, renders them as a heatmap
// overlay (over the background image if one is given) and writes the
// result as a PNG file.
func Render(pointsPath, backgroundPath, outPath string, opts RenderOptions) error {
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

	img, err := renderer.HeatmapOnCanvas(width, height, slices.Values(points), background)
	if err != nil {
		return fmt.Errorf("failed to render heatmap: %w", err)
	}

	result := imaging.From(img)
	if err := result.Pipeline(postStages(opts)...); err != nil {
		return fmt.Errorf("failed to post-process heatmap: %w", err)
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := result.WritePNG(outFile); err != nil {
		_ = outFile.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return outFile.Close()
}

func newRenderer(opts RenderOptions) (*heatmap.Renderer, error) {
	renderer, err := heatmap.New(
		heatmap.WithColours(opts.Colours),
		heatmap.WithOpacity(opts.Opacity),
		heatmap.WithPointDiameter(opts.PointDiameter),
		heatmap.WithAlphaStrength(opts.AlphaStrength),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to configure renderer: %w", err)
	}
	return renderer, nil
}

func postStages(opts RenderOptions) []imaging.PipelineStage {
	stages := make([]imaging.PipelineStage, 0, 3)
	if opts.Monochrome {
		stages = append(stages, &stage.MonochromeStage{})
	}
	if opts.BlurSigma > 0 {
		stages = append(stages, &stage.GaussianBlurStage{Sigma: opts.BlurSigma})
	}
	if opts.Resample {
		stages = append(stages, &stage.ResampleStage{})
	}
	return stages
}

func loadBackground(path string) (image.Image, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open background image: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	background, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode background image: %w", err)
	}
	return background.Img, nil
}

// ReadPointsCSV parses a two-column CSV file of x,y coordinates.
// A single non-numeric header row is tolerated and skipped.
func ReadPointsCSV(path string) ([]heatmap.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open points file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return parsePoints(f)
}

func parsePoints(r io.Reader) ([]heatmap.Point, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse points CSV: %w", err)
	}

	points := make([]heatmap.Point, 0, len(records))
	for i, record := range records {
		if len(record) < 2 {
			return nil, fmt.Errorf("record %d: expected x,y but got %d fields", i+1, len(record))
		}
		x, errX := strconv.ParseFloat(record[0], 64)
		y, errY := strconv.ParseFloat(record[1], 64)
		if errX != nil || errY != nil {
			if i == 0 {
				// header row
				continue
			}
			return nil, fmt.Errorf("record %d: non-numeric coordinates %q,%q", i+1, record[0], record[1])
		}
		points = append(points, heatmap.Point{X: x, Y: y})
	}
	return points, nil
}
