package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/rm-hull/heatmap-overlay/cmd"
	"github.com/spf13/cobra"
)

func main() {
	var pointsPath string
	var backgroundPath string
	var outPath string
	var frames int
	var frameDelay float64
	var port int
	var cacheSize int
	var debug bool

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	rootCmd := &cobra.Command{
		Use:  "heatmap-overlay",
		Long: `Density heatmap overlay renderer`,
	}

	var renderOpts cmd.RenderOptions
	renderCmd := &cobra.Command{
		Use:   "render --points <csv> [--background <image>] --out <png>",
		Short: "Render a heatmap overlay to a PNG file",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.Render(pointsPath, backgroundPath, outPath, renderOpts)
		},
	}
	addRenderFlags(renderCmd, &renderOpts, &pointsPath, &backgroundPath, &outPath)

	var animateOpts cmd.RenderOptions
	animateCmd := &cobra.Command{
		Use:   "animate --points <csv> [--background <image>] --out <png> [--frames <n>]",
		Short: "Render a progressive heatmap build-up as an animated PNG",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.Animate(pointsPath, backgroundPath, outPath, frames, frameDelay, animateOpts)
		},
	}
	addRenderFlags(animateCmd, &animateOpts, &pointsPath, &backgroundPath, &outPath)
	animateCmd.Flags().IntVar(&frames, "frames", 10, "Number of animation frames")
	animateCmd.Flags().Float64Var(&frameDelay, "delay", 0.2, "Per-frame delay in seconds")

	apiServerCmd := &cobra.Command{
		Use:   "api-server [--port <port>] [--debug]",
		Short: "Start HTTP API server",
		Run: func(_ *cobra.Command, _ []string) {
			cmd.ApiServer(port, cacheSize, debug)
		},
	}
	apiServerCmd.Flags().IntVar(&port, "port", 8080, "Port to run HTTP server on")
	apiServerCmd.Flags().IntVar(&cacheSize, "cache-size", 256, "Number of rendered heatmaps to keep in the LRU cache")
	apiServerCmd.Flags().BoolVar(&debug, "debug", false, "Enable debugging (pprof) - WARNING: do not enable in production")

	rootCmd.AddCommand(renderCmd, animateCmd, apiServerCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func addRenderFlags(c *cobra.Command, opts *cmd.RenderOptions, pointsPath, backgroundPath, outPath *string) {
	c.Flags().StringVar(pointsPath, "points", "", "Path to CSV file of x,y points")
	c.Flags().StringVar(backgroundPath, "background", "", "Path to background image (PNG or JPEG)")
	c.Flags().StringVar(outPath, "out", "heatmap.png", "Path to output PNG file")
	c.Flags().IntVar(&opts.Width, "width", 1024, "Canvas width (ignored when a background is given)")
	c.Flags().IntVar(&opts.Height, "height", 768, "Canvas height (ignored when a background is given)")
	c.Flags().StringVar(&opts.Colours, "colours", "default", `Colour scheme: "default", "reveal" or path to a horizontal gradient image`)
	c.Flags().Float64Var(&opts.Opacity, "opacity", 0.65, "Overlay opacity, between 0 and 1")
	c.Flags().Float64Var(&opts.PointDiameter, "point-diameter", 50, "Pixel diameter of each point's influence circle")
	c.Flags().Float64Var(&opts.AlphaStrength, "alpha-strength", 0.2, "Peak per-point density contribution, between 0 and 1")
	c.Flags().Float64Var(&opts.BlurSigma, "blur", 0, "Apply a Gaussian blur with the given sigma to the result")
	c.Flags().BoolVar(&opts.Monochrome, "monochrome", false, "Reduce the overlay to a white density mask")
	c.Flags().BoolVar(&opts.Resample, "resample", false, "Apply a Catmull-Rom resample to the result")
	_ = c.MarkFlagRequired("points")
}
