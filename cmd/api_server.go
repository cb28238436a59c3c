package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"log"
	"net/http"

	"github.com/Depado/ginprom"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rm-hull/heatmap-overlay/heatmap"
	"github.com/rm-hull/heatmap-overlay/internal"
	"github.com/rm-hull/heatmap-overlay/internal/models"
	healthcheck "github.com/tavsec/gin-healthcheck"
	"github.com/tavsec/gin-healthcheck/checks"
	hc_config "github.com/tavsec/gin-healthcheck/config"
)

func ApiServer(port int, cacheSize int, debug bool) {

	internal.ShowVersion()
	if debug {
		internal.EnvironmentVars()
	}

	cache, err := lru.New[string, []byte](cacheSize)
	if err != nil {
		log.Fatalf("failed to create render cache: %v", err)
	}

	r := gin.New()

	prometheus := ginprom.New(
		ginprom.Engine(r),
		ginprom.Path("/metrics"),
		ginprom.Ignore("/healthz"),
	)

	r.Use(
		gin.Recovery(),
		gin.LoggerWithWriter(gin.DefaultWriter, "/healthz", "/metrics"),
		prometheus.Instrument(),
	)

	if debug {
		log.Println("WARNING: pprof endpoints are enabled and exposed. Do not run with this flag in production.")
		pprof.Register(r)
	}

	if err := healthcheck.New(r, hc_config.DefaultConfig(), []checks.Check{}); err != nil {
		log.Fatalf("failed to initialize healthcheck: %v", err)
	}

	r.POST("/v1/heatmap", renderHandler(cache))

	addr := fmt.Sprintf(":%d", port)
	log.Printf("Starting HTTP API Server on port %d...", port)
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("HTTP API Server failed to start on port %d: %v", port, err)
	}
}

func renderHandler(cache *lru.Cache[string, []byte]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.HeatmapRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		key, err := req.CacheKey()
		if err == nil {
			if data, ok := cache.Get(key); ok {
				c.Data(http.StatusOK, "image/png", data)
				return
			}
		}

		data, err := renderPNG(&req)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, heatmap.ErrInvalidConfig) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		if key != "" {
			cache.Add(key, data)
		}
		c.Data(http.StatusOK, "image/png", data)
	}
}

func renderPNG(req *models.HeatmapRequest) ([]byte, error) {
	opts := make([]heatmap.Option, 0, 4)

	if req.Colours != "" {
		// Only bundled presets are accepted over the API; a path-based
		// colour scheme would expose the server's filesystem.
		cmap, err := heatmap.PresetGradient(req.Colours)
		if err != nil {
			return nil, err
		}
		opts = append(opts, heatmap.WithColormap(cmap))
	}
	if req.Opacity != nil {
		opts = append(opts, heatmap.WithOpacity(*req.Opacity))
	}
	if req.PointDiameter != nil {
		opts = append(opts, heatmap.WithPointDiameter(*req.PointDiameter))
	}
	if req.AlphaStrength != nil {
		opts = append(opts, heatmap.WithAlphaStrength(*req.AlphaStrength))
	}

	renderer, err := heatmap.New(opts...)
	if err != nil {
		return nil, err
	}

	img, err := renderer.Heatmap(req.Width, req.Height, req.PointSeq())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
