package models

import (
	"encoding/json"
	"iter"

	"github.com/rm-hull/heatmap-overlay/heatmap"
)

type HeatmapRequest struct {
	Width         int          `json:"width" binding:"required,gt=0"`
	Height        int          `json:"height" binding:"required,gt=0"`
	Points        [][2]float64 `json:"points" binding:"required"`
	Colours       string       `json:"colours,omitempty"`
	Opacity       *float64     `json:"opacity,omitempty"`
	PointDiameter *float64     `json:"pointDiameter,omitempty"`
	AlphaStrength *float64     `json:"alphaStrength,omitempty"`
}

// PointSeq exposes the request's coordinate pairs as a point sequence
// suitable for the renderer.
func (r *HeatmapRequest) PointSeq() iter.Seq[heatmap.Point] {
	return func(yield func(heatmap.Point) bool) {
		for _, p := range r.Points {
			if !yield(heatmap.Point{X: p[0], Y: p[1]}) {
				return
			}
		}
	}
}

// CacheKey returns a stable key for response caching. Two requests with
// identical parameters produce identical keys.
func (r *HeatmapRequest) CacheKey() (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
