package heatmap

import "errors"

var (
	// ErrInvalidConfig indicates an out-of-range configuration value,
	// e.g. an opacity outside [0,1] or a non-positive point diameter.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrFileAccess indicates a colour-scheme or background file could
	// not be opened.
	ErrFileAccess = errors.New("file access")

	// ErrInvalidResource indicates a reference image that cannot be used,
	// e.g. one with zero width or height.
	ErrInvalidResource = errors.New("invalid resource")

	// ErrDimensionMismatch indicates a background whose size disagrees
	// with the requested canvas size.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)
