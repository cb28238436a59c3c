package heatmap

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func points(pts ...Point) iter.Seq[Point] {
	return slices.Values(pts)
}

func TestNewRadialRasterizer(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		r, err := NewRadialRasterizer(50, 0.2)
		assert.NoError(t, err)
		assert.NotNil(t, r)
	})

	t.Run("non-positive diameter", func(t *testing.T) {
		_, err := NewRadialRasterizer(0, 0.2)
		assert.ErrorIs(t, err, ErrInvalidConfig)

		_, err = NewRadialRasterizer(-10, 0.2)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("strength outside range", func(t *testing.T) {
		_, err := NewRadialRasterizer(50, -0.1)
		assert.ErrorIs(t, err, ErrInvalidConfig)

		_, err = NewRadialRasterizer(50, 1.5)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestRadialRasterizer_Rasterize(t *testing.T) {
	t.Run("no points leaves the canvas white", func(t *testing.T) {
		r, err := NewRadialRasterizer(50, 1.0)
		require.NoError(t, err)

		field := r.Rasterize(20, 10, points())
		assert.Equal(t, 20, field.Bounds().Dx())
		assert.Equal(t, 10, field.Bounds().Dy())
		for _, p := range field.Pix {
			assert.EqualValues(t, 255, p)
		}
	})

	t.Run("single centred point is darkest at the centre", func(t *testing.T) {
		r, err := NewRadialRasterizer(50, 1.0)
		require.NoError(t, err)

		field := r.Rasterize(100, 100, points(Point{X: 50, Y: 50}))
		assert.EqualValues(t, 0, field.GrayAt(50, 50).Y)

		// monotone lightening moving outward along the x axis
		prev := field.GrayAt(50, 50).Y
		for x := 51; x < 100; x++ {
			cur := field.GrayAt(x, 50).Y
			assert.GreaterOrEqual(t, cur, prev, "pixel at x=%d darker than its inner neighbour", x)
			prev = cur
		}

		// fully white at and beyond the brush radius
		for x := 75; x < 100; x++ {
			assert.EqualValues(t, 255, field.GrayAt(x, 50).Y, "x=%d", x)
		}
	})

	t.Run("coincident points accumulate density", func(t *testing.T) {
		r, err := NewRadialRasterizer(50, 0.5)
		require.NoError(t, err)

		single := r.Rasterize(100, 100, points(Point{X: 50, Y: 50}))
		double := r.Rasterize(100, 100, points(Point{X: 50, Y: 50}, Point{X: 50, Y: 50}))

		assert.Less(t, double.GrayAt(50, 50).Y, single.GrayAt(50, 50).Y)
		for i := range double.Pix {
			assert.LessOrEqual(t, double.Pix[i], single.Pix[i])
		}
	})

	t.Run("accumulation saturates at black", func(t *testing.T) {
		r, err := NewRadialRasterizer(50, 1.0)
		require.NoError(t, err)

		field := r.Rasterize(100, 100, points(Point{X: 50, Y: 50}, Point{X: 50, Y: 50}))
		assert.EqualValues(t, 0, field.GrayAt(50, 50).Y)
	})

	t.Run("point outside the canvas contributes its overlap", func(t *testing.T) {
		r, err := NewRadialRasterizer(50, 1.0)
		require.NoError(t, err)

		field := r.Rasterize(100, 100, points(Point{X: -10, Y: 50}))
		assert.Less(t, field.GrayAt(0, 50).Y, uint8(255))
	})

	t.Run("point fully outside the canvas contributes nothing", func(t *testing.T) {
		r, err := NewRadialRasterizer(50, 1.0)
		require.NoError(t, err)

		field := r.Rasterize(100, 100, points(Point{X: -200, Y: -200}))
		for _, p := range field.Pix {
			assert.EqualValues(t, 255, p)
		}
	})

	t.Run("points are consumed exactly once", func(t *testing.T) {
		r, err := NewRadialRasterizer(10, 0.5)
		require.NoError(t, err)

		yields := 0
		oneShot := func(yield func(Point) bool) {
			for range 3 {
				yields++
				if !yield(Point{X: 5, Y: 5}) {
					return
				}
			}
		}

		r.Rasterize(10, 10, oneShot)
		assert.Equal(t, 3, yields)
	})
}
