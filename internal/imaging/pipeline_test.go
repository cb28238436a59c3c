package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStage struct {
	log   *[]string
	name  string
	fails bool
}

func (s *recordingStage) Process(p *Image) error {
	*s.log = append(*s.log, s.name)
	if s.fails {
		return errors.New("stage failed")
	}
	return nil
}

func TestPipeline(t *testing.T) {
	t.Run("stages run in order", func(t *testing.T) {
		var log []string
		p := From(image.NewNRGBA(image.Rect(0, 0, 2, 2)))

		err := p.Pipeline(
			&recordingStage{log: &log, name: "first"},
			&recordingStage{log: &log, name: "second"},
		)
		assert.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, log)
	})

	t.Run("a failing stage stops the pipeline", func(t *testing.T) {
		var log []string
		p := From(image.NewNRGBA(image.Rect(0, 0, 2, 2)))

		err := p.Pipeline(
			&recordingStage{log: &log, name: "first", fails: true},
			&recordingStage{log: &log, name: "second"},
		)
		assert.Error(t, err)
		assert.Equal(t, []string{"first"}, log)
	})
}

func TestDecode(t *testing.T) {
	t.Run("decodes a PNG stream", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 5, 3))
		src.SetNRGBA(2, 1, color.NRGBA{R: 200, A: 255})

		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, src))

		p, err := Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 5, 3), p.Bounds)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := Decode(bytes.NewBufferString("not an image"))
		assert.Error(t, err)
	})
}

func TestWritePNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	p := From(src)

	var buf bytes.Buffer
	require.NoError(t, p.WritePNG(&buf))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), decoded.Bounds())
}
