package imaging

import (
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
)

type Image struct {
	Img    image.Image
	Bounds image.Rectangle
}

type PipelineStage interface {
	Process(img *Image) error
}

func Decode(r io.Reader) (*Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return &Image{
		Img:    img,
		Bounds: img.Bounds(),
	}, nil
}

func From(img image.Image) *Image {
	return &Image{
		Img:    img,
		Bounds: img.Bounds(),
	}
}

func (p *Image) WritePNG(w io.Writer) error {
	return png.Encode(w, p.Img)
}

func (p *Image) Pipeline(stages ...PipelineStage) error {
	for _, stage := range stages {
		if err := stage.Process(p); err != nil {
			return err
		}
	}
	return nil
}
