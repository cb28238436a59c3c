package imaging

import (
	"bytes"
	"image"

	"github.com/kettek/apng"
)

// Animate encodes the frames as a looping animated PNG with a fixed
// per-frame delay in seconds.
func Animate(frames []image.Image, frameDelay float64) ([]byte, error) {

	a := apng.APNG{
		Frames:    make([]apng.Frame, len(frames)),
		LoopCount: 0,
	}

	for i, frame := range frames {
		a.Frames[i] = apng.Frame{
			Image:            frame,
			DelayNumerator:   uint16(frameDelay * 1000),
			DelayDenominator: 1000,
		}
	}

	var buf bytes.Buffer
	if err := apng.Encode(&buf, a); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
