package imaging

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"delta-detect/internal/domain/entity"
	"delta-detect/internal/domain/port"
)

// StdDecoder decodes JPEG, PNG and GIF images into BGR frames using
// the standard image codecs, so the pipeline works without OpenCV.
type StdDecoder struct{}

// NewStdDecoder creates the decoder.
func NewStdDecoder() *StdDecoder {
	return &StdDecoder{}
}

// Decode parses the encoded image and converts it to a BGR frame.
func (d *StdDecoder) Decode(data []byte) (*entity.Frame, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	frame := entity.NewFrame(bounds.Dx(), bounds.Dy())
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			frame.SetBGR(x, y, uint8(b>>8), uint8(g>>8), uint8(r>>8))
		}
	}
	return frame, nil
}

var _ port.FrameDecoder = (*StdDecoder)(nil)
