package mock

import (
	"image"
	"io"

	"github.com/afrovibz/product-images-go/internal/port"
)

// Codec implements port.Codec with deterministic outputs for tests.
type Codec struct {
	DecodeOut port.DecodedImage
	DecodeErr error
	EncodeOut []byte
	EncodeErr error

	DecodeCalled  bool
	ResizeCalled  bool
	ResizedWidths []int
	EncodeCalled  bool
	Presets       []port.EncodePreset
}

func (c *Codec) Decode(r io.Reader) (port.DecodedImage, error) {
	c.DecodeCalled = true
	if c.DecodeErr != nil {
		return port.DecodedImage{}, c.DecodeErr
	}
	out := c.DecodeOut
	if out.Img == nil {
		out.Img = image.NewRGBA(image.Rect(0, 0, out.Width, out.Height))
	}
	return out, nil
}

func (c *Codec) Resize(img image.Image, width int) image.Image {
	c.ResizeCalled = true
	c.ResizedWidths = append(c.ResizedWidths, width)
	return img
}

func (c *Codec) Encode(img image.Image, preset port.EncodePreset) ([]byte, error) {
	c.EncodeCalled = true
	c.Presets = append(c.Presets, preset)
	if c.EncodeErr != nil {
		return nil, c.EncodeErr
	}
	if c.EncodeOut != nil {
		return c.EncodeOut, nil
	}
	return []byte("encoded"), nil
}
