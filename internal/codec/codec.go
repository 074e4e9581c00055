package codec

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"log"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/afrovibz/product-images-go/internal/model"
	"github.com/afrovibz/product-images-go/internal/port"
)

// Codec decodes JPEG/PNG/WebP sources and encodes renditions as JPEG or WebP.
type Codec struct{}

// compile-time check: *Codec must satisfy port.Codec
var _ port.Codec = (*Codec)(nil)

func NewCodec() *Codec {
	log.Println("initialising image codec...")
	return &Codec{}
}

func (c *Codec) Decode(r io.Reader) (port.DecodedImage, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return port.DecodedImage{}, fmt.Errorf("codec: failed to decode image: %w", err)
	}

	b := img.Bounds()
	return port.DecodedImage{
		Img:    img,
		Format: format,
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

// Resize scales the image to the given width, preserving aspect ratio.
func (c *Codec) Resize(img image.Image, width int) image.Image {
	return imaging.Resize(img, width, 0, imaging.Lanczos)
}

func (c *Codec) Encode(img image.Image, preset port.EncodePreset) ([]byte, error) {
	buf := &bytes.Buffer{}
	switch preset.Format {
	case model.FormatWebP:
		if err := webp.Encode(buf, img, &webp.Options{Quality: float32(preset.Quality)}); err != nil {
			return nil, fmt.Errorf("codec: failed to encode WebP: %w", err)
		}
	case model.FormatJPEG:
		if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: preset.Quality}); err != nil {
			return nil, fmt.Errorf("codec: failed to encode JPEG: %w", err)
		}
	default:
		return nil, fmt.Errorf("codec: unknown encode format %q", preset.Format)
	}
	return buf.Bytes(), nil
}
