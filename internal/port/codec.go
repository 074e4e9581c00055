package port

import (
	"image"
	"io"
)

// DecodedImage is the result of decoding raw bytes into a pixel buffer.
type DecodedImage struct {
	Img    image.Image
	Format string
	Width  int
	Height int
}

// EncodePreset selects the target encoding of a rendition.
type EncodePreset struct {
	Format  string
	Quality int
}

// Codec is the narrow image decode/encode capability injected into the
// pipeline, so tests can swap in a deterministic fake.
type Codec interface {
	Decode(r io.Reader) (DecodedImage, error)
	Resize(img image.Image, width int) image.Image
	Encode(img image.Image, preset EncodePreset) ([]byte, error)
}
