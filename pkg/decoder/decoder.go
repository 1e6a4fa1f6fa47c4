package decoder

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decoder is the decoding capability used by the metadata extractor. It is an
// interface so the extractor can be built without any decoder at all and still
// produce file-level descriptors.
type Decoder interface {
	Decode(r io.Reader) (*Image, error)
}

// Image is a decoded image handle. Pixels is held in memory so that multiple
// independent resize passes can be made without re-reading the source.
type Image struct {
	Width  int
	Height int
	Format string
	Mode   string

	Pixels image.Image
}

// DecodeError reports that a byte stream could not be decoded as an image.
// This is an expected outcome for corrupt or unsupported files, not a fault.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Standard decodes with the registered stdlib and x/image formats:
// jpeg, png, gif, webp, bmp and tiff.
type Standard struct{}

func (s *Standard) Decode(r io.Reader) (*Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	bounds := img.Bounds()

	return &Image{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: strings.ToUpper(format),
		Mode:   modeFor(img),
		Pixels: img,
	}, nil
}

func modeFor(img image.Image) string {
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return "L"
	case color.RGBAModel, color.NRGBAModel, color.RGBA64Model, color.NRGBA64Model:
		return "RGBA"
	case color.CMYKModel:
		return "CMYK"
	case color.YCbCrModel:
		return "RGB"
	}

	if _, ok := img.(*image.Paletted); ok {
		return "P"
	}

	return "RGB"
}
