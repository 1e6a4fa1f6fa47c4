package decoder

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func TestStandardDecodePNG(t *testing.T) {
	t.Parallel()

	src := image.NewNRGBA(image.Rect(0, 0, 10, 20))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("failed to encode test image: %s", err)
	}

	d := &Standard{}

	img, err := d.Decode(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if img.Width != 10 || img.Height != 20 {
		t.Fatalf("unexpected dimensions: %dx%d", img.Width, img.Height)
	}

	if img.Format != "PNG" {
		t.Fatalf("unexpected format: %s", img.Format)
	}

	if img.Mode != "RGBA" {
		t.Fatalf("unexpected mode: %s", img.Mode)
	}

	if img.Pixels == nil {
		t.Fatalf("expected pixels to be set")
	}
}

func TestStandardDecodeJPEG(t *testing.T) {
	t.Parallel()

	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, nil); err != nil {
		t.Fatalf("failed to encode test image: %s", err)
	}

	d := &Standard{}

	img, err := d.Decode(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if img.Format != "JPEG" {
		t.Fatalf("unexpected format: %s", img.Format)
	}

	if img.Mode != "RGB" {
		t.Fatalf("unexpected mode: %s", img.Mode)
	}
}

func TestStandardDecodeCorrupt(t *testing.T) {
	t.Parallel()

	d := &Standard{}

	_, err := d.Decode(strings.NewReader("not an image at all"))
	if err == nil {
		t.Fatalf("expected error for corrupt input")
	}

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected a DecodeError, got %T", err)
	}
}
