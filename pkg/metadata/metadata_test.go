package metadata

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"regexp"
	"testing"

	"github.com/charlieegan3/image-gallery/pkg/decoder"
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %s", err)
	}

	return buf.Bytes()
}

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	return img
}

func TestExtractSolidColor(t *testing.T) {
	t.Parallel()

	// all channel values sit on stride-aligned histogram buckets
	content := encodePNG(t, solidImage(8, 8, color.NRGBA{R: 200, G: 100, B: 48, A: 255}))

	e := NewExtractor(&decoder.Standard{}, 5)

	d := e.Extract("photos/solid.png", content, int64(len(content)))

	if d.DecodeError != "" {
		t.Fatalf("unexpected decode error: %s", d.DecodeError)
	}

	if d.Filename != "solid.png" {
		t.Fatalf("unexpected filename: %s", d.Filename)
	}

	if d.Width != 8 || d.Height != 8 {
		t.Fatalf("unexpected dimensions: %dx%d", d.Width, d.Height)
	}

	if d.Dimensions != "8×8" {
		t.Fatalf("unexpected dimensions string: %s", d.Dimensions)
	}

	if d.Format != "PNG" {
		t.Fatalf("unexpected format: %s", d.Format)
	}

	if len(d.Palette) != 1 {
		t.Fatalf("expected a single palette entry, got %v", d.Palette)
	}

	// 200, 100 and 48 quantize to 192, 96 and 32
	if d.Palette[0] != "#c06020" {
		t.Fatalf("unexpected palette entry: %s", d.Palette[0])
	}

	if d.Histogram == nil {
		t.Fatalf("expected histogram to be set")
	}

	// the whole of each channel's mass lands in one kept bucket
	if got := d.Histogram.R[200/4]; got != 100 {
		t.Fatalf("expected red bucket to be 100, got %d", got)
	}
	if got := d.Histogram.G[100/4]; got != 100 {
		t.Fatalf("expected green bucket to be 100, got %d", got)
	}
	if got := d.Histogram.B[48/4]; got != 100 {
		t.Fatalf("expected blue bucket to be 100, got %d", got)
	}
}

func TestExtractPaletteAndHistogramShape(t *testing.T) {
	t.Parallel()

	// a horizontal gradient covering every quantization level
	img := image.NewNRGBA(image.Rect(0, 0, 64, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 64; x++ {
			v := uint8(x * 4)
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: 255 - v, B: 128, A: 255})
		}
	}

	content := encodePNG(t, img)

	e := NewExtractor(&decoder.Standard{}, 5)

	d := e.Extract("gradient.png", content, int64(len(content)))

	if d.DecodeError != "" {
		t.Fatalf("unexpected decode error: %s", d.DecodeError)
	}

	if len(d.Palette) == 0 || len(d.Palette) > 5 {
		t.Fatalf("unexpected palette length: %d", len(d.Palette))
	}

	for _, c := range d.Palette {
		if !hexColor.MatchString(c) {
			t.Fatalf("palette entry %q is not a hex color", c)
		}
	}

	for _, channel := range [][]int{d.Histogram.R, d.Histogram.G, d.Histogram.B} {
		if len(channel) != 64 {
			t.Fatalf("expected 64 histogram buckets, got %d", len(channel))
		}

		for i, v := range channel {
			if v < 0 || v > 100 {
				t.Fatalf("bucket %d out of range: %d", i, v)
			}
		}
	}
}

func TestExtractPaletteTieBreak(t *testing.T) {
	t.Parallel()

	// two colors with equal counts keep encounter order
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 10, B: 10, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 40, G: 40, B: 40, A: 255})

	content := encodePNG(t, img)

	e := NewExtractor(&decoder.Standard{}, 5)

	d := e.Extract("tie.png", content, int64(len(content)))

	if len(d.Palette) != 2 {
		t.Fatalf("expected two palette entries, got %v", d.Palette)
	}

	if d.Palette[0] != "#000000" || d.Palette[1] != "#202020" {
		t.Fatalf("unexpected palette order: %v", d.Palette)
	}
}

func TestExtractCorruptFile(t *testing.T) {
	t.Parallel()

	content := []byte("this is not an image")

	e := NewExtractor(&decoder.Standard{}, 5)

	d := e.Extract("broken.jpg", content, int64(len(content)))

	if d.DecodeError == "" {
		t.Fatalf("expected decode error to be set")
	}

	if d.Width != 0 || d.Height != 0 || d.Format != "" || d.Mode != "" {
		t.Fatalf("expected decode-derived fields to be unset: %+v", d)
	}

	if d.Palette != nil || d.Histogram != nil {
		t.Fatalf("expected palette and histogram to be unset")
	}

	if d.Filename != "broken.jpg" {
		t.Fatalf("unexpected filename: %s", d.Filename)
	}
}

func TestExtractZeroByteFile(t *testing.T) {
	t.Parallel()

	e := NewExtractor(&decoder.Standard{}, 5)

	d := e.Extract("empty.png", nil, 0)

	if d.SizeFormatted != "0.0 B" {
		t.Fatalf("unexpected formatted size: %s", d.SizeFormatted)
	}

	if d.DecodeError == "" {
		t.Fatalf("expected decode error for empty input")
	}
}

func TestExtractWithoutDecoder(t *testing.T) {
	t.Parallel()

	content := encodePNG(t, solidImage(4, 4, color.NRGBA{R: 1, G: 2, B: 3, A: 255}))

	e := NewExtractor(nil, 5)

	d := e.Extract("plain.png", content, int64(len(content)))

	if d.DecodeError != "" {
		t.Fatalf("unexpected error in degraded mode: %s", d.DecodeError)
	}

	if d.Width != 0 || d.Palette != nil || d.Histogram != nil {
		t.Fatalf("expected only file-level fields in degraded mode: %+v", d)
	}

	if d.Filename != "plain.png" || d.SizeBytes != int64(len(content)) {
		t.Fatalf("expected file-level fields to be set: %+v", d)
	}
}

func TestDescriptorJSONShape(t *testing.T) {
	t.Parallel()

	e := NewExtractor(&decoder.Standard{}, 5)

	content := encodePNG(t, solidImage(4, 4, color.NRGBA{R: 64, G: 64, B: 64, A: 255}))
	good := e.Extract("ok.png", content, int64(len(content)))
	bad := e.Extract("bad.png", []byte("junk"), 4)

	goodJSON, err := json.Marshal(good)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	badJSON, err := json.Marshal(bad)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	var goodFields, badFields map[string]interface{}
	if err := json.Unmarshal(goodJSON, &goodFields); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := json.Unmarshal(badJSON, &badFields); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	for _, key := range []string{"filename", "size", "size_formatted", "width", "height", "palette", "histogram"} {
		if _, ok := goodFields[key]; !ok {
			t.Fatalf("expected key %q in successful descriptor", key)
		}
	}
	if _, ok := goodFields["error"]; ok {
		t.Fatalf("did not expect error key in successful descriptor")
	}

	for _, key := range []string{"width", "height", "palette", "histogram", "dimensions", "format", "mode"} {
		if _, ok := badFields[key]; ok {
			t.Fatalf("did not expect key %q in failed descriptor", key)
		}
	}
	if _, ok := badFields["error"]; !ok {
		t.Fatalf("expected error key in failed descriptor")
	}
}
