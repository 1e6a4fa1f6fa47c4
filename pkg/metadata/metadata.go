package metadata

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/charlieegan3/image-gallery/pkg/decoder"
)

// Descriptor summarizes one image file for the gallery. Filename and the two
// size fields are always set. The decode-derived fields are set only when
// decoding succeeded; DecodeError is set only when it failed. Fields are
// omitted from JSON entirely when unset, never null.
type Descriptor struct {
	Filename      string `json:"filename"`
	SizeBytes     int64  `json:"size"`
	SizeFormatted string `json:"size_formatted"`

	Dimensions string     `json:"dimensions,omitempty"`
	Width      int        `json:"width,omitempty"`
	Height     int        `json:"height,omitempty"`
	Format     string     `json:"format,omitempty"`
	Mode       string     `json:"mode,omitempty"`
	Palette    []string   `json:"palette,omitempty"`
	Histogram  *Histogram `json:"histogram,omitempty"`

	Prominent []string          `json:"prominent,omitempty"`
	Exif      map[string]string `json:"exif,omitempty"`

	DecodeError string `json:"error,omitempty"`
}

// Histogram holds per-channel intensity counts normalized to [0,100] and
// downsampled to every 4th bucket, 64 values per channel.
type Histogram struct {
	R []int `json:"r"`
	G []int `json:"g"`
	B []int `json:"b"`
}

// Extractor derives descriptors from raw file bytes. It holds the decoding
// capability it was constructed with; a nil decoder is valid and limits
// descriptors to file-level fields.
type Extractor struct {
	decoder     decoder.Decoder
	paletteSize int
}

func NewExtractor(d decoder.Decoder, paletteSize int) *Extractor {
	if paletteSize <= 0 {
		paletteSize = 5
	}

	return &Extractor{
		decoder:     d,
		paletteSize: paletteSize,
	}
}

// Extract builds the descriptor for one file. It never fails: decode errors
// and any unexpected fault during extraction are folded into the descriptor's
// error field and the file-level fields are always populated.
func (e *Extractor) Extract(path string, content []byte, sizeBytes int64) (d *Descriptor) {
	d = &Descriptor{
		Filename:      filepath.Base(path),
		SizeBytes:     sizeBytes,
		SizeFormatted: FormatFileSize(sizeBytes),
	}

	if e.decoder == nil {
		return d
	}

	defer func() {
		if r := recover(); r != nil {
			*d = Descriptor{
				Filename:      d.Filename,
				SizeBytes:     d.SizeBytes,
				SizeFormatted: d.SizeFormatted,
				DecodeError:   fmt.Sprintf("metadata extraction failed: %v", r),
			}
		}
	}()

	img, err := e.decoder.Decode(bytes.NewReader(content))
	if err != nil {
		d.DecodeError = err.Error()

		return d
	}

	d.Width = img.Width
	d.Height = img.Height
	d.Dimensions = fmt.Sprintf("%d×%d", img.Width, img.Height)
	d.Format = img.Format
	d.Mode = img.Mode

	// two independent passes over the one decoded handle
	d.Palette = palette(img.Pixels, e.paletteSize)
	d.Histogram = histogram(img.Pixels)

	// clustering needs at least as many distinct colors as clusters
	if len(d.Palette) >= 3 {
		d.Prominent = prominentColors(img.Pixels)
	}
	d.Exif = exifTags(content)

	return d
}
