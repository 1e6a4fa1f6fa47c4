package thumbnail

import (
	"fmt"

	"github.com/davidbyttow/govips/v2/vips"
)

// Processor renders grid thumbnails: images are downscaled so their longest
// side fits MaxSize and re-exported as JPEG. The caller falls back to the
// original bytes when processing fails.
type Processor struct {
	MaxSize int
}

func NewProcessor(maxSize int) (*Processor, error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("invalid max size: %d", maxSize)
	}

	vips.LoggingSettings(func(messageDomain string, messageLevel vips.LogLevel, message string) {}, vips.LogLevelCritical)
	vips.Startup(nil)

	return &Processor{MaxSize: maxSize}, nil
}

func (p *Processor) Close() {
	vips.Shutdown()
}

func (p *Processor) Process(content []byte) ([]byte, error) {
	image, err := vips.NewImageFromBuffer(content)
	if err != nil {
		return nil, fmt.Errorf("could not load image: %w", err)
	}
	defer image.Close()

	if err := image.AutoRotate(); err != nil {
		return nil, fmt.Errorf("could not auto-rotate image: %w", err)
	}

	width := image.Width()
	height := image.Height()

	longestSide := width
	if height > width {
		longestSide = height
	}

	if longestSide > p.MaxSize {
		scale := float64(p.MaxSize) / float64(longestSide)
		if err := image.Resize(scale, vips.KernelLanczos3); err != nil {
			return nil, fmt.Errorf("could not resize image: %w", err)
		}
	}

	exportParams := vips.NewDefaultJPEGExportParams()
	thumbnailBytes, _, err := image.Export(exportParams)
	if err != nil {
		return nil, fmt.Errorf("could not export thumbnail: %w", err)
	}

	return thumbnailBytes, nil
}
