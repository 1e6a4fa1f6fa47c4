package handlers

import (
	"log"

	"github.com/charlieegan3/image-gallery/pkg/gallery"
	"github.com/charlieegan3/image-gallery/pkg/metadata"
	"github.com/charlieegan3/image-gallery/pkg/thumbnail"
)

type Options struct {
	DevMode    bool
	EtagScript string
	EtagStyles string

	LoggerError *log.Logger
	LoggerInfo  *log.Logger

	Gallery   *gallery.Store
	Extractor *metadata.Extractor

	// Thumbnails is nil when grid thumbnails are disabled; the thumbnail
	// endpoint then serves original bytes.
	Thumbnails *thumbnail.Processor
}
