package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/charlieegan3/image-gallery/pkg/config"
	"github.com/charlieegan3/image-gallery/pkg/decoder"
	"github.com/charlieegan3/image-gallery/pkg/gallery"
	"github.com/charlieegan3/image-gallery/pkg/metadata"
	"github.com/charlieegan3/image-gallery/pkg/server/handlers"
	"github.com/charlieegan3/image-gallery/pkg/thumbnail"
	"github.com/charlieegan3/image-gallery/pkg/utils"
)

func NewServer(cfg *config.Config) (Server, error) {
	var dec decoder.Decoder

	switch cfg.Metadata.Decoder {
	case "standard":
		dec = &decoder.Standard{}
	case "none":
		dec = nil
	default:
		return Server{}, fmt.Errorf("unknown decoder: %q", cfg.Metadata.Decoder)
	}

	var thumbs *thumbnail.Processor
	if cfg.Gallery.Thumbnails {
		var err error

		thumbs, err = thumbnail.NewProcessor(cfg.Gallery.ThumbnailMaxSize)
		if err != nil {
			return Server{}, fmt.Errorf("failed to create thumbnail processor: %w", err)
		}
	}

	return Server{
		cfg:       cfg,
		store:     gallery.NewStore(cfg.Gallery.Dir),
		extractor: metadata.NewExtractor(dec, cfg.Metadata.PaletteSize),
		thumbs:    thumbs,
	}, nil
}

type Server struct {
	cfg *config.Config

	store     *gallery.Store
	extractor *metadata.Extractor
	thumbs    *thumbnail.Processor

	port       int
	httpServer *http.Server
}

func (s *Server) Start(ctx context.Context) error {
	mux, err := newMux(&handlers.Options{
		DevMode:     s.cfg.Server.DevMode,
		LoggerError: s.cfg.Server.LoggerError,
		LoggerInfo:  s.cfg.Server.LoggerInfo,
		Gallery:     s.store,
		Extractor:   s.extractor,
		Thumbnails:  s.thumbs,
	})
	if err != nil {
		return fmt.Errorf("failed to create mux: %w", err)
	}

	s.port = s.cfg.Server.Port
	if s.cfg.Server.AutoPort {
		s.port = findAvailablePort(s.cfg.Server.Address, s.port)
	}

	s.httpServer = &http.Server{
		Addr: fmt.Sprintf(
			"%s:%d",
			s.cfg.Server.Address,
			s.port,
		),
		Handler: mux,
	}

	if logger := s.cfg.Server.LoggerInfo; logger != nil {
		logger.Printf(
			"Serving gallery of %s on http://%s:%d\n",
			s.cfg.Gallery.Dir,
			utils.LocalIP(),
			s.port,
		)
	}

	go func() {
		<-ctx.Done()
		err = s.httpServer.Shutdown(ctx)
		if err != nil && s.cfg.Server.LoggerError != nil {
			s.cfg.Server.LoggerError.Println("failed to shutdown", err)
		}
	}()

	go func() {
		err = s.httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed && s.cfg.Server.LoggerError != nil {
			s.cfg.Server.LoggerError.Println("failed to listen and serve", err)
		}
	}()

	return nil
}

// Port returns the port the server bound to, which can differ from the
// configured one when auto_port is enabled.
func (s *Server) Port() int {
	return s.port
}

func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer != nil {
		err := s.httpServer.Shutdown(ctx)
		if err != nil {
			return err
		}
	}

	s.httpServer = nil

	if s.thumbs != nil {
		s.thumbs.Close()
	}

	return nil
}
