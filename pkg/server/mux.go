package server

import (
	"fmt"
	"net/http"

	"github.com/charlieegan3/image-gallery/pkg/server/handlers"
)

func newMux(opts *handlers.Options) (*http.ServeMux, error) {
	mux := http.NewServeMux()

	stylesEtag, stylesHandler, err := handlers.BuildCSSHandler(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build styles handler: %s", err)
	}

	scriptEtag, scriptHandler, err := handlers.BuildJSHandler(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build script handler: %s", err)
	}

	opts.EtagStyles = stylesEtag
	opts.EtagScript = scriptEtag

	indexHandler, err := handlers.BuildIndexHandler(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build index handler: %s", err)
	}

	mux.Handle("/api/images", http.HandlerFunc(handlers.BuildImageListHandler(opts)))
	mux.Handle("/api/metadata/", http.HandlerFunc(handlers.BuildMetadataHandler(opts)))
	mux.Handle("/image/", http.HandlerFunc(handlers.BuildImageHandler(opts)))
	mux.Handle("/thumbnail/", http.HandlerFunc(handlers.BuildThumbnailHandler(opts)))
	mux.Handle("/styles.css", http.HandlerFunc(stylesHandler))
	mux.Handle("/script.js", http.HandlerFunc(scriptHandler))
	mux.Handle("/", http.HandlerFunc(indexHandler))

	return mux, nil
}
