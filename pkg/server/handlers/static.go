package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"net/http"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"

	"github.com/charlieegan3/image-gallery/pkg/utils"
)

//go:embed static/*
var staticContent embed.FS

func BuildCSSHandler(opts *Options) (string, func(http.ResponseWriter, *http.Request), error) {
	bs, err := staticContent.ReadFile("static/css/styles.css")
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate css: %s", err)
	}

	in := bytes.NewBuffer(bs)
	out := bytes.NewBuffer([]byte{})
	if opts.DevMode {
		out = in
	} else {
		m := minify.New()
		m.AddFunc("application/css", css.Minify)

		if err := m.Minify("application/css", out, in); err != nil {
			return "", nil, fmt.Errorf("failed to generate css: %s", err)
		}
	}

	etag := utils.CRC32Hash(out.Bytes())

	return etag, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		w.Header().Set("Content-Type", "text/css")
		w.Header().Set("ETag", etag)
		if !opts.DevMode {
			utils.SetCacheControl(w, "public, max-age=31622400")
		}

		_, err := w.Write(out.Bytes())
		if err != nil && opts.LoggerError != nil {
			opts.LoggerError.Println(err)
		}
	}, nil
}

func BuildJSHandler(opts *Options) (string, func(http.ResponseWriter, *http.Request), error) {
	bs, err := staticContent.ReadFile("static/js/script.js")
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate js: %s", err)
	}

	in := bytes.NewBuffer(bs)
	out := bytes.NewBuffer([]byte{})

	if opts.DevMode {
		out = in
	} else {
		m := minify.New()
		m.AddFunc("application/javascript", js.Minify)

		if err := m.Minify("application/javascript", out, in); err != nil {
			return "", nil, fmt.Errorf("failed to generate js: %s", err)
		}
	}

	etag := utils.CRC32Hash(out.Bytes())

	return etag, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		w.Header().Set("Content-Type", "application/javascript")
		w.Header().Set("ETag", etag)
		if !opts.DevMode {
			utils.SetCacheControl(w, "public, max-age=31622400")
		}

		_, err := w.Write(out.Bytes())
		if err != nil && opts.LoggerError != nil {
			opts.LoggerError.Println(err)
		}
	}, nil
}
