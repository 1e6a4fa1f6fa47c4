package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/charlieegan3/image-gallery/pkg/gallery"
	"github.com/charlieegan3/image-gallery/pkg/utils"
)

func BuildImageListHandler(opts *Options) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := opts.Gallery.List()
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			_, err = w.Write([]byte(err.Error()))
			if err != nil && opts.LoggerError != nil {
				opts.LoggerError.Println(err)
			}
			return
		}

		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name)
		}

		w.Header().Set("Content-Type", "application/json")
		utils.SetCacheControl(w, "no-cache")

		if err := json.NewEncoder(w).Encode(names); err != nil && opts.LoggerError != nil {
			opts.LoggerError.Println(err)
		}
	}
}

func BuildMetadataHandler(opts *Options) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/api/metadata/")

		content, size, err := opts.Gallery.Read(name)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		descriptor := opts.Extractor.Extract(name, content, size)

		w.Header().Set("Content-Type", "application/json")
		utils.SetCacheControl(w, "public, max-age=3600")

		if err := json.NewEncoder(w).Encode(descriptor); err != nil && opts.LoggerError != nil {
			opts.LoggerError.Println(err)
		}
	}
}

func BuildImageHandler(opts *Options) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/image/")

		content, _, err := opts.Gallery.Read(name)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", gallery.ContentType(name))
		utils.SetCacheControl(w, "public, max-age=31536000")

		_, err = w.Write(content)
		if err != nil && opts.LoggerError != nil {
			opts.LoggerError.Println(err)
		}
	}
}

func BuildThumbnailHandler(opts *Options) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/thumbnail/")

		content, _, err := opts.Gallery.Read(name)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		if opts.Thumbnails != nil {
			thumb, err := opts.Thumbnails.Process(content)
			if err == nil {
				w.Header().Set("Content-Type", "image/jpeg")
				utils.SetCacheControl(w, "public, max-age=31536000")

				_, err = w.Write(thumb)
				if err != nil && opts.LoggerError != nil {
					opts.LoggerError.Println(err)
				}
				return
			}

			if opts.LoggerError != nil {
				opts.LoggerError.Printf("could not process thumbnail for %s: %v", name, err)
			}
		}

		// fall back to the original bytes
		w.Header().Set("Content-Type", gallery.ContentType(name))
		utils.SetCacheControl(w, "public, max-age=31536000")

		_, err = w.Write(content)
		if err != nil && opts.LoggerError != nil {
			opts.LoggerError.Println(err)
		}
	}
}
