package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
)

//go:embed templates/*
var Templates embed.FS

func BuildIndexHandler(opts *Options) (func(http.ResponseWriter, *http.Request), error) {
	tmpl, err := template.ParseFS(
		Templates,
		"templates/index.html",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %s", err)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" && r.URL.Path != "/index.html" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		buf := bytes.NewBuffer([]byte{})

		err := tmpl.Execute(buf, struct {
			Opts *Options
		}{
			Opts: opts,
		})
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			_, err = w.Write([]byte(err.Error()))
			if err != nil && opts.LoggerError != nil {
				opts.LoggerError.Println(err)
			}
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		_, err = io.Copy(w, buf)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			_, err = w.Write([]byte(err.Error()))
			if err != nil && opts.LoggerError != nil {
				opts.LoggerError.Println(err)
			}
			return
		}
	}, nil
}
