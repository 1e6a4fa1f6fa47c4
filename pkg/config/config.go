package config

import (
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   Server   `yaml:"server"`
	Gallery  Gallery  `yaml:"gallery"`
	Metadata Metadata `yaml:"metadata"`
}

type Server struct {
	Port     int    `yaml:"port"`
	Address  string `yaml:"address"`
	DevMode  bool   `yaml:"dev_mode"`
	AutoPort bool   `yaml:"auto_port"`

	LoggerError *log.Logger
	LoggerInfo  *log.Logger
}

type Gallery struct {
	Dir              string `yaml:"dir"`
	Thumbnails       bool   `yaml:"thumbnails"`
	ThumbnailMaxSize int    `yaml:"thumbnail_max_size"`
}

type Metadata struct {
	// Decoder selects the decoding capability: "standard" or "none".
	// "none" runs the gallery with file-level metadata only.
	Decoder     string `yaml:"decoder"`
	PaletteSize int    `yaml:"palette_size"`
}

func LoadConfig(rawConfig io.Reader) (*Config, error) {
	config := struct {
		Server struct {
			Port     int    `yaml:"port"`
			Address  string `yaml:"address"`
			DevMode  bool   `yaml:"dev_mode"`
			AutoPort bool   `yaml:"auto_port"`

			Log struct {
				Error string `yaml:"error"`
				Info  string `yaml:"info"`
			} `yaml:"log"`
		} `yaml:"server"`
		Gallery struct {
			Dir              string `yaml:"dir"`
			Thumbnails       bool   `yaml:"thumbnails"`
			ThumbnailMaxSize int    `yaml:"thumbnail_max_size"`
		} `yaml:"gallery"`
		Metadata struct {
			Decoder     string `yaml:"decoder"`
			PaletteSize int    `yaml:"palette_size"`
		} `yaml:"metadata"`
	}{}
	if err := yaml.NewDecoder(rawConfig).Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	var loggerError *log.Logger
	if config.Server.Log.Error == "stderr" {
		loggerError = log.New(os.Stderr, "", log.LstdFlags)
	}

	var loggerInfo *log.Logger
	if config.Server.Log.Info == "stdout" {
		loggerInfo = log.New(os.Stdout, "", log.LstdFlags)
	}

	galleryDir := config.Gallery.Dir
	if galleryDir == "" {
		galleryDir = "."
	}

	thumbnailMaxSize := config.Gallery.ThumbnailMaxSize
	if thumbnailMaxSize == 0 {
		thumbnailMaxSize = 800
	}

	decoder := config.Metadata.Decoder
	if decoder == "" {
		decoder = "standard"
	}

	paletteSize := config.Metadata.PaletteSize
	if paletteSize == 0 {
		paletteSize = 5
	}

	return &Config{
		Server: Server{
			Port:        config.Server.Port,
			Address:     config.Server.Address,
			DevMode:     config.Server.DevMode,
			AutoPort:    config.Server.AutoPort,
			LoggerError: loggerError,
			LoggerInfo:  loggerInfo,
		},
		Gallery: Gallery{
			Dir:              galleryDir,
			Thumbnails:       config.Gallery.Thumbnails,
			ThumbnailMaxSize: thumbnailMaxSize,
		},
		Metadata: Metadata{
			Decoder:     decoder,
			PaletteSize: paletteSize,
		},
	}, nil
}
