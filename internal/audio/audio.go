// Package audio loads and plays the background track of a focus session
package audio

import (
	"context"
	"path/filepath"
	"strings"
)

// Format is the container format of an audio asset.
type Format string

const (
	OGG  Format = "ogg"
	MP3  Format = "mp3"
	FLAC Format = "flac"
	WAV  Format = "wav"
)

// Formats lists every supported format.
var Formats = []Format{OGG, MP3, FLAC, WAV}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, bool) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	for _, f := range Formats {
		if string(f) == ext {
			return f, true
		}
	}

	return "", false
}

// Asset is a playable audio file.
type Asset struct {
	ID     string
	Path   string
	Format Format
}

// Options controls how an asset is played.
type Options struct {
	Loop bool
}

// Handle refers to a loaded asset.
type Handle interface {
	Asset() Asset
}

// Engine plays assets. Stop and Unload must accept a nil Handle so that
// teardown can run even when Load never completed.
type Engine interface {
	Load(ctx context.Context, asset Asset, opts Options) (Handle, error)
	Stop(ctx context.Context, h Handle) error
	Unload(ctx context.Context, h Handle) error
}
