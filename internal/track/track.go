// Package track resolves the background tracks a focus session can play
package track

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"github.com/ayoisaiah/focuswatch/internal/apperr"
	"github.com/ayoisaiah/focuswatch/internal/audio"
	"github.com/ayoisaiah/focuswatch/internal/pathutil"
)

// ID identifies a track. A bare name refers to a file in the catalog
// directory; a name with an extension is a path to an audio file.
type ID string

var (
	// ErrNotFound means the ID does not resolve to a readable audio file.
	ErrNotFound = &apperr.Error{
		Message: "track not found: %s",
	}

	errUnsupportedFormat = &apperr.Error{
		Message: "invalid track format: %s (must be mp3, ogg, flac, or wav)",
	}
)

// Catalog is a directory of audio files.
type Catalog struct {
	dir string
}

// NewCatalog returns a catalog backed by dir. The directory does not need to
// exist.
func NewCatalog(dir string) *Catalog {
	return &Catalog{dir: dir}
}

// Dir returns the catalog directory.
func (c *Catalog) Dir() string {
	return c.dir
}

// List returns the IDs of the tracks in the catalog directory in natural
// order.
func (c *Catalog) List() ([]ID, error) {
	entries, err := os.ReadDir(c.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)

	var names []string

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		if _, ok := audio.FormatOf(e.Name()); !ok {
			continue
		}

		name := pathutil.StripExtension(e.Name())
		if seen[name] {
			continue
		}

		seen[name] = true

		names = append(names, name)
	}

	sort.Sort(natural.StringSlice(names))

	ids := make([]ID, len(names))
	for i, name := range names {
		ids[i] = ID(name)
	}

	return ids, nil
}

// Resolve maps id to a playable asset.
func (c *Catalog) Resolve(id ID) (audio.Asset, error) {
	name := strings.TrimSpace(string(id))
	if name == "" {
		return audio.Asset{}, ErrNotFound.Fmt(`""`)
	}

	if filepath.Ext(name) != "" {
		format, ok := audio.FormatOf(name)
		if !ok {
			return audio.Asset{}, errUnsupportedFormat.Fmt(name)
		}

		if !isFile(name) {
			return audio.Asset{}, ErrNotFound.Fmt(name)
		}

		return audio.Asset{
			ID:     name,
			Path:   name,
			Format: format,
		}, nil
	}

	for _, format := range audio.Formats {
		path := filepath.Join(c.dir, name+"."+string(format))

		if isFile(path) {
			return audio.Asset{
				ID:     name,
				Path:   path,
				Format: format,
			}, nil
		}
	}

	return audio.Asset{}, ErrNotFound.Fmt(name)
}

func isFile(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}
