package config

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/ayoisaiah/focuswatch/internal/audio"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if !slices.Contains(Durations, c.Session.Duration) {
		return errInvalidDuration.Fmt(Durations, c.Session.Duration)
	}

	if strings.TrimSpace(c.Session.Track) == "" {
		return errEmptyTrack
	}

	if ext := filepath.Ext(c.Session.Track); ext != "" {
		if _, ok := audio.FormatOf(c.Session.Track); !ok {
			return errInvalidTrackFormat.Fmt(c.Session.Track)
		}
	}

	colors := map[string]string{
		"display": c.Display.Color,
		"grace":   c.Display.GraceColor,
	}

	for _, name := range []string{"display", "grace"} {
		if !hexColorRegex.MatchString(colors[name]) {
			return errInvalidColor.Fmt(name, colors[name])
		}
	}

	return nil
}
