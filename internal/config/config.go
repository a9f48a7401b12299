// Package config loads focuswatch settings from the config file, the
// environment and the command line.
package config

import (
	"io"
	"os"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Display       DisplayConfig      `mapstructure:"display"`
		Session       SessionConfig      `mapstructure:"session"`
		Env           EnvConfig          `mapstructure:"-"`
		Path          string             `mapstructure:"-"`
		Notifications NotificationConfig `mapstructure:"notifications"`
	}

	// SessionConfig holds the defaults used to start a session.
	SessionConfig struct {
		Track string `mapstructure:"track"`
		Cmd   string `mapstructure:"cmd"`
		// Duration is in minutes.
		Duration int `mapstructure:"duration"`
		// Preselected is set when both the duration and the track came from
		// command-line flags, so there is nothing left to ask the user.
		Preselected bool `mapstructure:"-"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		Color      string `mapstructure:"color"`
		GraceColor string `mapstructure:"grace_color"`
		DarkTheme  bool   `mapstructure:"dark_theme"`
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

// Durations lists the session lengths, in minutes, a user may pick.
var Durations = []int{30, 60, 90, 120}

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies opts in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// DurationSeconds returns the configured session length in seconds.
func (c *Config) DurationSeconds() int {
	return c.Session.Duration * 60
}
