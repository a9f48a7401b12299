package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/focuswatch/internal/osutil"
)

const (
	keySessionDuration      = "session.duration"
	keySessionTrack         = "session.track"
	keySessionCmd           = "session.cmd"
	keyNotificationsEnabled = "notifications.enabled"
	keyDisplayColor         = "display.color"
	keyDisplayGraceColor    = "display.grace_color"
	keyDarkTheme            = "display.dark_theme"
)

const (
	defaultDuration   = 60
	defaultTrack      = "rain"
	defaultColor      = "#B0DB43"
	defaultGraceColor = "#E76F51"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. A missing file is created with the defaults.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		c.Path = configPath

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return errReadConfig.Wrap(err)
		}

		err = os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission)
		if err != nil {
			return errWriteConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper registers the defaults. Values already present on c, such as
// the answers to the first-run prompt, take precedence.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keySessionDuration, defaultDuration)
	v.SetDefault(keySessionTrack, defaultTrack)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyDisplayColor, defaultColor)
	v.SetDefault(keyDisplayGraceColor, defaultGraceColor)
	v.SetDefault(keyDarkTheme, true)

	if c.Session.Duration != 0 {
		v.Set(keySessionDuration, c.Session.Duration)
	}

	if c.Session.Track != "" {
		v.Set(keySessionTrack, c.Session.Track)
	}
}

func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
