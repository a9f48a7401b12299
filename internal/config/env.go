package config

import "github.com/caarlos0/env/v11"

// EnvConfig holds settings read from environment variables.
type EnvConfig struct {
	Env          string `env:"FOCUSWATCH_ENV"`
	NoColor      string `env:"NO_COLOR"`
	FocusNoColor string `env:"FOCUSWATCH_NO_COLOR"`
	// UpdateNotifier enables the release check in the version printer.
	UpdateNotifier string `env:"FOCUSWATCH_UPDATE_NOTIFIER"`
	Debug          bool   `env:"FOCUSWATCH_DEBUG"`
}

// ColorDisabled reports whether either colour opt-out variable is set.
func (e EnvConfig) ColorDisabled() bool {
	return e.NoColor != "" || e.FocusNoColor != ""
}

// CheckForUpdates reports whether the release check is enabled.
func (e EnvConfig) CheckForUpdates() bool {
	return e.UpdateNotifier != ""
}

// LoadEnv parses the focuswatch environment variables.
func LoadEnv() (EnvConfig, error) {
	cfg, err := env.ParseAs[EnvConfig]()
	if err != nil {
		return EnvConfig{}, errReadEnv.Wrap(err)
	}

	return cfg, nil
}

// WithEnv returns an Option that loads settings from the environment.
func WithEnv() Option {
	return func(c *Config) error {
		e, err := LoadEnv()
		if err != nil {
			return err
		}

		c.Env = e

		return nil
	}
}
