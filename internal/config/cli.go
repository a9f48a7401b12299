package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Track         string
	SessionCmd    string
	Duration      int
	DurationSet   bool
	TrackSet      bool
	DisableNotify bool
}

// WithCLIConfig returns an Option that applies command-line flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Duration:      ctx.Int("duration"),
			DurationSet:   ctx.IsSet("duration"),
			Track:         ctx.String("track"),
			TrackSet:      ctx.IsSet("track"),
			SessionCmd:    ctx.String("session-cmd"),
			DisableNotify: ctx.Bool("disable-notification"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.DurationSet {
		c.Session.Duration = opts.Duration
	}

	if opts.TrackSet {
		c.Session.Track = opts.Track
	}

	c.Session.Preselected = opts.DurationSet && opts.TrackSet

	if opts.SessionCmd != "" {
		c.Session.Cmd = opts.SessionCmd
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}
}
