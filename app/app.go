// Package app is the focuswatch command-line interface.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focuswatch/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the focuswatch app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "focuswatch",
		Usage: `
		focuswatch runs timed focus sessions in the terminal with a looping
		background track. Free-tier sessions fail if you leave the terminal for
		more than 10 seconds.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "start",
				Usage:  "Start a focus session (default command)",
				Flags:  startFlags(),
				Action: startAction,
			},
			{
				Name:   "tracks",
				Usage:  "List the background tracks in the track directory",
				Flags:  []cli.Flag{jsonFlag},
				Action: tracksAction,
			},
			{
				Name:  "profile",
				Usage: "Show or change the account tier of the local profile",
				Subcommands: []*cli.Command{
					{
						Name:   "show",
						Usage:  "Print the current tier",
						Flags:  []cli.Flag{jsonFlag},
						Action: profileShowAction,
					},
					{
						Name:   "set",
						Usage:  "Change the tier",
						Flags:  []cli.Flag{premiumFlag, untilFlag},
						Action: profileSetAction,
					},
				},
				Action: profileShowAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the running session",
				Action: statusAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags:  append(startFlags(), noColorFlag),
		Action: startAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
