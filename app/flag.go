package app

import "github.com/urfave/cli/v2"

var (
	durationFlag = &cli.IntFlag{
		Name:    "duration",
		Aliases: []string{"d"},
		Usage:   "Session length in minutes: 30, 60, 90 or 120 (default: from config)",
	}

	trackFlag = &cli.StringFlag{
		Name:    "track",
		Aliases: []string{"t"},
		Usage:   "Background track: a name from the track list or a path to an mp3, ogg, flac or wav file",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:  "disable-notification",
		Usage: "Disable the system notification that appears after a session ends",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after the session ends",
	}

	premiumFlag = &cli.BoolFlag{
		Name:  "premium",
		Usage: "Enable premium features for the local profile. Use --premium=false to return to the free tier",
	}

	untilFlag = &cli.StringFlag{
		Name:  "until",
		Usage: "When premium access ends (e.g. 'in 30 days', '2026-12-31')",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}
)

func startFlags() []cli.Flag {
	return []cli.Flag{
		durationFlag,
		trackFlag,
		sessionCmdFlag,
		disableNotificationFlag,
	}
}
