package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
┌─┐┌─┐┌─┐┬ ┬┌─┐┬ ┬┌─┐┌┬┐┌─┐┬ ┬
├┤ │ ││  │ │└─┐│││├─┤ │ │  ├─┤
└  └─┘└─┘└─┘└─┘└┴┘┴ ┴ ┴ └─┘┴ ┴`

// PromptOptions holds the user's responses to the first-run prompt.
type PromptOptions struct {
	Track    string
	Duration int
}

// WithPromptConfig returns an Option that asks for the session defaults when
// no config file exists at configPath yet. tracks are the choices offered for
// the default track; the prompt for it is skipped when there are none.
func WithPromptConfig(configPath string, tracks []string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		opts, err := promptUser(tracks)
		if err != nil {
			return errPrompt.Wrap(err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// DurationOptions returns the selectable session lengths as form options.
func DurationOptions(selected int) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, len(Durations))

	for _, d := range Durations {
		opts = append(
			opts,
			huh.NewOption(fmt.Sprintf("%d minutes", d), d).Selected(d == selected),
		)
	}

	return opts
}

// TrackOptions returns tracks as form options.
func TrackOptions(tracks []string, selected string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(tracks))

	for _, t := range tracks {
		opts = append(opts, huh.NewOption(t, t).Selected(t == selected))
	}

	return opts
}

func promptUser(tracks []string) (PromptOptions, error) {
	opts := PromptOptions{
		Duration: defaultDuration,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure focuswatch for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'focuswatch edit-config' to change any settings.`, " ").
		Render()

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Default session length").
				Options(DurationOptions(defaultDuration)...).
				Value(&opts.Duration),
		),
	}

	if len(tracks) > 0 {
		opts.Track = tracks[0]

		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default background track").
				Options(TrackOptions(tracks, defaultTrack)...).
				Value(&opts.Track),
		))
	}

	if err := huh.NewForm(groups...).Run(); err != nil {
		return opts, err
	}

	return opts, nil
}

func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Session.Duration = opts.Duration
	c.Session.Track = opts.Track
}
