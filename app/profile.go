package app

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focuswatch/internal/config"
	"github.com/ayoisaiah/focuswatch/internal/pathutil"
	"github.com/ayoisaiah/focuswatch/internal/profile"
	"github.com/ayoisaiah/focuswatch/internal/ui"
)

type profileView struct {
	PremiumUntil *time.Time `json:"premium_until,omitempty"`
	Tier         string     `json:"tier"`
}

func describeProfile(p profile.Profile, now time.Time) string {
	s := "Tier: " + ui.Tier(p.Tier(now))

	switch {
	case p.IsPremium(now) && p.PremiumUntil != nil:
		s += fmt.Sprintf(" (until %s)", p.PremiumUntil.Format("Jan 02, 2006 03:04 PM"))
	case p.Premium && p.PremiumUntil != nil:
		s += fmt.Sprintf(" (premium expired %s)", p.PremiumUntil.Format("Jan 02, 2006"))
	}

	return s
}

// profileShowAction prints the tier of the local profile.
func profileShowAction(ctx *cli.Context) error {
	store, err := profile.Open(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer store.Close()

	p, err := store.Load()
	if err != nil {
		return err
	}

	now := time.Now()

	if ctx.Bool("json") {
		return printJSON(config.Stdout, profileView{
			Tier:         p.Tier(now),
			PremiumUntil: p.PremiumUntil,
		})
	}

	_, err = fmt.Fprintln(config.Stdout, describeProfile(p, now))

	return err
}

// applyProfileFlags updates p from the flags of the profile set command.
func applyProfileFlags(ctx *cli.Context, p profile.Profile, now time.Time) (profile.Profile, error) {
	if ctx.IsSet("premium") {
		p.Premium = ctx.Bool("premium")
		p.PremiumUntil = nil
	}

	if until := ctx.String("until"); until != "" {
		t, err := profile.ParseExpiry(until, now)
		if err != nil {
			return p, err
		}

		p.Premium = true
		p.PremiumUntil = &t
	}

	return p, nil
}

// profileSetAction changes the tier of the local profile.
func profileSetAction(ctx *cli.Context) error {
	store, err := profile.Open(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer store.Close()

	p, err := store.Load()
	if err != nil {
		return err
	}

	now := time.Now()

	p, err = applyProfileFlags(ctx, p, now)
	if err != nil {
		return err
	}

	if err := store.Save(p); err != nil {
		return err
	}

	_, err = fmt.Fprintln(config.Stdout, describeProfile(p, now))

	return err
}
