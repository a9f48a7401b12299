package app

import "github.com/ayoisaiah/focuswatch/internal/apperr"

var (
	errEditor = &apperr.Error{
		Message: "unable to run editor %q",
	}

	errUpdateCheck = &apperr.Error{
		Message: "checking for updates failed",
	}

	errNoRelease = &apperr.Error{
		Message: "no release tag at %s",
	}
)
