package profile

import "github.com/ayoisaiah/focuswatch/internal/apperr"

var (
	// ErrAlreadyRunning is returned when another process holds the profile
	// database.
	ErrAlreadyRunning = &apperr.Error{
		Message: "is focuswatch already running? Only one instance can be active at a time",
	}

	errOpenDB = &apperr.Error{
		Message: "unable to open profile database at %s",
	}

	errCorruptProfile = &apperr.Error{
		Message: "stored profile could not be decoded",
	}

	errInvalidExpiry = &apperr.Error{
		Message: "unable to understand premium expiry %q",
	}

	errExpiryInPast = &apperr.Error{
		Message: "premium expiry must be in the future, got %s",
	}
)
