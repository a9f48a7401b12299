package session

import "github.com/ayoisaiah/focuswatch/internal/apperr"

var (
	// ErrInvalidDuration is returned by Begin for a non-positive duration.
	ErrInvalidDuration = &apperr.Error{
		Message: "session duration must be greater than zero, got %d seconds",
	}

	// ErrTrackUnavailable is returned by Begin when the track cannot be
	// resolved or loaded. The session is failed when this happens.
	ErrTrackUnavailable = &apperr.Error{
		Message: "track unavailable: %s",
	}

	// ErrSkipNotAllowed is the rejection returned to free-tier users who
	// try to skip a session.
	ErrSkipNotAllowed = &apperr.Error{
		Message: "skipping a session requires a premium account",
	}

	// ErrAlreadyBegun is returned when Begin is called twice on the same
	// controller.
	ErrAlreadyBegun = &apperr.Error{
		Message: "session has already begun",
	}

	errUnknownPhase = &apperr.Error{
		Message: "unknown session phase: %q",
	}

	errTeardownPanic = &apperr.Error{
		Message: "audio teardown panicked: %v",
	}
)
