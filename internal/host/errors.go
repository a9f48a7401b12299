package host

import "github.com/ayoisaiah/focuswatch/internal/apperr"

var (
	// ErrSessionActive is returned when a session is started while another
	// is still running in this process.
	ErrSessionActive = &apperr.Error{
		Message: "a focus session is already running",
	}

	// ErrNoSession is returned by commands that need a session when none
	// has been started.
	ErrNoSession = &apperr.Error{
		Message: "no focus session has been started",
	}
)
