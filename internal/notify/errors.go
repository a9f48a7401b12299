package notify

import "github.com/ayoisaiah/focuswatch/internal/apperr"

var (
	errParseCmd = &apperr.Error{
		Message: "unable to parse session_cmd option",
	}

	errRunCmd = &apperr.Error{
		Message: "session command %q failed",
	}
)
