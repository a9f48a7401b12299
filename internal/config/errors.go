package config

import "github.com/ayoisaiah/focuswatch/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errReadEnv = &apperr.Error{
		Message: "reading environment failed",
	}

	errPrompt = &apperr.Error{
		Message: "first-run prompt failed",
	}

	errInvalidDuration = &apperr.Error{
		Message: "session duration must be one of %v minutes, got %d",
	}

	errEmptyTrack = &apperr.Error{
		Message: "a session track is required",
	}

	errInvalidTrackFormat = &apperr.Error{
		Message: "invalid track format: %s (must be mp3, ogg, flac, or wav)",
	}

	errInvalidColor = &apperr.Error{
		Message: "%s color must be a valid hex color code (e.g. #FF0000), got %s",
	}
)
