package audio

import "github.com/ayoisaiah/focuswatch/internal/apperr"

var (
	errOpenAsset = &apperr.Error{
		Message: "unable to open track %s",
	}

	errDecodeAsset = &apperr.Error{
		Message: "unable to decode track %s",
	}

	errUnsupportedFormat = &apperr.Error{
		Message: "track %s must be in mp3, ogg, flac, or wav format",
	}

	errSpeakerInit = &apperr.Error{
		Message: "unable to initialise the audio device",
	}
)
