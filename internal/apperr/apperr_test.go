package apperr

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTemplate = &Error{
	Message: "%s must be positive",
}

func TestFmtKeepsIdentity(t *testing.T) {
	err := errTemplate.Fmt("duration")

	assert.Equal(t, "duration must be positive", err.Error())
	assert.ErrorIs(t, err, errTemplate)
	assert.NotErrorIs(t, err, &Error{Message: "%s must be positive"})
}

func TestWrap(t *testing.T) {
	err := errTemplate.Fmt("volume").Wrap(io.EOF)

	assert.Equal(t, "volume must be positive: EOF", err.Error())
	assert.ErrorIs(t, err, errTemplate)
	assert.ErrorIs(t, err, io.EOF)

	var appErr *Error
	assert.True(t, errors.As(err, &appErr))
}
