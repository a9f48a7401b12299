package audio

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOf(t *testing.T) {
	testCases := []struct {
		path   string
		want   Format
		wantOK bool
	}{
		{path: "rain.ogg", want: OGG, wantOK: true},
		{path: "/tmp/Coffee Shop.MP3", want: MP3, wantOK: true},
		{path: "waves.flac", want: FLAC, wantOK: true},
		{path: "bell.wav", want: WAV, wantOK: true},
		{path: "notes.txt"},
		{path: "rain"},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			got, ok := FormatOf(tc.path)

			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSpeakerTeardownToleratesNilHandle(t *testing.T) {
	s := NewSpeaker()
	ctx := context.Background()

	assert.NoError(t, s.Stop(ctx, nil))
	assert.NoError(t, s.Unload(ctx, nil))
	assert.NoError(t, s.Unload(ctx, (*track)(nil)))

	s.Close()
}

func TestSpeakerLoadMissingFile(t *testing.T) {
	s := NewSpeaker()

	asset := Asset{
		ID:     "rain",
		Path:   filepath.Join(t.TempDir(), "rain.ogg"),
		Format: OGG,
	}

	h, err := s.Load(context.Background(), asset, Options{Loop: true})
	require.Error(t, err)
	assert.Nil(t, h)
	assert.ErrorIs(t, err, errOpenAsset)
}

func TestSpeakerLoadHonoursCancelledContext(t *testing.T) {
	s := NewSpeaker()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Load(ctx, Asset{ID: "rain"}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
