package audio

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	bufferSize      = 10
	resampleQuality = 4
)

type track struct {
	stream beep.StreamSeekCloser
	ctrl   *beep.Ctrl
	file   *os.File
	asset  Asset
}

func (t *track) Asset() Asset {
	return t.asset
}

// Speaker is an Engine that plays through the default audio device. The
// device is initialised with the sample rate of the first asset loaded; later
// assets are resampled to match it.
type Speaker struct {
	sampleRate beep.SampleRate
	mu         sync.Mutex
	ready      bool
}

// NewSpeaker returns an engine that initialises the audio device lazily.
func NewSpeaker() *Speaker {
	return &Speaker{}
}

func decode(f *os.File, format Format) (beep.StreamSeekCloser, beep.Format, error) {
	switch format {
	case OGG:
		return vorbis.Decode(f)
	case MP3:
		return mp3.Decode(f)
	case FLAC:
		return flac.Decode(f)
	case WAV:
		return wav.Decode(f)
	}

	return nil, beep.Format{}, errUnsupportedFormat.Fmt(f.Name())
}

// Load decodes the asset and starts playing it.
func (s *Speaker) Load(
	ctx context.Context,
	asset Asset,
	opts Options,
) (Handle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(asset.Path)
	if err != nil {
		return nil, errOpenAsset.Fmt(asset.ID).Wrap(err)
	}

	stream, format, err := decode(f, asset.Format)
	if err != nil {
		_ = f.Close()
		return nil, errDecodeAsset.Fmt(asset.ID).Wrap(err)
	}

	var streamer beep.Streamer = stream

	if opts.Loop {
		streamer, err = beep.Loop2(stream)
		if err != nil {
			_ = stream.Close()
			_ = f.Close()

			return nil, errDecodeAsset.Fmt(asset.ID).Wrap(err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		err = speaker.Init(
			format.SampleRate,
			format.SampleRate.N(time.Second/bufferSize),
		)
		if err != nil {
			_ = stream.Close()
			_ = f.Close()

			return nil, errSpeakerInit.Wrap(err)
		}

		s.sampleRate = format.SampleRate
		s.ready = true
	}

	if format.SampleRate != s.sampleRate {
		streamer = beep.Resample(
			resampleQuality,
			format.SampleRate,
			s.sampleRate,
			streamer,
		)
	}

	t := &track{
		asset:  asset,
		stream: stream,
		file:   f,
		ctrl:   &beep.Ctrl{Streamer: streamer},
	}

	speaker.Play(t.ctrl)

	return t, nil
}

// Stop silences the asset. The handle stays valid until Unload.
func (s *Speaker) Stop(_ context.Context, h Handle) error {
	t, ok := h.(*track)
	if !ok || t == nil {
		return nil
	}

	speaker.Lock()
	t.ctrl.Streamer = nil
	speaker.Unlock()

	return nil
}

// Unload stops the asset and releases its decoder and file.
func (s *Speaker) Unload(ctx context.Context, h Handle) error {
	t, ok := h.(*track)
	if !ok || t == nil {
		return nil
	}

	_ = s.Stop(ctx, h)

	err := t.stream.Close()

	ferr := t.file.Close()
	if ferr != nil && !errors.Is(ferr, os.ErrClosed) {
		err = errors.Join(err, ferr)
	}

	return err
}

// Close releases the audio device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return
	}

	speaker.Clear()
	speaker.Close()

	s.ready = false
}
