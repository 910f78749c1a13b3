package cue

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/homegym/spotter/internal/apperr"
	"github.com/homegym/spotter/internal/models"
)

var errInvalidSoundFormat = &apperr.Error{
	Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
}

// loadSound decodes the sound file at path into memory, resampled to the
// speaker's sample rate.
func loadSound(path string) (*beep.Buffer, error) {
	if !models.IsSoundFile(path) {
		return nil, errInvalidSoundFormat.Fmt(filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		_ = f.Close()
		return nil, errInvalidSoundFormat.Fmt(filepath.Base(path))
	}

	if err != nil {
		_ = f.Close()
		return nil, err
	}

	defer stream.Close()

	var s beep.Streamer = stream
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, stream)
	}

	format.SampleRate = sampleRate

	buf := beep.NewBuffer(format)
	buf.Append(s)

	return buf, nil
}
