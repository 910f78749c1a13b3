package cue

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	played  []beep.Streamer
	cleared int
	closed  bool
}

func (f *fakeSink) Play(s beep.Streamer) { f.played = append(f.played, s) }
func (f *fakeSink) Clear()               { f.cleared++ }
func (f *fakeSink) Close()               { f.closed = true }

type beeps struct {
	calls []note
	mu    sync.Mutex
}

func (b *beeps) beep(freq float64, ms int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.calls = append(b.calls, note{freq, time.Duration(ms) * time.Millisecond})

	return nil
}

func drain(s beep.Streamer) int {
	var (
		n       int
		samples [512][2]float64
	)

	for {
		k, ok := s.Stream(samples[:])
		n += k

		if !ok || k == 0 {
			return n
		}
	}
}

func TestTone(t *testing.T) {
	s, err := tone(440, 100*time.Millisecond)
	require.NoError(t, err)

	assert.Equal(t, sampleRate.N(100*time.Millisecond), drain(s))
}

func TestPlayerUsesSpeaker(t *testing.T) {
	out := &fakeSink{}
	p := &Player{out: out, log: slog.Default()}

	p.PreCue()
	p.Pulse()
	p.CompletionPulse()

	require.Len(t, out.played, 3)

	want := sampleRate.N(preCueNotes[0].dur) + sampleRate.N(preCueNotes[1].dur)
	assert.Equal(t, want, drain(out.played[0]))
	assert.Equal(t, sampleRate.N(pulseNote.dur), drain(out.played[1]))

	p.Silence()
	assert.Equal(t, 1, out.cleared)

	p.Close()
	assert.True(t, out.closed)
}

func TestPlayerFallsBackToBeep(t *testing.T) {
	b := &beeps{}
	p := &Player{beep: b.beep, log: slog.Default()}

	p.Pulse()
	p.Silence()
	p.Close()

	assert.Equal(t, []note{pulseNote}, b.calls)
}

func TestNotify(t *testing.T) {
	var (
		mu    sync.Mutex
		shown []string
	)

	notify := func(title, msg string, _ any) error {
		mu.Lock()
		defer mu.Unlock()

		shown = append(shown, title+": "+msg)

		return nil
	}

	p := &Player{notify: notify, log: slog.Default()}
	p.Notify("Workout complete", "Push day")
	p.Close()
	assert.Empty(t, shown)

	p = &Player{notify: notify, log: slog.Default(), opts: Options{Notify: true}}
	p.Notify("Workout complete", "Push day")
	p.Close()
	assert.Equal(t, []string{"Workout complete: Push day"}, shown)
}

func TestLoadSound(t *testing.T) {
	dir := t.TempDir()

	t.Run("unsupported format", func(t *testing.T) {
		path := filepath.Join(dir, "whistle.aiff")
		require.NoError(t, os.WriteFile(path, []byte("FORM"), 0o600))

		_, err := loadSound(path)
		assert.ErrorIs(t, err, errInvalidSoundFormat)
	})

	t.Run("resamples wav", func(t *testing.T) {
		path := filepath.Join(dir, "chime.wav")

		f, err := os.Create(path)
		require.NoError(t, err)

		format := beep.Format{SampleRate: 22050, NumChannels: 1, Precision: 2}

		sine, err := generators.SineTone(format.SampleRate, 440)
		require.NoError(t, err)

		require.NoError(t, wav.Encode(f, beep.Take(2205, sine), format))
		require.NoError(t, f.Close())

		buf, err := loadSound(path)
		require.NoError(t, err)

		assert.Equal(t, sampleRate, buf.Format().SampleRate)
		assert.InDelta(t, 4410, buf.Len(), 10)
	})
}
