// Package cue plays the audible rest cues and the completion notification
package cue

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const sampleRate = beep.SampleRate(44100)

type note struct {
	freq float64
	dur  time.Duration
}

var (
	preCueNotes     = []note{{880, 150 * time.Millisecond}, {1320, 200 * time.Millisecond}}
	pulseNote       = note{660, 120 * time.Millisecond}
	completionNotes = []note{{990, 600 * time.Millisecond}}
)

// Options configures a Player.
type Options struct {
	Logger *slog.Logger
	// PreCueSound is an optional mp3, ogg, flac or wav file played instead of
	// the built-in pre-cue chime.
	PreCueSound string
	// Volume is relative to the source in powers of two. 0 leaves it
	// unchanged.
	Volume float64
	// Notify enables the desktop notification on completion.
	Notify bool
}

// sink is where the player sends its audio.
type sink interface {
	Play(s beep.Streamer)
	Clear()
	Close()
}

type speakerSink struct{}

func (speakerSink) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerSink) Clear()               { speaker.Clear() }
func (speakerSink) Close()               { speaker.Close() }

// Player implements session.Cuer. Every cue is played asynchronously so
// callers never block on audio, and failures are only logged.
type Player struct {
	out    sink
	beep   func(freq float64, ms int) error
	notify func(title, msg string, icon any) error
	log    *slog.Logger
	preCue *beep.Buffer
	opts   Options
	wg     sync.WaitGroup
}

// New initialises the speaker. When no audio device is available the player
// falls back to the system beep.
func New(opts Options) *Player {
	p := &Player{
		opts:   opts,
		log:    opts.Logger,
		beep:   beeep.Beep,
		notify: beeep.Notify,
	}

	if p.log == nil {
		p.log = slog.Default()
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err != nil {
		p.log.Warn("audio unavailable, using system beep", slog.Any("error", err))
	} else {
		p.out = speakerSink{}
	}

	if opts.PreCueSound != "" {
		buf, err := loadSound(opts.PreCueSound)
		if err != nil {
			p.log.Error(
				"unable to load pre-cue sound",
				slog.String("path", opts.PreCueSound),
				slog.Any("error", err),
			)
		} else {
			p.preCue = buf
		}
	}

	return p
}

// PreCue plays the get-ready chime.
func (p *Player) PreCue() {
	if p.preCue != nil && p.out != nil {
		p.play(p.preCue.Streamer(0, p.preCue.Len()))
		return
	}

	p.playNotes(preCueNotes...)
}

// Pulse plays one short countdown tick.
func (p *Player) Pulse() {
	p.playNotes(pulseNote)
}

// CompletionPulse plays the long tone that ends a rest period.
func (p *Player) CompletionPulse() {
	p.playNotes(completionNotes...)
}

// Silence stops every sound that is still playing.
func (p *Player) Silence() {
	if p.out != nil {
		p.out.Clear()
	}
}

// Notify shows a desktop notification if enabled.
func (p *Player) Notify(title, msg string) {
	if !p.opts.Notify {
		return
	}

	p.wg.Add(1)

	go func() {
		defer p.wg.Done()

		if err := p.notify(title, msg, ""); err != nil {
			p.log.Error("unable to display notification", slog.Any("error", err))
		}
	}()
}

// Close waits for pending fallback beeps and notifications and releases the
// audio device.
func (p *Player) Close() {
	p.wg.Wait()

	if p.out != nil {
		p.out.Close()
	}
}

func (p *Player) playNotes(notes ...note) {
	if p.out == nil {
		p.wg.Add(1)

		go func() {
			defer p.wg.Done()

			for _, n := range notes {
				if err := p.beep(n.freq, int(n.dur.Milliseconds())); err != nil {
					p.log.Error("unable to beep", slog.Any("error", err))
					return
				}
			}
		}()

		return
	}

	streams := make([]beep.Streamer, 0, len(notes))

	for _, n := range notes {
		s, err := tone(n.freq, n.dur)
		if err != nil {
			p.log.Error("unable to generate tone", slog.Any("error", err))
			return
		}

		streams = append(streams, s)
	}

	p.play(beep.Seq(streams...))
}

func (p *Player) play(s beep.Streamer) {
	if p.opts.Volume != 0 {
		s = &effects.Volume{
			Streamer: s,
			Base:     2,
			Volume:   p.opts.Volume,
			Silent:   math.IsInf(p.opts.Volume, -1),
		}
	}

	p.out.Play(s)
}

// tone returns a sine wave of the given frequency that lasts d.
func tone(freq float64, d time.Duration) (beep.Streamer, error) {
	s, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}

	return beep.Take(sampleRate.N(d), s), nil
}
