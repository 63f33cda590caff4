// Package audio plays the arcade's sound cues.
//
// Cues are synthesized on the fly with beep and mixed into a single speaker
// stream. Audio is strictly fire-and-forget: when the device is missing the
// player drops to silent mode and the games never notice.
package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)

	// DefaultVolume is the linear gain applied to every cue.
	DefaultVolume = 0.3
)

// Player is a core.CuePlayer with a mute toggle.
type Player interface {
	core.CuePlayer
	Muted() bool
	SetMuted(muted bool)
	ToggleMute() bool
	Close()
}

// BeepPlayer plays cues through the system speaker.
type BeepPlayer struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	ready  bool
	volume float64
	muted  atomic.Bool
	logger *log.Logger
}

var _ Player = (*BeepPlayer)(nil)

// NewBeepPlayer initializes the speaker. If that fails the player is still
// usable but silent; the failure is logged once.
func NewBeepPlayer(logger *log.Logger) *BeepPlayer {
	if logger == nil {
		logger = log.Default()
	}
	p := &BeepPlayer{
		mixer:  &beep.Mixer{},
		volume: DefaultVolume,
		logger: logger.WithPrefix("audio"),
	}

	if err := initSpeaker(); err != nil {
		p.logger.Warn("audio unavailable, continuing silently", "error", err)
		return p
	}
	speaker.Play(p.mixer)
	p.ready = true
	return p
}

// initSpeaker converts a panic from the audio backend into an error.
func initSpeaker() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("speaker init panicked: %v", r)
		}
	}()
	return speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond))
}

// Play queues a cue. It never blocks on the audio device and never fails.
func (p *BeepPlayer) Play(c core.Cue) {
	if p.muted.Load() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			p.logger.Warn("cue failed", "cue", c, "error", r)
		}
	}()

	s := Synthesize(c, p.volume, sampleRate)
	if s == nil {
		p.logger.Debug("no sound for cue", "cue", c)
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	p.mixer.Add(s)
}

// SetVolume sets the linear gain, clamped to [0, 1].
func (p *BeepPlayer) SetVolume(v float64) {
	p.mu.Lock()
	p.volume = core.ClampF(v, 0, 1)
	p.mu.Unlock()
}

// Muted reports whether cues are suppressed.
func (p *BeepPlayer) Muted() bool {
	return p.muted.Load()
}

// SetMuted suppresses or restores cues.
func (p *BeepPlayer) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// ToggleMute flips the mute state and returns the new value.
func (p *BeepPlayer) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Close stops all sounds.
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.ready = false
}
