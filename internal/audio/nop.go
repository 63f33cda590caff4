package audio

import (
	"sync"
	"sync/atomic"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// Nop is a silent Player, used when audio is disabled.
type Nop struct {
	muted atomic.Bool
}

var _ Player = (*Nop)(nil)

func (n *Nop) Play(core.Cue)       {}
func (n *Nop) Muted() bool         { return n.muted.Load() }
func (n *Nop) SetMuted(muted bool) { n.muted.Store(muted) }
func (n *Nop) Close()              {}

func (n *Nop) ToggleMute() bool {
	m := !n.muted.Load()
	n.muted.Store(m)
	return m
}

// Recorder remembers every cue it is asked to play while unmuted.
type Recorder struct {
	mu    sync.Mutex
	cues  []core.Cue
	muted bool
}

var _ Player = (*Recorder)(nil)

// Play records the cue.
func (r *Recorder) Play(c core.Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.muted {
		r.cues = append(r.cues, c)
	}
}

// Cues returns a copy of the recorded cues.
func (r *Recorder) Cues() []core.Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]core.Cue(nil), r.cues...)
}

// Count returns how many times c was played.
func (r *Recorder) Count(c core.Cue) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

// Reset forgets recorded cues.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.cues = nil
	r.mu.Unlock()
}

func (r *Recorder) Muted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.muted
}

func (r *Recorder) SetMuted(muted bool) {
	r.mu.Lock()
	r.muted = muted
	r.mu.Unlock()
}

func (r *Recorder) ToggleMute() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.muted = !r.muted
	return r.muted
}

func (r *Recorder) Close() {}
