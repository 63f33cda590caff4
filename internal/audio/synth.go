package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// Wave defines oscillator wave shapes.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// sweep is an oscillator whose frequency moves exponentially from start to
// end over its duration, like an exponential ramp on a web audio oscillator.
type sweep struct {
	wave       Wave
	start, end float64
	phase      float64
	pos, total int
	rate       beep.SampleRate
}

func newSweep(wave Wave, start, end float64, d time.Duration, rate beep.SampleRate) *sweep {
	return &sweep{
		wave:  wave,
		start: start,
		end:   end,
		total: rate.N(d),
		rate:  rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}

		var v float64
		switch s.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			if s.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case WaveSaw:
			v = 2 * (s.phase - 0.5)
		case WaveTriangle:
			v = 4*math.Abs(s.phase-0.5) - 1
		}

		// Linear fade-out so cues end without a click.
		v *= 1 - float64(s.pos)/float64(s.total)
		samples[i][0] = v
		samples[i][1] = v

		t := float64(s.pos) / float64(s.total)
		freq := s.start * math.Pow(s.end/s.start, t)
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// withVolume scales a stream by a linear gain.
// math.Log2(0) is -Inf, so zero gain is expressed as silence.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Synthesize builds the streamer for a cue at the given gain.
func Synthesize(c core.Cue, gain float64, rate beep.SampleRate) beep.Streamer {
	switch c {
	case core.CueJump:
		return withVolume(newSweep(WaveSine, 300, 600, 100*time.Millisecond, rate), gain)
	case core.CueBounce:
		return withVolume(newSweep(WaveSine, 440, 520, 60*time.Millisecond, rate), gain)
	case core.CueBrick:
		return withVolume(newSweep(WaveSquare, 660, 880, 60*time.Millisecond, rate), gain*0.6)
	case core.CueScore:
		return withVolume(newSweep(WaveTriangle, 800, 800, 50*time.Millisecond, rate), gain*0.5)
	case core.CueLifeLost, core.CueGameOver:
		return withVolume(newSweep(WaveSaw, 400, 100, 500*time.Millisecond, rate), gain)
	case core.CueLevelUp:
		return withVolume(beep.Seq(
			newSweep(WaveTriangle, 523.25, 523.25, 90*time.Millisecond, rate),
			newSweep(WaveTriangle, 659.25, 659.25, 90*time.Millisecond, rate),
			newSweep(WaveTriangle, 783.99, 783.99, 160*time.Millisecond, rate),
		), gain)
	default:
		return nil
	}
}
