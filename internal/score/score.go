// Package score tracks a run's score and the persisted best per game.
//
// The sink is the only writer of the best score. Persistence failures are
// logged and otherwise ignored: a broken database never changes what the
// player sees during a run.
package score

import (
	"math"

	"github.com/charmbracelet/log"
)

// Persistence stores one best score per key.
// Load reports ok=false when nothing has been stored for the key yet.
type Persistence interface {
	Load(key string) (best float64, ok bool, err error)
	Save(key string, best float64) error
}

// Key returns the storage key for a game variant.
func Key(gameID string) string {
	return gameID + "_highScore"
}

// Sink accumulates points for the current run.
type Sink struct {
	key     string
	store   Persistence
	logger  *log.Logger
	current float64
	best    float64
}

// New creates a sink for a game and loads its best score.
// A nil store keeps everything in memory for the lifetime of the sink.
func New(gameID string, store Persistence, logger *log.Logger) *Sink {
	if logger == nil {
		logger = log.Default()
	}
	s := &Sink{
		key:    Key(gameID),
		store:  store,
		logger: logger.WithPrefix("score"),
	}
	s.Load()
	return s
}

// Load refreshes the best score from storage. On failure the in-memory best
// is kept.
func (s *Sink) Load() {
	if s.store == nil {
		return
	}
	best, ok, err := s.store.Load(s.key)
	if err != nil {
		s.logger.Warn("cannot load high score", "key", s.key, "error", err)
		return
	}
	if ok {
		s.best = best
	}
}

// AddPoints adds delta to the current score. Negative deltas are ignored so
// the score never decreases within a run.
func (s *Sink) AddPoints(delta float64) {
	if delta <= 0 || math.IsNaN(delta) {
		return
	}
	s.current += delta
}

// Reset starts a new run. The best score is untouched.
func (s *Sink) Reset() {
	s.current = 0
}

// Current returns the current run's score.
func (s *Sink) Current() float64 {
	return s.current
}

// Best returns the best score seen so far.
func (s *Sink) Best() float64 {
	return s.best
}

// Display returns the current score as shown to the player.
func (s *Sink) Display() int {
	return int(math.Floor(s.current))
}

// SaveHighScore finishes a run: it reports a new record iff the current score
// is strictly greater than the best, and then persists max(current, best).
func (s *Sink) SaveHighScore() bool {
	if s.current <= s.best {
		return false
	}
	s.best = s.current
	if s.store != nil {
		if err := s.store.Save(s.key, s.best); err != nil {
			s.logger.Warn("cannot save high score", "key", s.key, "best", s.best, "error", err)
		}
	}
	return true
}
