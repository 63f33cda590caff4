package core

// EventKind identifies a one-shot lifecycle signal emitted by a game.
type EventKind int

const (
	EventLifeLost EventKind = iota + 1
	EventLevelUp
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventLifeLost:
		return "life_lost"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted at most once per occurrence, in the tick it happened.
type Event struct {
	Kind      EventKind
	Score     float64 // Final score for EventGameOver
	NewRecord bool    // EventGameOver beat the stored best
	Lives     int     // Remaining lives for EventLifeLost
	Level     int     // New level for EventLevelUp
}

// Cue is a named sound effect.
type Cue int

const (
	CueJump Cue = iota
	CueBounce
	CueBrick
	CueScore
	CueLifeLost
	CueLevelUp
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueBounce:
		return "bounce"
	case CueBrick:
		return "brick"
	case CueScore:
		return "score"
	case CueLifeLost:
		return "life_lost"
	case CueLevelUp:
		return "level_up"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// CuePlayer plays sound cues. Play must not block and must not fail
// observably; implementations swallow their own errors.
type CuePlayer interface {
	Play(c Cue)
}

// NopCuePlayer discards every cue.
type NopCuePlayer struct{}

// Play does nothing.
func (NopCuePlayer) Play(Cue) {}
