package system

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/milk9111/jungle/storage"
)

//go:generate go tool mockgen -destination=./mocks/high_score_store_mock.go -package=mocks . HighScoreStore

// HighScoreStore persists the best score between runs.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// State is the top-level game state.
type State int

const (
	StatePlay State = iota
	StateDead
	StateWin
)

func (s State) String() string {
	switch s {
	case StatePlay:
		return "play"
	case StateDead:
		return "dead"
	case StateWin:
		return "win"
	}
	return "unknown"
}

// Session tracks the state machine and score bookkeeping of one game.
// Score only grows while playing; DEAD and WIN hold until Reset.
type Session struct {
	store HighScoreStore
	state State
	score int
	high  int
}

// NewSession loads the high score from store. Load failures are logged
// and treated as no prior score.
func NewSession(store HighScoreStore) *Session {
	s := &Session{store: store}
	if store == nil {
		return s
	}
	high, err := store.LoadHighScore()
	switch {
	case errors.Is(err, storage.ErrNoScore):
		log.Debug("no saved high score")
	case err != nil:
		log.Warn("high score load failed", "err", err)
	default:
		s.high = high
	}
	return s
}

func (s *Session) State() State   { return s.state }
func (s *Session) Score() int     { return s.score }
func (s *Session) HighScore() int { return s.high }

// AddScore adds n points. It reports false, changing nothing, outside PLAY.
func (s *Session) AddScore(n int) bool {
	if s.state != StatePlay || n <= 0 {
		return false
	}
	s.score += n
	return true
}

// Die moves PLAY to DEAD and persists the high score.
func (s *Session) Die() bool {
	return s.finish(StateDead)
}

// Win moves PLAY to WIN and persists the high score.
func (s *Session) Win() bool {
	return s.finish(StateWin)
}

func (s *Session) finish(to State) bool {
	if s.state != StatePlay {
		return false
	}
	s.state = to
	log.Info("game over", "state", to, "score", s.score, "high", s.high)
	s.Persist()
	return true
}

// Persist saves the score when it beats the high score. The in-memory high
// score only moves once the save succeeds.
func (s *Session) Persist() {
	if s.score <= s.high {
		return
	}
	if s.store != nil {
		if err := s.store.SaveHighScore(s.score); err != nil {
			log.Warn("high score save failed", "score", s.score, "err", err)
			return
		}
	}
	s.high = s.score
}

// Reset persists, clears the score and returns to PLAY.
func (s *Session) Reset() {
	s.Persist()
	s.score = 0
	s.state = StatePlay
}
