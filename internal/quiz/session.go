package quiz

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jaki95/music-explorer/internal/domain"
)

// Session is one guessing game over the normalized dataset. It advances
// through an explicit state machine
//
//	idle -> in_round -> round_scored -> in_round ... -> finished
//
// so that a guess can only ever be scored once per round. Tracks are drawn
// without replacement; if the pool runs out before the round limit, the
// session finishes early. The session never mutates its pool tracks.
type Session struct {
	mu sync.Mutex

	id        string
	state     string
	rounds    int
	remaining []*domain.Track
	current   *domain.Track
	completed []RoundResult
	total     int
	startTime time.Time
	endTime   *time.Time
}

// NewSession creates an idle session drawing up to rounds tracks from pool.
func NewSession(id string, pool []*domain.Track, rounds int) *Session {
	if rounds <= 0 {
		rounds = DefaultRounds
	}

	remaining := make([]*domain.Track, len(pool))
	copy(remaining, pool)

	return &Session{
		id:        id,
		state:     StateIdle,
		rounds:    rounds,
		remaining: remaining,
		startTime: time.Now(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// State returns the current state name.
func (s *Session) State() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentPrompt returns the active round's prompt. It reports false when no
// round is awaiting a guess.
func (s *Session) CurrentPrompt() (Prompt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInRound {
		return Prompt{}, false
	}
	return s.prompt(), true
}

// Total returns the session's running total score.
func (s *Session) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Start transitions idle -> in_round and draws the first track.
func (s *Session) Start() (Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return Prompt{}, fmt.Errorf("%w: start from %s", ErrInvalidState, s.state)
	}
	if len(s.remaining) == 0 {
		return Prompt{}, ErrEmptyPool
	}

	s.draw()
	s.state = StateInRound
	return s.prompt(), nil
}

// SubmitGuess scores the current round's guesses against the drawn track and
// transitions in_round -> round_scored. Submitting twice for the same round is
// an ErrInvalidState, which is what makes the transition idempotent from the
// caller's point of view.
func (s *Session) SubmitGuess(guesses map[string]float64) (RoundResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInRound {
		return RoundResult{}, fmt.Errorf("%w: submit from %s", ErrInvalidState, s.state)
	}
	if err := validateGuesses(guesses); err != nil {
		return RoundResult{}, err
	}

	features, roundScore := scoreRound(s.current, guesses)
	result := RoundResult{
		Number:     len(s.completed) + 1,
		TrackID:    s.current.ID,
		TrackName:  s.current.Name,
		Artists:    s.current.DisplayArtists,
		Features:   features,
		RoundScore: roundScore,
	}

	s.completed = append(s.completed, result)
	s.total += roundScore
	s.state = StateRoundScored
	return result, nil
}

// NextRound transitions round_scored -> in_round with a fresh track, or
// -> finished when the round limit is reached or the pool is exhausted. The
// returned prompt is zero-valued when the session finished.
func (s *Session) NextRound() (Prompt, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRoundScored {
		return Prompt{}, false, fmt.Errorf("%w: next round from %s", ErrInvalidState, s.state)
	}

	if len(s.completed) >= s.rounds || len(s.remaining) == 0 {
		s.finish()
		return Prompt{}, true, nil
	}

	s.draw()
	s.state = StateInRound
	return s.prompt(), false, nil
}

// Summary returns the terminal view of the session. It is only available once
// the session has finished and may be called any number of times.
func (s *Session) Summary() (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateFinished {
		return Summary{}, fmt.Errorf("%w: summary from %s", ErrInvalidState, s.state)
	}

	rounds := make([]RoundResult, len(s.completed))
	copy(rounds, s.completed)

	return Summary{
		SessionID:  s.id,
		TotalScore: s.total,
		Rounds:     rounds,
		StartTime:  s.startTime,
		EndTime:    s.endTime,
	}, nil
}

// draw removes a uniformly random track from the remaining pool and makes it
// the current round's track.
func (s *Session) draw() {
	i := rand.IntN(len(s.remaining))
	s.current = s.remaining[i]
	s.remaining[i] = s.remaining[len(s.remaining)-1]
	s.remaining = s.remaining[:len(s.remaining)-1]
}

func (s *Session) finish() {
	s.state = StateFinished
	s.current = nil
	now := time.Now()
	s.endTime = &now
}

func (s *Session) prompt() Prompt {
	return Prompt{
		Round:     len(s.completed) + 1,
		Rounds:    s.rounds,
		TrackID:   s.current.ID,
		TrackName: s.current.Name,
		Artists:   s.current.DisplayArtists,
	}
}

func validateGuesses(guesses map[string]float64) error {
	for _, feature := range domain.ScoredFeatures {
		guess, ok := guesses[feature]
		if !ok {
			return fmt.Errorf("%w: missing guess for %s", ErrInvalidGuess, feature)
		}
		if guess < 0 || guess > 100 {
			return fmt.Errorf("%w: %s out of range: %v", ErrInvalidGuess, feature, guess)
		}
	}
	return nil
}
