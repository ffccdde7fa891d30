package quiz

import "time"

// Session states.
const (
	StateIdle        = "idle"
	StateInRound     = "in_round"
	StateRoundScored = "round_scored"
	StateFinished    = "finished"
)

// DefaultRounds is the number of rounds in a full session.
const DefaultRounds = 5

// FeatureResult holds one feature's guess, the canonical-scale actual value
// and the points earned.
type FeatureResult struct {
	Guess  float64 `json:"guess"`
	Actual float64 `json:"actual"`
	Score  int     `json:"score"`
}

// RoundResult is the finalized outcome of one round.
type RoundResult struct {
	Number     int                      `json:"number"`
	TrackID    string                   `json:"trackId"`
	TrackName  string                   `json:"trackName"`
	Artists    string                   `json:"artists"`
	Features   map[string]FeatureResult `json:"features"`
	RoundScore int                      `json:"roundScore"`
}

// Prompt describes the track of the current round without revealing the
// feature values being guessed.
type Prompt struct {
	Round     int    `json:"round"`
	Rounds    int    `json:"rounds"`
	TrackID   string `json:"trackId"`
	TrackName string `json:"trackName"`
	Artists   string `json:"artists"`
}

// Summary is the terminal view of a session, used for display and for
// leaderboard submission.
type Summary struct {
	SessionID  string        `json:"sessionId"`
	TotalScore int           `json:"totalScore"`
	Rounds     []RoundResult `json:"rounds"`
	StartTime  time.Time     `json:"startTime"`
	EndTime    *time.Time    `json:"endTime,omitempty"`
}
