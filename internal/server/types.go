package server

import (
	"github.com/jaki95/music-explorer/internal/domain"
	"github.com/jaki95/music-explorer/internal/quiz"
)

// DatasetSummary describes the loaded dataset as a whole.
type DatasetSummary struct {
	TrackCount      int     `json:"trackCount"`
	DecadeMin       int     `json:"decadeMin"`
	DecadeMax       int     `json:"decadeMax"`
	AvgDanceability float64 `json:"avgDanceability"`
	AvgEnergy       float64 `json:"avgEnergy"`
	AvgValence      float64 `json:"avgValence"`
	AvgPopularity   float64 `json:"avgPopularity"`
}

// TrackListResponse is a paginated, filtered view of the dataset.
type TrackListResponse struct {
	Tracks      []*domain.Track `json:"tracks"`
	Page        int             `json:"page"`
	PageSize    int             `json:"pageSize"`
	TotalTracks int             `json:"totalTracks"`
	TotalPages  int             `json:"totalPages"`
}

// SessionResponse reports a quiz session's state and, once finished, its
// summary.
type SessionResponse struct {
	SessionID string        `json:"sessionId"`
	State     string        `json:"state"`
	Prompt    *quiz.Prompt  `json:"prompt,omitempty"`
	Summary   *quiz.Summary `json:"summary,omitempty"`
}

// GuessRequest carries one round's guesses, feature name to 0-100 value.
type GuessRequest struct {
	Guesses map[string]float64 `json:"guesses" binding:"required"`
}

// RoundResponse reports a scored round and the session's running total.
type RoundResponse struct {
	Result     quiz.RoundResult `json:"result"`
	State      string           `json:"state"`
	TotalScore int              `json:"totalScore"`
}

// RecordScoreRequest submits a finished session to the leaderboard.
type RecordScoreRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Name      string `json:"name" binding:"required"`
}

// PlayerResponse carries the embeddable player URL for a track.
type PlayerResponse struct {
	TrackID  string `json:"trackId"`
	EmbedURL string `json:"embedUrl"`
}

// MessageResponse represents a generic message payload used for success responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents a generic error payload used for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}
