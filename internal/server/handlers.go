package server

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jaki95/music-explorer/internal/dataset"
	"github.com/jaki95/music-explorer/internal/domain"
	"github.com/jaki95/music-explorer/internal/leaderboard"
	"github.com/jaki95/music-explorer/internal/quiz"
	"github.com/jaki95/music-explorer/internal/spotify"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// getDatasetSummary godoc
// @Summary Get dataset summary
// @Description Returns track count, decade range and feature means for the loaded dataset.
// @Tags Dataset
// @Produce json
// @Success 200 {object} DatasetSummary
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/dataset [get]
func (s *Server) getDatasetSummary(c *gin.Context) {
	ds, ok := s.dataset(c)
	if !ok {
		return
	}

	c.JSON(200, summarize(ds))
}

// listTracks godoc
// @Summary List tracks
// @Description Returns a filtered, paginated view of the dataset.
// @Tags Dataset
// @Produce json
// @Param decadeFrom query int false "Earliest decade"
// @Param decadeTo query int false "Latest decade"
// @Param minPopularity query number false "Minimum popularity"
// @Param maxPopularity query number false "Maximum popularity"
// @Param minTempo query number false "Minimum tempo (BPM)"
// @Param maxTempo query number false "Maximum tempo (BPM)"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} TrackListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/dataset/tracks [get]
func (s *Server) listTracks(c *gin.Context) {
	ds, ok := s.dataset(c)
	if !ok {
		return
	}

	filter, err := filterFromQuery(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	tracks := ds.Filter(filter.keep)

	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "pageSize", defaultPageSize)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	total := len(tracks)
	start := (page - 1) * pageSize
	end := start + pageSize
	if start >= total {
		tracks = []*domain.Track{}
	} else {
		if end > total {
			end = total
		}
		tracks = tracks[start:end]
	}

	c.JSON(200, TrackListResponse{
		Tracks:      tracks,
		Page:        page,
		PageSize:    pageSize,
		TotalTracks: total,
		TotalPages:  (total + pageSize - 1) / pageSize,
	})
}

// reloadDataset godoc
// @Summary Reload the dataset
// @Description Invalidates the cached dataset and rebuilds it from the source candidates.
// @Tags Dataset
// @Produce json
// @Success 200 {object} DatasetSummary
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/dataset/reload [post]
func (s *Server) reloadDataset(c *gin.Context) {
	s.cache.Invalidate()

	ds, ok := s.dataset(c)
	if !ok {
		return
	}

	c.JSON(200, summarize(ds))
}

// getTrackPlayer godoc
// @Summary Get the embeddable player URL for a track
// @Tags Dataset
// @Produce json
// @Param id path string true "Track ID"
// @Success 200 {object} PlayerResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/tracks/{id}/player [get]
func (s *Server) getTrackPlayer(c *gin.Context) {
	ds, ok := s.dataset(c)
	if !ok {
		return
	}

	track, found := ds.TrackByID(c.Param("id"))
	if !found {
		c.JSON(404, gin.H{"error": fmt.Sprintf("track not found: %s", c.Param("id"))})
		return
	}

	if track.Link == "" {
		c.JSON(404, gin.H{"error": "player unavailable for this track"})
		return
	}

	embedURL, err := spotify.EmbedURL(track.Link)
	if err != nil {
		// Malformed links disable the player for this track only.
		c.JSON(404, gin.H{"error": "player unavailable for this track"})
		return
	}

	c.JSON(200, PlayerResponse{TrackID: track.ID, EmbedURL: embedURL})
}

// createQuizSession godoc
// @Summary Start a quiz session
// @Description Creates a session over the loaded dataset and returns the first round's prompt.
// @Tags Quiz
// @Produce json
// @Success 201 {object} SessionResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/quiz/sessions [post]
func (s *Server) createQuizSession(c *gin.Context) {
	ds, ok := s.dataset(c)
	if !ok {
		return
	}

	session, prompt, err := s.sessions.CreateSession(ds)
	if err != nil {
		if errors.Is(err, quiz.ErrEmptyPool) {
			c.JSON(503, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(201, SessionResponse{
		SessionID: session.ID(),
		State:     session.State(),
		Prompt:    &prompt,
	})
}

// getQuizSession godoc
// @Summary Get quiz session state
// @Tags Quiz
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/quiz/sessions/{id} [get]
func (s *Server) getQuizSession(c *gin.Context) {
	session, err := s.sessions.GetSession(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}

	resp := SessionResponse{
		SessionID: session.ID(),
		State:     session.State(),
	}
	if prompt, inRound := session.CurrentPrompt(); inRound {
		resp.Prompt = &prompt
	}
	if summary, err := session.Summary(); err == nil {
		resp.Summary = &summary
	}

	c.JSON(200, resp)
}

// submitGuess godoc
// @Summary Submit guesses for the current round
// @Description Scores the four feature guesses against the drawn track. Each feature is worth up to 100 points.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body GuessRequest true "Feature guesses (0-100 each)"
// @Success 200 {object} RoundResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/quiz/sessions/{id}/guess [post]
func (s *Server) submitGuess(c *gin.Context) {
	session, err := s.sessions.GetSession(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}

	var req GuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": fmt.Sprintf("invalid request: %v", err)})
		return
	}

	result, err := session.SubmitGuess(req.Guesses)
	if err != nil {
		switch {
		case errors.Is(err, quiz.ErrInvalidGuess):
			c.JSON(400, gin.H{"error": err.Error()})
		case errors.Is(err, quiz.ErrInvalidState):
			c.JSON(409, gin.H{"error": err.Error()})
		default:
			c.JSON(500, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(200, RoundResponse{
		Result:     result,
		State:      session.State(),
		TotalScore: session.Total(),
	})
}

// nextRound godoc
// @Summary Advance to the next round
// @Description Draws the next track, or finishes the session when the round limit is reached or the pool is exhausted.
// @Tags Quiz
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/quiz/sessions/{id}/next [post]
func (s *Server) nextRound(c *gin.Context) {
	session, err := s.sessions.GetSession(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}

	prompt, finished, err := session.NextRound()
	if err != nil {
		if errors.Is(err, quiz.ErrInvalidState) {
			c.JSON(409, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	resp := SessionResponse{
		SessionID: session.ID(),
		State:     session.State(),
	}
	if finished {
		summary, err := session.Summary()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		resp.Summary = &summary
	} else {
		resp.Prompt = &prompt
	}

	c.JSON(200, resp)
}

// getLeaderboard godoc
// @Summary Get the leaderboard
// @Tags Leaderboard
// @Produce json
// @Success 200 {array} leaderboard.Entry
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/leaderboard [get]
func (s *Server) getLeaderboard(c *gin.Context) {
	entries, err := s.board.Load()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, entries)
}

// recordScore godoc
// @Summary Record a finished session on the leaderboard
// @Description Archives the session's total score under the given name and discards the session.
// @Tags Leaderboard
// @Accept json
// @Produce json
// @Param request body RecordScoreRequest true "Session and player name"
// @Success 201 {array} leaderboard.Entry
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/leaderboard [post]
func (s *Server) recordScore(c *gin.Context) {
	var req RecordScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": fmt.Sprintf("invalid request: %v", err)})
		return
	}

	session, err := s.sessions.GetSession(req.SessionID)
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}

	summary, err := session.Summary()
	if err != nil {
		// Only finished sessions can be archived.
		c.JSON(409, gin.H{"error": err.Error()})
		return
	}

	entries, err := s.board.Record(req.Name, summary.TotalScore)
	if err != nil {
		if errors.Is(err, leaderboard.ErrInvalidEntry) {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	if err := s.sessions.DeleteSession(req.SessionID); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(201, entries)
}

// dataset resolves the cached dataset, rendering the spec'd empty-state
// response when no source loads or the schema is invalid.
func (s *Server) dataset(c *gin.Context) (*domain.Dataset, bool) {
	ds, err := s.cache.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, dataset.ErrDataUnavailable) || errors.Is(err, dataset.ErrSchemaInvalid) {
			c.JSON(503, gin.H{"error": err.Error()})
		} else {
			c.JSON(500, gin.H{"error": err.Error()})
		}
		return nil, false
	}
	return ds, true
}

func summarize(ds *domain.Dataset) DatasetSummary {
	summary := DatasetSummary{TrackCount: ds.Len()}

	var sumDance, sumEnergy, sumValence, sumPopularity float64
	for _, t := range ds.Tracks() {
		if t.Decade != 0 {
			if summary.DecadeMin == 0 || t.Decade < summary.DecadeMin {
				summary.DecadeMin = t.Decade
			}
			if t.Decade > summary.DecadeMax {
				summary.DecadeMax = t.Decade
			}
		}
		sumDance += t.Danceability
		sumEnergy += t.Energy
		sumValence += t.Valence
		sumPopularity += t.Popularity
	}

	if summary.TrackCount > 0 {
		n := float64(summary.TrackCount)
		summary.AvgDanceability = sumDance / n
		summary.AvgEnergy = sumEnergy / n
		summary.AvgValence = sumValence / n
		summary.AvgPopularity = sumPopularity / n
	}

	return summary
}

// trackFilter holds the optional range filters from the listing query.
type trackFilter struct {
	decadeFrom, decadeTo         int
	minPopularity, maxPopularity float64
	minTempo, maxTempo           float64
}

func filterFromQuery(c *gin.Context) (*trackFilter, error) {
	f := &trackFilter{}

	var err error
	if f.decadeFrom, err = queryIntErr(c, "decadeFrom"); err != nil {
		return nil, err
	}
	if f.decadeTo, err = queryIntErr(c, "decadeTo"); err != nil {
		return nil, err
	}
	if f.minPopularity, err = queryFloat(c, "minPopularity", 0); err != nil {
		return nil, err
	}
	if f.maxPopularity, err = queryFloat(c, "maxPopularity", 100); err != nil {
		return nil, err
	}
	if f.minTempo, err = queryFloat(c, "minTempo", 0); err != nil {
		return nil, err
	}
	if f.maxTempo, err = queryFloat(c, "maxTempo", 0); err != nil {
		return nil, err
	}

	return f, nil
}

func (f *trackFilter) keep(t *domain.Track) bool {
	if f.decadeFrom != 0 && t.Decade < f.decadeFrom {
		return false
	}
	if f.decadeTo != 0 && t.Decade > f.decadeTo {
		return false
	}
	if t.Popularity < f.minPopularity || t.Popularity > f.maxPopularity {
		return false
	}
	if f.minTempo != 0 && t.Tempo < f.minTempo {
		return false
	}
	if f.maxTempo != 0 && t.Tempo > f.maxTempo {
		return false
	}
	return true
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func queryIntErr(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", name, raw)
	}
	return v, nil
}

func queryFloat(c *gin.Context, name string, fallback float64) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", name, raw)
	}
	return v, nil
}
