package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDatasetSummary(t *testing.T) {
	server := newTestServer(t)

	rr := doRequest(t, server, "GET", "/api/v1/dataset", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	summary := decodeBody[DatasetSummary](t, rr)
	assert.Equal(t, 8, summary.TrackCount)
	assert.Equal(t, 1980, summary.DecadeMin)
	assert.Equal(t, 2020, summary.DecadeMax)
	assert.Greater(t, summary.AvgEnergy, 0.0)
	assert.LessOrEqual(t, summary.AvgEnergy, 100.0)
}

func TestListTracks(t *testing.T) {
	server := newTestServer(t)

	rr := doRequest(t, server, "GET", "/api/v1/dataset/tracks", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeBody[TrackListResponse](t, rr)
	assert.Equal(t, 8, resp.TotalTracks)
	assert.Len(t, resp.Tracks, 8)

	// Normalized values are on the canonical scale.
	for _, track := range resp.Tracks {
		assert.GreaterOrEqual(t, track.Danceability, 0.0)
		assert.LessOrEqual(t, track.Danceability, 100.0)
		assert.GreaterOrEqual(t, track.Popularity, 0.0)
		assert.LessOrEqual(t, track.Popularity, 100.0)
	}
}

func TestListTracksDecadeFilter(t *testing.T) {
	server := newTestServer(t)

	rr := doRequest(t, server, "GET", "/api/v1/dataset/tracks?decadeFrom=1980&decadeTo=1980", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeBody[TrackListResponse](t, rr)
	assert.Equal(t, 3, resp.TotalTracks)
	for _, track := range resp.Tracks {
		assert.Equal(t, 1980, track.Decade)
	}
}

func TestListTracksPagination(t *testing.T) {
	server := newTestServer(t)

	rr := doRequest(t, server, "GET", "/api/v1/dataset/tracks?page=2&pageSize=3", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeBody[TrackListResponse](t, rr)
	assert.Equal(t, 8, resp.TotalTracks)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Len(t, resp.Tracks, 3)
	assert.Equal(t, 2, resp.Page)
}

func TestListTracksInvalidFilter(t *testing.T) {
	server := newTestServer(t)

	rr := doRequest(t, server, "GET", "/api/v1/dataset/tracks?minTempo=fast", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestReloadDataset(t *testing.T) {
	server := newTestServer(t)

	rr := doRequest(t, server, "POST", "/api/v1/dataset/reload", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	summary := decodeBody[DatasetSummary](t, rr)
	assert.Equal(t, 8, summary.TrackCount)
}

func TestGetTrackPlayer(t *testing.T) {
	server := newTestServer(t)

	// Track 1 carries a well-formed Spotify link.
	rr := doRequest(t, server, "GET", "/api/v1/tracks/1/player", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	player := decodeBody[PlayerResponse](t, rr)
	assert.Equal(t, "https://open.spotify.com/embed/track/abc123", player.EmbedURL)
}

func TestGetTrackPlayerUnavailable(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name    string
		trackID string
	}{
		{name: "track without link", trackID: "2"},
		{name: "track with malformed link", trackID: "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, server, "GET", "/api/v1/tracks/"+tt.trackID+"/player", nil)
			require.Equal(t, http.StatusNotFound, rr.Code)

			body := decodeBody[ErrorResponse](t, rr)
			assert.Equal(t, "player unavailable for this track", body.Error)
		})
	}
}

func TestGetTrackPlayerUnknownTrack(t *testing.T) {
	server := newTestServer(t)

	rr := doRequest(t, server, "GET", "/api/v1/tracks/999/player", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
