package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaki95/music-explorer/internal/domain"
)

func TestManagerSessionLifecycle(t *testing.T) {
	m := NewManager(DefaultRounds)
	ds := domain.NewDataset(testPool(10))

	session, prompt, err := m.CreateSession(ds)
	require.NoError(t, err)
	assert.Equal(t, StateInRound, session.State())
	assert.Equal(t, 1, prompt.Round)
	assert.Equal(t, 1, m.Count())

	fetched, err := m.GetSession(session.ID())
	require.NoError(t, err)
	assert.Same(t, session, fetched)

	require.NoError(t, m.DeleteSession(session.ID()))
	assert.Equal(t, 0, m.Count())

	_, err = m.GetSession(session.ID())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, m.DeleteSession(session.ID()), ErrNotFound)
}

func TestManagerIsolatesSessions(t *testing.T) {
	m := NewManager(DefaultRounds)
	ds := domain.NewDataset(testPool(10))

	first, _, err := m.CreateSession(ds)
	require.NoError(t, err)
	second, _, err := m.CreateSession(ds)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID(), second.ID())

	// Scoring one session leaves the other untouched.
	_, err = first.SubmitGuess(perfectGuess())
	require.NoError(t, err)
	assert.Equal(t, StateRoundScored, first.State())
	assert.Equal(t, StateInRound, second.State())
	assert.Zero(t, second.Total())
}

func TestManagerEmptyDataset(t *testing.T) {
	m := NewManager(DefaultRounds)
	ds := domain.NewDataset(nil)

	_, _, err := m.CreateSession(ds)
	assert.ErrorIs(t, err, ErrEmptyPool)
	assert.Equal(t, 0, m.Count())
}
