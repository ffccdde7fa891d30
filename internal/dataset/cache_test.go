package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaki95/music-explorer/internal/storage"
)

const singleRowCSV = `name,danceability,energy,valence,popularity
Only Song,50,50,50,50
`

func TestCacheReusesDataset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tracks.csv")
	require.NoError(t, os.WriteFile(path, []byte(singleRowCSV), 0644))

	backend, err := storage.NewLocalBackend(dir)
	require.NoError(t, err)
	cache := NewCache(NewLoader(backend, []SourceCandidate{{Path: "tracks.csv", Format: FormatCSV}}))

	first, err := cache.Get(context.Background())
	require.NoError(t, err)

	// A change on disk is not visible until the cache is invalidated.
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0644))

	second, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, second.Len())

	cache.Invalidate()

	third, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, third.Len())
}

func TestCachePropagatesLoadError(t *testing.T) {
	backend, err := storage.NewLocalBackend(t.TempDir())
	require.NoError(t, err)
	cache := NewCache(NewLoader(backend, []SourceCandidate{{Path: "nope.csv", Format: FormatCSV}}))

	_, err = cache.Get(context.Background())
	assert.ErrorIs(t, err, ErrDataUnavailable)
}
