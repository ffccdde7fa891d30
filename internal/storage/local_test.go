package storage

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalBackendReadWrite(t *testing.T) {
	backend, err := NewLocalBackend(t.TempDir())
	require.NoError(t, err)

	assert.False(t, backend.FileExists("nested/file.txt"))

	writer, err := backend.GetWriter("nested/file.txt")
	require.NoError(t, err)
	_, err = writer.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	assert.True(t, backend.FileExists("nested/file.txt"))

	reader, err := backend.GetReader("nested/file.txt")
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestLocalBackendAbsolutePaths(t *testing.T) {
	dataDir := t.TempDir()
	otherDir := t.TempDir()
	backend, err := NewLocalBackend(dataDir)
	require.NoError(t, err)

	abs := filepath.Join(otherDir, "file.txt")
	writer, err := backend.GetWriter(abs)
	require.NoError(t, err)
	_, err = writer.Write([]byte("x"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	assert.True(t, backend.FileExists(abs))
}

func TestLocalBackendListFiles(t *testing.T) {
	backend, err := NewLocalBackend(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"scores_a.json", "scores_b.json", "other.json"} {
		writer, err := backend.GetWriter(name)
		require.NoError(t, err)
		require.NoError(t, writer.Close())
	}

	files, err := backend.ListFiles("", "scores_")
	require.NoError(t, err)
	assert.Len(t, files, 2)
}
