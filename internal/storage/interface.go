package storage

import (
	"io"
)

// Backend defines the interface for reading dataset sources and persisting
// the leaderboard file.
type Backend interface {
	GetReader(path string) (io.ReadCloser, error)

	GetWriter(path string) (io.WriteCloser, error)

	FileExists(path string) bool

	ListFiles(dir string, pattern string) ([]string, error)
}
