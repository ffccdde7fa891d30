package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalBackend implements the Backend interface for the local filesystem.
// Relative paths resolve against the configured data directory.
type LocalBackend struct {
	dataDir string
}

// NewLocalBackend creates a local backend rooted at dataDir.
func NewLocalBackend(dataDir string) (*LocalBackend, error) {
	if err := os.MkdirAll(dataDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	return &LocalBackend{dataDir: dataDir}, nil
}

func (s *LocalBackend) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.dataDir, path)
}

// GetReader returns a reader for the specified file.
func (s *LocalBackend) GetReader(path string) (io.ReadCloser, error) {
	return os.Open(s.resolve(path))
}

// GetWriter returns a writer for the specified file, creating parent
// directories as needed.
func (s *LocalBackend) GetWriter(path string) (io.WriteCloser, error) {
	full := s.resolve(path)
	if err := os.MkdirAll(filepath.Dir(full), os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	return os.Create(full)
}

// FileExists checks if a file exists.
func (s *LocalBackend) FileExists(path string) bool {
	_, err := os.Stat(s.resolve(path))
	return err == nil
}

// ListFiles lists files in a directory matching a prefix pattern.
func (s *LocalBackend) ListFiles(dir string, pattern string) ([]string, error) {
	if dir == "" {
		dir = s.dataDir
	} else {
		dir = s.resolve(dir)
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var results []string
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if pattern != "" && !strings.HasPrefix(file.Name(), pattern) {
			continue
		}
		results = append(results, filepath.Join(dir, file.Name()))
	}

	return results, nil
}
