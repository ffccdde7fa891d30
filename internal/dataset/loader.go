package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jaki95/music-explorer/internal/domain"
	"github.com/jaki95/music-explorer/internal/storage"
)

// Source formats the loader understands.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// SourceCandidate names one possible location of the raw dataset.
type SourceCandidate struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}

// Loader turns the first loadable source candidate into the canonical dataset.
type Loader struct {
	backend    storage.Backend
	candidates []SourceCandidate
}

// NewLoader creates a loader that tries candidates in order against the given
// storage backend.
func NewLoader(backend storage.Backend, candidates []SourceCandidate) *Loader {
	return &Loader{backend: backend, candidates: candidates}
}

// Load tries each source candidate in order and returns the normalized dataset
// from the first one that opens and parses. It returns ErrDataUnavailable,
// listing the attempted locations, when none do. Schema problems in a source
// that did load are not retried against later candidates.
func (l *Loader) Load(ctx context.Context) (*domain.Dataset, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var attempted []string
	for _, cand := range l.candidates {
		attempted = append(attempted, cand.Path)

		table, err := l.loadCandidate(cand)
		if err != nil {
			slog.Debug("dataset source candidate failed", "path", cand.Path, "format", cand.Format, "error", err)
			continue
		}

		slog.Info("dataset source loaded", "path", cand.Path, "format", cand.Format, "rows", len(table.rows))
		return normalize(table)
	}

	return nil, fmt.Errorf("%w: tried %s", ErrDataUnavailable, strings.Join(attempted, ", "))
}

func (l *Loader) loadCandidate(cand SourceCandidate) (*rawTable, error) {
	if !l.backend.FileExists(cand.Path) {
		return nil, fmt.Errorf("file not found: %s", cand.Path)
	}

	reader, err := l.backend.GetReader(cand.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", cand.Path, err)
	}
	defer reader.Close()

	switch cand.Format {
	case FormatCSV:
		return parseCSV(reader)
	case FormatJSON:
		return parseJSON(reader)
	default:
		return nil, fmt.Errorf("unsupported format: %s", cand.Format)
	}
}
