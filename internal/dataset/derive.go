package dataset

import (
	"math"
	"strings"

	"github.com/jaki95/music-explorer/internal/domain"
)

// linkColumns lists the source column names that may carry the player link,
// in priority order. The first present, non-empty value wins.
var linkColumns = []string{"Link", "link", "spotify_url", "url", "t"}

// deriveFields fills in the auxiliary fields computed from the raw row:
// decade bucket, cleaned artist names, canonical link and duration in seconds.
func deriveFields(track *domain.Track, table *rawTable, row []string) {
	if track.Year != 0 {
		track.Decade = (track.Year / 10) * 10
	}

	track.Artists = parseArtists(table.cell(row, "artists"))
	track.DisplayArtists = strings.Join(track.Artists, ", ")

	for _, col := range linkColumns {
		if !table.hasColumn(col) {
			continue
		}
		if v := strings.TrimSpace(table.cell(row, col)); v != "" {
			track.Link = v
			break
		}
	}

	if ms := coerceCell(table.cell(row, "duration_ms")); !math.IsNaN(ms) {
		track.DurationSeconds = ms / 1000
	}
}

// parseArtists splits the raw bracketed-list string the source stores
// ("['Drake', 'Rihanna']") into clean artist names.
func parseArtists(raw string) []string {
	cleaned := strings.NewReplacer("[", "", "]", "", "'", "", `"`, "").Replace(raw)

	var artists []string
	for _, part := range strings.Split(cleaned, ",") {
		if name := strings.TrimSpace(part); name != "" {
			artists = append(artists, name)
		}
	}
	return artists
}
