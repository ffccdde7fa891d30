package dataset

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/jaki95/music-explorer/internal/domain"
)

// essentialColumns must be present in the source and non-missing in every
// kept row. year and tempo are coerced when present but a source may omit
// them entirely.
var essentialColumns = []string{
	domain.FeatureDanceability,
	domain.FeatureEnergy,
	domain.FeatureValence,
	domain.FeaturePopularity,
}

var numericColumns = []string{
	"year",
	domain.FeatureDanceability,
	domain.FeaturePopularity,
	"tempo",
	domain.FeatureEnergy,
	domain.FeatureValence,
}

// Scale detection cutoffs. Upstream revisions of the dataset stored the
// feature columns as 0-1 fractions, 0-100 percentages, and x10/x1000 scaled
// integers at different points in its history, so the factor is detected per
// column from the observed maximum rather than hard-coded. The cutoffs sit
// 50% above each nominal range to tolerate float noise.
const (
	maxFraction = 1.5
	maxPercent  = 150
	maxTenX     = 1500
)

// normalize coerces the numeric columns, drops rows with missing essential
// values, rescales the scored features onto the canonical 0-100 scale and
// derives the auxiliary fields. It returns ErrSchemaInvalid when the source
// lacks essential columns.
func normalize(table *rawTable) (*domain.Dataset, error) {
	var missing []string
	for _, col := range essentialColumns {
		if !table.hasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %s", ErrSchemaInvalid, strings.Join(missing, ", "))
	}

	values := coerceColumns(table)
	dropped := 0

	var tracks []*domain.Track
	for i, row := range table.rows {
		if rowMissingEssential(values, i) {
			dropped++
			continue
		}

		track := &domain.Track{
			Name:         table.cell(row, "name"),
			Danceability: values[domain.FeatureDanceability][i],
			Energy:       values[domain.FeatureEnergy][i],
			Valence:      values[domain.FeatureValence][i],
			Popularity:   values[domain.FeaturePopularity][i],
		}
		if year := values["year"][i]; !math.IsNaN(year) {
			track.Year = int(year)
		}
		if tempo := values["tempo"][i]; !math.IsNaN(tempo) {
			track.Tempo = tempo
		}

		deriveFields(track, table, row)
		track.ID = strconv.Itoa(len(tracks) + 1)
		tracks = append(tracks, track)
	}

	if dropped > 0 {
		slog.Debug("dropped rows with missing essential values", "dropped", dropped, "kept", len(tracks))
	}

	rescaleFeatures(tracks)
	return domain.NewDataset(tracks), nil
}

// coerceColumns parses every expected numeric column to float64, marking
// unparseable or absent cells as NaN.
func coerceColumns(table *rawTable) map[string][]float64 {
	values := make(map[string][]float64, len(numericColumns))
	for _, col := range numericColumns {
		parsed := make([]float64, len(table.rows))
		for i, row := range table.rows {
			parsed[i] = coerceCell(table.cell(row, col))
		}
		values[col] = parsed
	}
	return values
}

func coerceCell(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func rowMissingEssential(values map[string][]float64, i int) bool {
	for _, col := range essentialColumns {
		if math.IsNaN(values[col][i]) {
			return true
		}
	}
	return false
}

// rescaleFeatures maps each scored feature column onto the canonical 0-100
// scale using the factor detected from the column's observed maximum, then
// clips to [0, 100]. tempo and year are not percentages and pass through.
func rescaleFeatures(tracks []*domain.Track) {
	for _, feature := range domain.ScoredFeatures {
		observedMax := 0.0
		for _, t := range tracks {
			if v, _ := t.Feature(feature); v > observedMax {
				observedMax = v
			}
		}

		factor := detectScaleFactor(observedMax)
		if factor != 1 {
			slog.Info("rescaling feature column", "feature", feature, "observedMax", observedMax, "factor", factor)
		}

		for _, t := range tracks {
			v, _ := t.Feature(feature)
			setFeature(t, feature, clip(v*factor, 0, 100))
		}
	}
}

func detectScaleFactor(observedMax float64) float64 {
	switch {
	case observedMax <= maxFraction:
		return 100
	case observedMax <= maxPercent:
		return 1
	case observedMax <= maxTenX:
		return 0.1
	default:
		return 0.001
	}
}

func setFeature(t *domain.Track, name string, v float64) {
	switch name {
	case domain.FeatureDanceability:
		t.Danceability = v
	case domain.FeatureEnergy:
		t.Energy = v
	case domain.FeatureValence:
		t.Valence = v
	case domain.FeaturePopularity:
		t.Popularity = v
	}
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
