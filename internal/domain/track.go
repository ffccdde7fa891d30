package domain

// Feature names for the audio-feature columns on the canonical 0-100 scale.
const (
	FeatureDanceability = "danceability"
	FeatureEnergy       = "energy"
	FeatureValence      = "valence"
	FeaturePopularity   = "popularity"
)

// ScoredFeatures lists the features a quiz round is scored on, in display order.
var ScoredFeatures = []string{
	FeatureDanceability,
	FeatureEnergy,
	FeatureValence,
	FeaturePopularity,
}

// Track represents one song's metadata and audio-feature scores.
// Feature values are always on the canonical 0-100 scale after normalization.
type Track struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Artists        []string `json:"artists"`
	DisplayArtists string   `json:"display_artists"`
	Year           int      `json:"year,omitempty"`
	Decade         int      `json:"decade,omitempty"`

	Danceability float64 `json:"danceability"`
	Energy       float64 `json:"energy"`
	Valence      float64 `json:"valence"`
	Popularity   float64 `json:"popularity"`
	Tempo        float64 `json:"tempo,omitempty"`

	DurationSeconds float64 `json:"duration_seconds,omitempty"`
	Link            string  `json:"link,omitempty"`
}

// Feature returns the canonical-scale value for one of the scored features.
func (t *Track) Feature(name string) (float64, bool) {
	switch name {
	case FeatureDanceability:
		return t.Danceability, true
	case FeatureEnergy:
		return t.Energy, true
	case FeatureValence:
		return t.Valence, true
	case FeaturePopularity:
		return t.Popularity, true
	}
	return 0, false
}

// Dataset is the canonical, immutable set of tracks produced by one load.
// Consumers get copies from the accessors and never mutate the backing slice.
type Dataset struct {
	tracks []*Track
	byID   map[string]*Track
}

// NewDataset builds a dataset and its ID index from normalized tracks.
func NewDataset(tracks []*Track) *Dataset {
	byID := make(map[string]*Track, len(tracks))
	for _, t := range tracks {
		byID[t.ID] = t
	}
	return &Dataset{tracks: tracks, byID: byID}
}

// Len returns the number of tracks in the dataset.
func (d *Dataset) Len() int {
	return len(d.tracks)
}

// Tracks returns a copy of the track slice. The pointed-to tracks are shared
// and treated as read-only.
func (d *Dataset) Tracks() []*Track {
	out := make([]*Track, len(d.tracks))
	copy(out, d.tracks)
	return out
}

// TrackByID looks up a track by its identifier.
func (d *Dataset) TrackByID(id string) (*Track, bool) {
	t, ok := d.byID[id]
	return t, ok
}

// Filter returns a copied view containing the tracks for which keep returns true.
func (d *Dataset) Filter(keep func(*Track) bool) []*Track {
	var out []*Track
	for _, t := range d.tracks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
