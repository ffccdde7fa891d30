package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackFeature(t *testing.T) {
	track := &Track{
		Danceability: 10,
		Energy:       20,
		Valence:      30,
		Popularity:   40,
	}

	for feature, want := range map[string]float64{
		FeatureDanceability: 10,
		FeatureEnergy:       20,
		FeatureValence:      30,
		FeaturePopularity:   40,
	} {
		v, ok := track.Feature(feature)
		assert.True(t, ok)
		assert.Equal(t, want, v)
	}

	_, ok := track.Feature("tempo")
	assert.False(t, ok)
}

func TestDatasetLookupAndFilter(t *testing.T) {
	ds := NewDataset([]*Track{
		{ID: "1", Name: "A", Decade: 1980},
		{ID: "2", Name: "B", Decade: 1990},
		{ID: "3", Name: "C", Decade: 1990},
	})

	require.Equal(t, 3, ds.Len())

	track, ok := ds.TrackByID("2")
	require.True(t, ok)
	assert.Equal(t, "B", track.Name)

	_, ok = ds.TrackByID("missing")
	assert.False(t, ok)

	nineties := ds.Filter(func(t *Track) bool { return t.Decade == 1990 })
	assert.Len(t, nineties, 2)
}

func TestDatasetTracksReturnsCopy(t *testing.T) {
	ds := NewDataset([]*Track{{ID: "1"}, {ID: "2"}})

	tracks := ds.Tracks()
	tracks[0] = nil

	fresh := ds.Tracks()
	require.NotNil(t, fresh[0])
	assert.Equal(t, "1", fresh[0].ID)
}
