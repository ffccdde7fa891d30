package quiz

import (
	"math"

	"github.com/jaki95/music-explorer/internal/domain"
)

// Scoring constants. Each of the four scored features contributes up to 100
// points per round, so a perfect round is worth 400.
const (
	MaxFeatureScore = 100
	MaxRoundScore   = MaxFeatureScore * 4
)

// featureScore scores one guess against the canonical-scale actual value with
// linear decay: a perfect guess earns 100, and every point of distance costs
// one. The result is truncated to an integer, never negative.
func featureScore(guess, actual float64) int {
	score := MaxFeatureScore - math.Abs(guess-actual)
	if score < 0 {
		return 0
	}
	return int(score)
}

// scoreRound scores a full guess set against a track, returning the
// per-feature breakdown and the round total.
func scoreRound(track *domain.Track, guesses map[string]float64) (map[string]FeatureResult, int) {
	results := make(map[string]FeatureResult, len(domain.ScoredFeatures))
	total := 0

	for _, feature := range domain.ScoredFeatures {
		actual, _ := track.Feature(feature)
		guess := guesses[feature]
		score := featureScore(guess, actual)

		results[feature] = FeatureResult{
			Guess:  guess,
			Actual: actual,
			Score:  score,
		}
		total += score
	}

	return results, total
}
