package geology

import (
	"math"

	"github.com/stratigo/borehole-backend-go/internal/models"
)

// SimilarityThreshold is the minimum similarity score at which two classified
// descriptions are judged to be the same geological unit
const SimilarityThreshold = 0.7

// Similarity scores how alike two classified descriptions are, 0..1.
// Material type is the gate criterion: records of different material never
// match. Beyond that, each attribute present on both records contributes one
// criterion; the score is the mean contribution across criteria.
func Similarity(a, b models.ClassifiedDescription) float64 {
	if a.MaterialType != b.MaterialType {
		return 0
	}

	// The confirmed material-type match seeds both accumulators
	score := 1.0
	criteria := 1.0

	if a.MaterialType == models.MaterialTypeSoil {
		if a.PrimarySoilType != nil && b.PrimarySoilType != nil {
			criteria++
			if *a.PrimarySoilType == *b.PrimarySoilType {
				score++
			}
		}
		if a.Consistency != nil && b.Consistency != nil {
			criteria++
			score += ordinalScore(int(*a.Consistency), int(*b.Consistency))
		}
		if a.Density != nil && b.Density != nil {
			criteria++
			score += ordinalScore(int(*a.Density), int(*b.Density))
		}
	} else {
		if a.PrimaryRockType != nil && b.PrimaryRockType != nil {
			criteria++
			if *a.PrimaryRockType == *b.PrimaryRockType {
				score++
			}
		}
		if a.RockStrength != nil && b.RockStrength != nil {
			criteria++
			score += ordinalScore(int(*a.RockStrength), int(*b.RockStrength))
		}
		if a.WeatheringGrade != nil && b.WeatheringGrade != nil {
			criteria++
			score += ordinalScore(int(*a.WeatheringGrade), int(*b.WeatheringGrade))
		}
	}

	if criteria == 0 {
		return 0
	}
	return score / criteria
}

// AreSimilar reports whether two descriptions represent the same unit
func AreSimilar(a, b models.ClassifiedDescription) bool {
	return Similarity(a, b) >= SimilarityThreshold
}

// ordinalScore scores two grades on the same ordered scale by index distance:
// an exact match counts in full, adjacent grades still count most of a match,
// two apart counts less, anything farther counts nothing
func ordinalScore(a, b int) float64 {
	d := int(math.Abs(float64(a - b)))
	switch {
	case d == 0:
		return 1.0
	case d == 1:
		return 0.8
	case d == 2:
		return 0.4
	default:
		return 0.0
	}
}
