package geology

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stratigo/borehole-backend-go/internal/models"
)

func TestSimilarityIdenticalSoil(t *testing.T) {
	a := firmClay("Firm brown CLAY")
	b := firmClay("Firm grey CLAY")

	// identical material, soil type and consistency score a full match
	assert.Equal(t, 1.0, Similarity(a, b))
	assert.True(t, AreSimilar(a, b))
}

func TestSimilarityMaterialTypeGate(t *testing.T) {
	soil := firmClay("Firm CLAY")
	rock := strongSandstone("Strong SANDSTONE")

	// differing material type is never similar, whatever else matches
	assert.Equal(t, 0.0, Similarity(soil, rock))
	assert.False(t, AreSimilar(soil, rock))
	assert.False(t, AreSimilar(rock, soil))
}

func TestSimilarityOrdinalSteps(t *testing.T) {
	base := models.ClassifiedDescription{
		MaterialType:    models.MaterialTypeSoil,
		PrimarySoilType: soilTypePtr(models.SoilTypeClay),
		Consistency:     consistencyPtr(models.ConsistencyFirm),
	}

	tests := []struct {
		name  string
		other models.Consistency
		want  float64
	}{
		// score = (1 material + 1 soil type + step) / 3 criteria
		{"same grade", models.ConsistencyFirm, 1.0},
		{"adjacent grade", models.ConsistencyStiff, (1 + 1 + 0.8) / 3},
		{"two apart", models.ConsistencyVeryStiff, (1 + 1 + 0.4) / 3},
		{"three apart", models.ConsistencyHard, (1 + 1 + 0.0) / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := base
			other.Consistency = consistencyPtr(tt.other)
			assert.InDelta(t, tt.want, Similarity(base, other), 1e-9)
		})
	}
}

func TestSimilaritySkipsAttributesNotOnBoth(t *testing.T) {
	clay := firmClay("Firm CLAY")   // has consistency, no density
	sand := denseSand("Dense SAND") // has density, no consistency

	// only material type and soil type are comparable: (1+0)/2
	assert.InDelta(t, 0.5, Similarity(clay, sand), 1e-9)
	assert.False(t, AreSimilar(clay, sand))
}

func TestSimilarityRockAttributes(t *testing.T) {
	a := strongSandstone("Strong SANDSTONE")
	a.WeatheringGrade = weatheringPtr(models.WeatheringGradeSlightly)

	b := strongSandstone("Strong SANDSTONE, slightly weathered")
	b.WeatheringGrade = weatheringPtr(models.WeatheringGradeModerately)

	// material + rock type exact, strength same grade, weathering adjacent
	want := (1 + 1 + 1 + 0.8) / 4.0
	assert.InDelta(t, want, Similarity(a, b), 1e-9)
	assert.True(t, AreSimilar(a, b))
}

func TestSimilarityMaterialOnly(t *testing.T) {
	a := models.ClassifiedDescription{MaterialType: models.MaterialTypeSoil}
	b := models.ClassifiedDescription{MaterialType: models.MaterialTypeSoil}

	// nothing else comparable: the material match alone is a full score
	assert.Equal(t, 1.0, Similarity(a, b))
	assert.True(t, AreSimilar(a, b))
}
