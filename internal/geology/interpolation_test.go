package geology

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stratigo/borehole-backend-go/internal/models"
	"github.com/stratigo/borehole-backend-go/internal/spatial"
)

func TestIDWPredictsDominantNearbyMaterial(t *testing.T) {
	units := []models.SpatialUnit{
		unitAt("BH1", 0, 0, 0, 2, firmClay("Firm CLAY")),
		unitAt("BH2", 5, 0, 0, 2, firmClay("Firm CLAY")),
		unitAt("BH3", 0, 5, 0, 2, firmClay("Firm CLAY")),
		unitAt("BH4", 300, 300, 0, 2, strongSandstone("Strong SANDSTONE")),
	}
	target := spatial.Point3D{X: 2, Y: 2, Z: -1}

	got := InterpolateMaterialType(target, units, 3, MethodIDW)

	assert.Equal(t, models.MaterialTypeSoil, got)
}

func TestIDWPredictsRockNearRockUnits(t *testing.T) {
	units := []models.SpatialUnit{
		unitAt("BH1", 0, 0, 0, 2, strongSandstone("Strong SANDSTONE")),
		unitAt("BH2", 5, 0, 0, 2, strongSandstone("Strong SANDSTONE")),
		unitAt("BH3", 0, 5, 0, 2, strongSandstone("Strong SANDSTONE")),
		unitAt("BH4", 300, 300, 0, 2, firmClay("Firm CLAY")),
	}
	target := spatial.Point3D{X: 2, Y: 2, Z: -1}

	got := InterpolateMaterialType(target, units, 3, MethodIDW)

	assert.Equal(t, models.MaterialTypeRock, got)
}

func TestIDWCoincidentSampleWins(t *testing.T) {
	// a sample at the target location is ground truth even when every other
	// neighbor disagrees
	units := []models.SpatialUnit{
		unitAt("BH1", 10, 0, 0, 2, strongSandstone("Strong SANDSTONE")),
		unitAt("BH2", 1, 0, 0, 2, firmClay("Firm CLAY")),
		unitAt("BH3", 2, 0, 0, 2, firmClay("Firm CLAY")),
		unitAt("BH4", 0, 1, 0, 2, firmClay("Firm CLAY")),
	}
	target := units[0].MidPoint()

	got := InterpolateMaterialType(target, units, 4, MethodIDW)

	assert.Equal(t, models.MaterialTypeRock, got)
}

func TestIDWTieGoesToSoil(t *testing.T) {
	// symmetric neighbors, equal weights on both sides
	units := []models.SpatialUnit{
		unitAt("BH1", -10, 0, 0, 2, firmClay("Firm CLAY")),
		unitAt("BH2", 10, 0, 0, 2, strongSandstone("Strong SANDSTONE")),
	}
	target := spatial.Point3D{X: 0, Y: 0, Z: -1}

	got := InterpolateMaterialType(target, units, 2, MethodIDW)

	assert.Equal(t, models.MaterialTypeSoil, got)
}

func TestInterpolateEmptyDefaultsToSoil(t *testing.T) {
	target := spatial.Point3D{X: 0, Y: 0, Z: 0}

	assert.Equal(t, models.MaterialTypeSoil, InterpolateMaterialType(target, nil, 5, MethodIDW))
	assert.Equal(t, models.MaterialTypeSoil, InterpolateMaterialType(target, nil, 5, MethodNearestNeighbor))
}

func TestNearestNeighborPredict(t *testing.T) {
	units := []models.SpatialUnit{
		unitAt("BH1", 0, 0, 0, 2, strongSandstone("Strong SANDSTONE")),
		unitAt("BH2", 50, 0, 0, 2, firmClay("Firm CLAY")),
	}

	near := spatial.Point3D{X: 1, Y: 0, Z: -1}
	far := spatial.Point3D{X: 49, Y: 0, Z: -1}

	assert.Equal(t, models.MaterialTypeRock, InterpolateMaterialType(near, units, 1, MethodNearestNeighbor))
	assert.Equal(t, models.MaterialTypeSoil, InterpolateMaterialType(far, units, 1, MethodNearestNeighbor))
}

func TestIDWNeighborLimit(t *testing.T) {
	// the two nearest units are clay, so with k=2 the rock units never vote;
	// widening k lets the four rock units outweigh them
	units := []models.SpatialUnit{
		unitAt("BH1", 3, 0, 0, 2, firmClay("Firm CLAY")),
		unitAt("BH2", 3.5, 0, 0, 2, firmClay("Firm CLAY")),
		unitAt("BH3", 4, 0, 0, 2, strongSandstone("Strong SANDSTONE")),
		unitAt("BH4", 4, 1, 0, 2, strongSandstone("Strong SANDSTONE")),
		unitAt("BH5", 4, -1, 0, 2, strongSandstone("Strong SANDSTONE")),
		unitAt("BH6", -4, 0, 0, 2, strongSandstone("Strong SANDSTONE")),
	}
	target := spatial.Point3D{X: 0, Y: 0, Z: -1}

	assert.Equal(t, models.MaterialTypeSoil, InterpolateMaterialType(target, units, 2, MethodIDW))
	assert.Equal(t, models.MaterialTypeRock, InterpolateMaterialType(target, units, 6, MethodIDW))
}

func TestInterpolateIDWPowerSharpensLocality(t *testing.T) {
	// one rock unit very close, two clay units a bit farther: a higher power
	// concentrates weight on the nearest sample
	units := []models.SpatialUnit{
		unitAt("BH1", 2, 0, 0, 2, strongSandstone("Strong SANDSTONE")),
		unitAt("BH2", 3, 0, 0, 2, firmClay("Firm CLAY")),
		unitAt("BH3", 0, 3, 0, 2, firmClay("Firm CLAY")),
	}
	target := spatial.Point3D{X: 0, Y: 0, Z: -1}

	// power 1: rock 1/2 vs clay 1/3+1/3 -> soil wins
	assert.Equal(t, models.MaterialTypeSoil, InterpolateIDW(target, units, 3, 1.0))
	// power 3: rock 1/8 vs clay 2/27 -> rock wins
	assert.Equal(t, models.MaterialTypeRock, InterpolateIDW(target, units, 3, 3.0))
}

func TestIDWNonPositiveKUsesAllUnits(t *testing.T) {
	units := []models.SpatialUnit{
		unitAt("BH1", 1, 0, 0, 2, firmClay("Firm CLAY")),
		unitAt("BH2", 2, 0, 0, 2, strongSandstone("Strong SANDSTONE")),
		unitAt("BH3", 2.5, 0, 0, 2, strongSandstone("Strong SANDSTONE")),
	}
	target := spatial.Point3D{X: 3, Y: 0, Z: -1}

	// both rock units outweigh the single distant clay unit
	assert.Equal(t, models.MaterialTypeRock, InterpolateMaterialType(target, units, 0, MethodIDW))
}
