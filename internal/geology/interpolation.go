package geology

import (
	"math"
	"sort"

	"github.com/stratigo/borehole-backend-go/internal/models"
	"github.com/stratigo/borehole-backend-go/internal/spatial"
)

// InterpolationMethod selects the spatial prediction strategy
type InterpolationMethod int

const (
	// MethodNearestNeighbor returns the material of the single closest unit
	MethodNearestNeighbor InterpolationMethod = iota
	// MethodIDW takes an inverse-distance-weighted vote over k neighbors
	MethodIDW
)

// DefaultIDWPower is the inverse-distance exponent used when the caller does
// not override it
const DefaultIDWPower = 2.0

// InterpolateMaterialType predicts the material class at an arbitrary point
// from the k nearest units. With no units at all the prediction defaults to
// soil, the conservative assumption for ground models.
func InterpolateMaterialType(target spatial.Point3D, units []models.SpatialUnit, k int, method InterpolationMethod) models.MaterialType {
	switch method {
	case MethodNearestNeighbor:
		return nearestNeighborPredict(target, units)
	default:
		return idwPredict(target, units, k, DefaultIDWPower)
	}
}

// InterpolateIDW is the IDW strategy with an explicit power parameter
func InterpolateIDW(target spatial.Point3D, units []models.SpatialUnit, k int, power float64) models.MaterialType {
	return idwPredict(target, units, k, power)
}

func nearestNeighborPredict(target spatial.Point3D, units []models.SpatialUnit) models.MaterialType {
	if len(units) == 0 {
		return models.MaterialTypeSoil
	}

	best := 0
	bestDist := spatial.Distance(target, units[0].MidPoint())
	for i := 1; i < len(units); i++ {
		d := spatial.Distance(target, units[i].MidPoint())
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return units[best].MaterialType
}

func idwPredict(target spatial.Point3D, units []models.SpatialUnit, k int, power float64) models.MaterialType {
	if len(units) == 0 {
		return models.MaterialTypeSoil
	}

	neighbors := nearestUnits(target, units, k)

	var soilWeight, rockWeight float64
	for _, nb := range neighbors {
		// a coincident sample is ground truth, not a vote
		if nb.distance < coincidentEps {
			return units[nb.index].MaterialType
		}

		w := 1.0 / math.Pow(nb.distance, power)
		if units[nb.index].MaterialType == models.MaterialTypeRock {
			rockWeight += w
		} else {
			soilWeight += w
		}
	}

	// ties go to soil
	if rockWeight > soilWeight {
		return models.MaterialTypeRock
	}
	return models.MaterialTypeSoil
}

type unitDistance struct {
	index    int
	distance float64
}

// nearestUnits returns up to k units ordered by distance to the target.
// The sort is stable so equidistant units keep their input order.
func nearestUnits(target spatial.Point3D, units []models.SpatialUnit, k int) []unitDistance {
	distances := make([]unitDistance, len(units))
	for i := range units {
		distances[i] = unitDistance{index: i, distance: spatial.Distance(target, units[i].MidPoint())}
	}

	sort.SliceStable(distances, func(a, b int) bool {
		return distances[a].distance < distances[b].distance
	})

	if k < len(distances) && k > 0 {
		distances = distances[:k]
	}
	return distances
}
