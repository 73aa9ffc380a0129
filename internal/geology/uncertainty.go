package geology

import (
	"math"

	"github.com/stratigo/borehole-backend-go/internal/models"
	"github.com/stratigo/borehole-backend-go/internal/spatial"
	"github.com/stratigo/borehole-backend-go/internal/stats"
)

// weight assigned to a neighbor whose collar coincides with the target's
const coincidentWeight = 1000.0

// CalculateBoundaryUncertainty estimates confidence intervals for a unit's
// boundary depths from nearby observations of the same unit. Neighbors are
// weighted by inverse horizontal collar distance. An empty neighbor list is
// not an error: it yields a fixed wide interval centered on the target's own
// depths with BoundaryQuality 0.2.
func CalculateBoundaryUncertainty(target models.SpatialUnit, nearby []models.SpatialUnit, confidenceLevel float64) models.BoundaryUncertainty {
	if len(nearby) == 0 {
		return models.BoundaryUncertainty{
			DepthTop:        interval(target.DepthTop, 2.0, confidenceLevel),
			DepthBottom:     interval(target.DepthBottom, 2.0, confidenceLevel),
			Thickness:       interval(target.Thickness(), 1.0, confidenceLevel),
			BoundaryQuality: 0.2,
		}
	}

	n := len(nearby)
	tops := make([]float64, n)
	bottoms := make([]float64, n)
	weights := make([]float64, n)
	minDistance := math.Inf(1)

	var weightSum float64
	for i, nb := range nearby {
		tops[i] = nb.DepthTop
		bottoms[i] = nb.DepthBottom

		d := spatial.HorizontalDistance(target.Location, nb.Location)
		if d < minDistance {
			minDistance = d
		}

		w := coincidentWeight
		if d >= coincidentEps {
			w = 1.0 / d
		}
		weights[i] = w
		weightSum += w
	}
	for i := range weights {
		weights[i] /= weightSum
	}

	topMean := stats.WeightedMean(tops, weights)
	bottomMean := stats.WeightedMean(bottoms, weights)
	topVar := stats.WeightedVariance(tops, weights)
	bottomVar := stats.WeightedVariance(bottoms, weights)

	topMargin := stats.MarginOfError(math.Sqrt(topVar), n, confidenceLevel)
	bottomMargin := stats.MarginOfError(math.Sqrt(bottomVar), n, confidenceLevel)

	// top and bottom are treated as independent, so thickness variance adds
	thicknessMean := bottomMean - topMean
	thicknessVar := topVar + bottomVar
	thicknessMargin := stats.MarginOfError(math.Sqrt(thicknessVar), n, confidenceLevel)

	return models.BoundaryUncertainty{
		DepthTop:        interval(topMean, topMargin, confidenceLevel),
		DepthBottom:     interval(bottomMean, bottomMargin, confidenceLevel),
		Thickness:       interval(thicknessMean, thicknessMargin, confidenceLevel),
		BoundaryQuality: boundaryQuality(n, minDistance),
	}
}

// boundaryQuality scores boundary confidence from neighbor support and
// proximity: saturates at five neighbors and decays over a 30 m scale
func boundaryQuality(n int, minDistance float64) float64 {
	support := math.Min(1.0, float64(n)/5.0)
	proximity := math.Exp(-minDistance / 30.0)
	return 0.3 + 0.4*support + 0.3*proximity
}

func interval(mean, margin, confidenceLevel float64) models.ConfidenceInterval {
	return models.ConfidenceInterval{
		LowerBound:      mean - margin,
		UpperBound:      mean + margin,
		Mean:            mean,
		ConfidenceLevel: confidenceLevel,
	}
}

// CalculateInterpolationQuality scores how trustworthy an interpolated
// prediction at the target point would be, from the proximity and material
// consistency of the k nearest units.
func CalculateInterpolationQuality(target spatial.Point3D, units []models.SpatialUnit, k int) models.InterpolationQuality {
	if len(units) == 0 {
		return models.InterpolationQuality{
			PredictionConfidence: 0,
			NearestDistance:      math.Inf(1),
			NumNeighbors:         0,
			Variance:             0,
		}
	}

	neighbors := nearestUnits(target, units, k)
	nearest := neighbors[0].distance

	soilCount := 0
	for _, nb := range neighbors {
		if units[nb.index].MaterialType == models.MaterialTypeSoil {
			soilCount++
		}
	}
	p := float64(soilCount) / float64(len(neighbors))
	variance := p * (1 - p)

	distanceFactor := math.Exp(-nearest / 50.0)
	consistencyFactor := 0.4
	switch {
	case variance < 0.1:
		consistencyFactor = 0.9
	case variance < 0.25:
		consistencyFactor = 0.7
	}

	return models.InterpolationQuality{
		PredictionConfidence: distanceFactor * consistencyFactor,
		NearestDistance:      nearest,
		NumNeighbors:         len(neighbors),
		Variance:             variance,
	}
}

// QualityGrade maps an interpolation quality to a coarse verbal grade
func QualityGrade(q models.InterpolationQuality) string {
	switch {
	case q.PredictionConfidence > 0.9 && q.NearestDistance < 20:
		return "excellent"
	case q.PredictionConfidence > 0.7 && q.NearestDistance < 50:
		return "good"
	case q.PredictionConfidence > 0.5:
		return "fair"
	default:
		return "poor"
	}
}

// IsHighQuality reports whether a prediction is trustworthy enough to use
// without additional boreholes
func IsHighQuality(q models.InterpolationQuality) bool {
	return q.PredictionConfidence > 0.7 && q.NearestDistance < 50
}

// CrossValidate runs leave-one-out cross-validation of IDW material
// prediction over the unit set: each unit is predicted from all others and
// compared against its logged material.
func CrossValidate(units []models.SpatialUnit, k int) models.CrossValidationResult {
	if len(units) == 0 {
		return models.CrossValidationResult{}
	}

	correct := 0
	training := make([]models.SpatialUnit, 0, len(units)-1)

	for i := range units {
		training = training[:0]
		training = append(training, units[:i]...)
		training = append(training, units[i+1:]...)

		predicted := idwPredict(units[i].MidPoint(), training, k, DefaultIDWPower)
		if predicted == units[i].MaterialType {
			correct++
		}
	}

	return models.CrossValidationResult{
		Accuracy:           float64(correct) / float64(len(units)),
		CorrectPredictions: correct,
		TotalPredictions:   len(units),
	}
}

// AttachCrossValidation annotates an interpolation quality with the LOO
// cross-validation error over the same unit set
func AttachCrossValidation(q models.InterpolationQuality, units []models.SpatialUnit, k int) models.InterpolationQuality {
	if len(units) == 0 {
		return q
	}
	cv := CrossValidate(units, k)
	errRate := 1.0 - cv.Accuracy
	q.CrossValidationError = &errRate
	return q
}
