package models

// ConfidenceInterval is a symmetric interval around a mean estimate
type ConfidenceInterval struct {
	LowerBound      float64 `json:"lower_bound"`
	UpperBound      float64 `json:"upper_bound"`
	Mean            float64 `json:"mean"`
	ConfidenceLevel float64 `json:"confidence_level"`
}

// Width returns the total interval width
func (ci ConfidenceInterval) Width() float64 {
	return ci.UpperBound - ci.LowerBound
}

// BoundaryUncertainty describes how well a unit's boundary depths are
// constrained by nearby boreholes. BoundaryQuality is in [0,1].
type BoundaryUncertainty struct {
	DepthTop        ConfidenceInterval `json:"depth_top"`
	DepthBottom     ConfidenceInterval `json:"depth_bottom"`
	Thickness       ConfidenceInterval `json:"thickness"`
	BoundaryQuality float64            `json:"boundary_quality"`
}

// InterpolationQuality describes how reliable a spatial prediction at a
// target point is. NearestDistance is +Inf when no units exist.
type InterpolationQuality struct {
	PredictionConfidence float64  `json:"prediction_confidence"`
	NearestDistance      float64  `json:"nearest_distance"`
	NumNeighbors         int      `json:"num_neighbors"`
	Variance             float64  `json:"variance"`
	CrossValidationError *float64 `json:"cross_validation_error,omitempty"`
}

// CrossValidationResult holds leave-one-out cross-validation accuracy
type CrossValidationResult struct {
	Accuracy           float64 `json:"accuracy"`
	CorrectPredictions int     `json:"correct_predictions"`
	TotalPredictions   int     `json:"total_predictions"`
}

// Reliable reports whether the cross-validated model meets the 0.8 accuracy bar
func (r CrossValidationResult) Reliable() bool {
	return r.Accuracy >= 0.8
}
