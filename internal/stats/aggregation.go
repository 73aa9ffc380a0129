package stats

import (
	"math"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Sum calculates the sum of a slice of float64 values
func Sum(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum
}

// Min returns the minimum value
func Min(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// WeightedMean calculates the weighted mean
func WeightedMean(values, weights []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sumWeighted, sumWeights float64
	for i, v := range values {
		w := 1.0
		if i < len(weights) {
			w = weights[i]
		}
		sumWeighted += v * w
		sumWeights += w
	}

	if sumWeights == 0 {
		return Mean(values)
	}

	return sumWeighted / sumWeights
}

// Variance calculates the sample variance
func Variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	mean := Mean(values)
	var sumSquaredDiff float64
	for _, v := range values {
		diff := v - mean
		sumSquaredDiff += diff * diff
	}

	return sumSquaredDiff / float64(len(values)-1)
}

// WeightedVariance calculates the weighted variance around the weighted mean
func WeightedVariance(values, weights []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	mean := WeightedMean(values, weights)
	var sumWeightedSquaredDiff, sumWeights float64

	for i, v := range values {
		w := 1.0
		if i < len(weights) {
			w = weights[i]
		}
		diff := v - mean
		sumWeightedSquaredDiff += w * diff * diff
		sumWeights += w
	}

	if sumWeights == 0 {
		return Variance(values)
	}

	return sumWeightedSquaredDiff / sumWeights
}

// StdDev calculates the sample standard deviation
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// WeightedStdDev calculates the weighted standard deviation
func WeightedStdDev(values, weights []float64) float64 {
	return math.Sqrt(WeightedVariance(values, weights))
}
