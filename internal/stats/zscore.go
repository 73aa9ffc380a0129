package stats

import "math"

// ZCritical returns the two-sided critical z value for a confidence level.
// Only the levels engineers actually request are tabulated; anything else
// falls back to the 90% value.
func ZCritical(confidenceLevel float64) float64 {
	switch confidenceLevel {
	case 0.80:
		return 1.282
	case 0.90:
		return 1.645
	case 0.95:
		return 1.960
	case 0.99:
		return 2.576
	default:
		return 1.645
	}
}

// MarginOfError calculates the confidence-interval half width for a sample of
// size n with the given standard deviation
func MarginOfError(stdDev float64, n int, confidenceLevel float64) float64 {
	if n <= 0 {
		return 0
	}
	return ZCritical(confidenceLevel) * stdDev / math.Sqrt(float64(n))
}
