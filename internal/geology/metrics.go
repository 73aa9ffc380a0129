package geology

import (
	"math"

	"github.com/stratigo/borehole-backend-go/internal/models"
	"github.com/stratigo/borehole-backend-go/internal/spatial"
)

// coincidentEps guards divisions by near-zero distances throughout the
// quality metrics
const coincidentEps = 1e-10

// CalculateClusteringMetrics computes silhouette, Davies-Bouldin and
// Calinski-Harabasz statistics for a labelled unit set, plus a combined
// qualitative grade. Noise points are excluded from all three metrics.
func CalculateClusteringMetrics(units []models.SpatialUnit, labels []int) models.ClusteringMetrics {
	points := make([]spatial.Point3D, len(units))
	for i := range units {
		points[i] = units[i].MidPoint()
	}
	return CalculatePointMetrics(points, labels)
}

// CalculatePointMetrics is CalculateClusteringMetrics over raw points
func CalculatePointMetrics(points []spatial.Point3D, labels []int) models.ClusteringMetrics {
	numClusters := 0
	numNoise := 0
	for _, l := range labels {
		if l == models.NoiseLabel {
			numNoise++
		} else if l+1 > numClusters {
			numClusters = l + 1
		}
	}

	metrics := models.ClusteringMetrics{
		NumClusters: numClusters,
		NumNoise:    numNoise,
	}

	metrics.SilhouetteScore = silhouetteScore(points, labels, numClusters)
	metrics.DaviesBouldinIndex = daviesBouldinIndex(points, labels, numClusters)
	metrics.CalinskiHarabaszIndex = calinskiHarabaszIndex(points, labels, numClusters)
	metrics.QualityGrade = qualityGrade(metrics)

	return metrics
}

// clusterMembers collects member point indices per cluster, noise excluded
func clusterMembers(labels []int, numClusters int) [][]int {
	members := make([][]int, numClusters)
	for i, l := range labels {
		if l >= 0 && l < numClusters {
			members[l] = append(members[l], i)
		}
	}
	return members
}

// silhouetteScore is the mean silhouette over all points for which a value is
// defined. Undefined with fewer than two clusters (returns 0).
func silhouetteScore(points []spatial.Point3D, labels []int, numClusters int) float64 {
	if numClusters < 2 {
		return 0.0
	}

	members := clusterMembers(labels, numClusters)

	var sum float64
	var count int

	for i, l := range labels {
		if l < 0 {
			continue
		}

		// a: mean distance to the other members of the own cluster
		own := members[l]
		if len(own) < 2 {
			continue
		}
		var aSum float64
		for _, j := range own {
			if j == i {
				continue
			}
			aSum += spatial.Distance(points[i], points[j])
		}
		a := aSum / float64(len(own)-1)

		// b: smallest mean distance to any other cluster's members
		b := math.Inf(1)
		for c := 0; c < numClusters; c++ {
			if c == l || len(members[c]) == 0 {
				continue
			}
			var dSum float64
			for _, j := range members[c] {
				dSum += spatial.Distance(points[i], points[j])
			}
			mean := dSum / float64(len(members[c]))
			if mean < b {
				b = mean
			}
		}
		if math.IsInf(b, 1) {
			continue
		}

		sum += (b - a) / math.Max(a, b)
		count++
	}

	if count == 0 {
		return 0.0
	}
	return sum / float64(count)
}

// daviesBouldinIndex is the mean over clusters of the worst
// (dispersion_i+dispersion_j)/centroid_distance ratio. Undefined with fewer
// than two clusters (returns +Inf). Cluster pairs with coincident centroids
// are skipped.
func daviesBouldinIndex(points []spatial.Point3D, labels []int, numClusters int) float64 {
	if numClusters < 2 {
		return math.Inf(1)
	}

	members := clusterMembers(labels, numClusters)

	centroids := make([]spatial.Point3D, numClusters)
	dispersions := make([]float64, numClusters)
	for c := 0; c < numClusters; c++ {
		pts := make([]spatial.Point3D, 0, len(members[c]))
		for _, j := range members[c] {
			pts = append(pts, points[j])
		}
		centroids[c] = spatial.Centroid(pts)

		var dSum float64
		for _, p := range pts {
			dSum += spatial.Distance(p, centroids[c])
		}
		if len(pts) > 0 {
			dispersions[c] = dSum / float64(len(pts))
		}
	}

	var sum float64
	for i := 0; i < numClusters; i++ {
		maxRatio := 0.0
		for j := 0; j < numClusters; j++ {
			if j == i {
				continue
			}
			dist := spatial.Distance(centroids[i], centroids[j])
			if dist < coincidentEps {
				continue
			}
			ratio := (dispersions[i] + dispersions[j]) / dist
			if ratio > maxRatio {
				maxRatio = ratio
			}
		}
		sum += maxRatio
	}

	return sum / float64(numClusters)
}

// calinskiHarabaszIndex is the between/within group sum-of-squares ratio
// (BGSS/(k-1)) / (WGSS/(n-k)). Undefined with fewer than two clusters
// (returns 0); +Inf for a degenerate zero within-cluster scatter.
func calinskiHarabaszIndex(points []spatial.Point3D, labels []int, numClusters int) float64 {
	if numClusters < 2 {
		return 0.0
	}

	members := clusterMembers(labels, numClusters)

	var nonNoise []spatial.Point3D
	for i, l := range labels {
		if l >= 0 {
			nonNoise = append(nonNoise, points[i])
		}
	}
	n := len(nonNoise)
	overall := spatial.Centroid(nonNoise)

	var bgss, wgss float64
	for c := 0; c < numClusters; c++ {
		pts := make([]spatial.Point3D, 0, len(members[c]))
		for _, j := range members[c] {
			pts = append(pts, points[j])
		}
		centroid := spatial.Centroid(pts)

		d := spatial.Distance(centroid, overall)
		bgss += float64(len(pts)) * d * d

		for _, p := range pts {
			dm := spatial.Distance(p, centroid)
			wgss += dm * dm
		}
	}

	if wgss < coincidentEps {
		return math.Inf(1)
	}

	k := float64(numClusters)
	return (bgss / (k - 1)) / (wgss / (float64(n) - k))
}

// qualityGrade grades a metric set by how many of the three indicators pass
// their conventional good-clustering thresholds
func qualityGrade(m models.ClusteringMetrics) string {
	passed := 0
	if m.SilhouetteScore > 0.5 {
		passed++
	}
	if m.DaviesBouldinIndex < 1.0 {
		passed++
	}
	if m.CalinskiHarabaszIndex > 100 {
		passed++
	}

	switch passed {
	case 3:
		return "excellent"
	case 2:
		return "good"
	case 1:
		return "fair"
	default:
		return "poor"
	}
}
