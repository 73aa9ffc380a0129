package geology

import (
	"github.com/stratigo/borehole-backend-go/internal/models"
	"github.com/stratigo/borehole-backend-go/internal/spatial"
)

// internal label for points not yet visited; never escapes this file
const unclassified = -2

// Cluster runs density-based clustering over unit midpoints. epsilon is the
// neighborhood radius in meters; minPoints is the minimum neighbor count,
// excluding the point itself, required to seed or extend a cluster.
//
// Labels follow the usual DBSCAN convention: cluster IDs are assigned 0,1,...
// in discovery order, noise is -1. The algorithm is deterministic for a fixed
// input order.
func Cluster(units []models.SpatialUnit, epsilon float64, minPoints int) models.ClusterResult {
	points := make([]spatial.Point3D, len(units))
	for i := range units {
		points[i] = units[i].MidPoint()
	}
	return ClusterPoints(points, epsilon, minPoints)
}

// ClusterPoints is Cluster over raw points
func ClusterPoints(points []spatial.Point3D, epsilon float64, minPoints int) models.ClusterResult {
	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = unclassified
	}

	clusterID := 0
	for i := range points {
		if labels[i] != unclassified {
			continue
		}

		neighbors := regionQuery(points, i, epsilon)
		if len(neighbors) < minPoints {
			labels[i] = models.NoiseLabel
			continue
		}

		expandCluster(points, labels, i, neighbors, clusterID, epsilon, minPoints)
		clusterID++
	}

	numNoise := 0
	for _, l := range labels {
		if l == models.NoiseLabel {
			numNoise++
		}
	}

	return models.ClusterResult{
		Labels:      labels,
		NumClusters: clusterID,
		NumNoise:    numNoise,
	}
}

// expandCluster grows a cluster from a core point using an explicit worklist.
// Noise points reached from a core point are promoted as border points without
// further expansion; unclassified points that turn out to be core points feed
// their neighbors back into the worklist, deduplicated.
func expandCluster(points []spatial.Point3D, labels []int, seed int, neighbors []int, clusterID int, epsilon float64, minPoints int) {
	labels[seed] = clusterID

	worklist := make([]int, 0, len(neighbors))
	queued := make([]bool, len(points))
	queued[seed] = true

	for _, n := range neighbors {
		if !queued[n] {
			queued[n] = true
			worklist = append(worklist, n)
		}
	}

	for idx := 0; idx < len(worklist); idx++ {
		p := worklist[idx]

		if labels[p] == models.NoiseLabel {
			// border point: joins the cluster but does not expand it
			labels[p] = clusterID
			continue
		}
		if labels[p] != unclassified {
			continue
		}

		labels[p] = clusterID

		pNeighbors := regionQuery(points, p, epsilon)
		if len(pNeighbors) >= minPoints {
			for _, n := range pNeighbors {
				if !queued[n] {
					queued[n] = true
					worklist = append(worklist, n)
				}
			}
		}
	}
}

// regionQuery returns the indices of all other points within epsilon of point i
func regionQuery(points []spatial.Point3D, i int, epsilon float64) []int {
	var neighbors []int
	for j := range points {
		if j == i {
			continue
		}
		if spatial.Distance(points[i], points[j]) <= epsilon {
			neighbors = append(neighbors, j)
		}
	}
	return neighbors
}
