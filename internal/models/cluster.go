package models

// NoiseLabel marks a point that does not belong to any density cluster
const NoiseLabel = -1

// ClusterResult holds density-clustering output. Labels[i] is -1 for noise or
// the 0-based cluster ID of point i.
type ClusterResult struct {
	Labels      []int `json:"labels"`
	NumClusters int   `json:"num_clusters"`
	NumNoise    int   `json:"num_noise"`
}

// ClusteringMetrics holds clustering-quality statistics. DaviesBouldinIndex is
// +Inf and CalinskiHarabaszIndex 0 when fewer than two clusters exist.
type ClusteringMetrics struct {
	SilhouetteScore       float64 `json:"silhouette_score"`
	DaviesBouldinIndex    float64 `json:"davies_bouldin_index"`
	CalinskiHarabaszIndex float64 `json:"calinski_harabasz_index"`
	NumClusters           int     `json:"num_clusters"`
	NumNoise              int     `json:"num_noise"`
	QualityGrade          string  `json:"quality_grade"`
}
