package service

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/google/uuid"

	"github.com/stratigo/borehole-backend-go/internal/geology"
	"github.com/stratigo/borehole-backend-go/internal/models"
	"github.com/stratigo/borehole-backend-go/internal/repository"
	"github.com/stratigo/borehole-backend-go/internal/spatial"
)

// AnalysisService orchestrates analysis runs over a site's stored boreholes
type AnalysisService struct {
	repo *repository.BoreholeRepository
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(repo *repository.BoreholeRepository) *AnalysisService {
	return &AnalysisService{repo: repo}
}

// RunInfo tags one analysis run
type RunInfo struct {
	RunID string `json:"run_id"`
	Site  string `json:"site"`
}

func newRun(site string) RunInfo {
	return RunInfo{RunID: uuid.NewString(), Site: site}
}

// loadSite assembles a site's intervals into unit-identification entries and
// spatial units. Input order follows borehole name then depth, matching the
// repository's stable ordering, so repeated runs see the same order.
func (s *AnalysisService) loadSite(site string) ([]models.BoreholeEntry, []models.SpatialUnit, error) {
	boreholes, err := s.repo.GetBoreholesBySite(site)
	if err != nil {
		return nil, nil, err
	}
	if len(boreholes) == 0 {
		return nil, nil, nil
	}

	byID := make(map[int64]*models.Borehole, len(boreholes))
	for i := range boreholes {
		byID[boreholes[i].ID] = &boreholes[i]
	}

	intervals, err := s.repo.GetIntervalsBySite(site)
	if err != nil {
		return nil, nil, err
	}

	entries := make([]models.BoreholeEntry, 0, len(intervals))
	units := make([]models.SpatialUnit, 0, len(intervals))

	for _, iv := range intervals {
		b, ok := byID[iv.BoreholeID]
		if !ok {
			return nil, nil, fmt.Errorf("interval %d references unknown borehole %d", iv.ID, iv.BoreholeID)
		}

		entries = append(entries, models.BoreholeEntry{
			BoreholeID:  b.Name,
			DepthTop:    iv.DepthTop,
			DepthBottom: iv.DepthBottom,
			Description: iv.Description,
		})
		units = append(units, models.SpatialUnit{
			BoreholeID:   b.Name,
			Location:     b.Collar(),
			DepthTop:     iv.DepthTop,
			DepthBottom:  iv.DepthBottom,
			Description:  iv.Description,
			MaterialType: iv.Description.MaterialType,
		})
	}

	return entries, units, nil
}

// UnitResult is a unit-identification run result
type UnitResult struct {
	RunInfo
	Summary models.UnitSummary `json:"summary"`
}

// IdentifyUnits runs unit identification over a site's stored intervals, or
// over an inline batch when the request carries one
func (s *AnalysisService) IdentifyUnits(req models.IdentifyUnitsRequest) (*UnitResult, error) {
	var entries []models.BoreholeEntry
	var err error

	if len(req.Entries) > 0 {
		entries, err = batchEntries(req.Entries)
	} else {
		entries, _, err = s.loadSite(req.Site)
	}
	if err != nil {
		return nil, err
	}

	summary := geology.IdentifyUnits(entries)
	log.Printf("[AnalysisService] site=%s identified %d units from %d entries", req.Site, len(summary.Units), len(entries))

	return &UnitResult{RunInfo: newRun(req.Site), Summary: summary}, nil
}

// batchEntries converts inline request entries to unit-identification input
func batchEntries(batch []models.BatchEntry) ([]models.BoreholeEntry, error) {
	entries := make([]models.BoreholeEntry, 0, len(batch))
	for i, e := range batch {
		desc, ok := e.Description.ToDescription()
		if !ok {
			return nil, fmt.Errorf("entry %d: unknown material type %q", i, e.Description.MaterialType)
		}
		entries = append(entries, models.BoreholeEntry{
			BoreholeID:  e.BoreholeID,
			DepthTop:    e.DepthTop,
			DepthBottom: e.DepthBottom,
			Description: desc,
		})
	}
	return entries, nil
}

// ClusterResult is a density-clustering run result with quality metrics
type ClusterResult struct {
	RunInfo
	Result  models.ClusterResult     `json:"result"`
	Metrics models.ClusteringMetrics `json:"metrics"`
}

// ClusterSite density-clusters a site's unit midpoints and evaluates the
// clustering quality
func (s *AnalysisService) ClusterSite(req models.ClusterRequest) (*ClusterResult, error) {
	_, units, err := s.loadSite(req.Site)
	if err != nil {
		return nil, err
	}

	result := geology.Cluster(units, req.Epsilon, req.MinPoints)
	metrics := geology.CalculateClusteringMetrics(units, result.Labels)
	log.Printf("[AnalysisService] site=%s clusters=%d noise=%d grade=%s",
		req.Site, result.NumClusters, result.NumNoise, metrics.QualityGrade)

	return &ClusterResult{RunInfo: newRun(req.Site), Result: result, Metrics: metrics}, nil
}

// InterpolationResult is a material prediction with its quality assessment
type InterpolationResult struct {
	RunInfo
	MaterialType string                      `json:"material_type"`
	Quality      models.InterpolationQuality `json:"quality"`
	QualityGrade string                      `json:"quality_grade"`
	HighQuality  bool                        `json:"high_quality"`
}

// Interpolate predicts the material class at a target point and scores the
// prediction's reliability, including the LOO cross-validation error
func (s *AnalysisService) Interpolate(req models.InterpolateRequest) (*InterpolationResult, error) {
	_, units, err := s.loadSite(req.Site)
	if err != nil {
		return nil, err
	}

	k := req.K
	if k <= 0 {
		k = 5
	}

	method := geology.MethodIDW
	if req.Method == "nearest" {
		method = geology.MethodNearestNeighbor
	}

	target := spatial.Point3D{X: req.X, Y: req.Y, Z: req.Z}
	predicted := geology.InterpolateMaterialType(target, units, k, method)
	quality := geology.CalculateInterpolationQuality(target, units, k)
	quality = geology.AttachCrossValidation(quality, units, k)

	return &InterpolationResult{
		RunInfo:      newRun(req.Site),
		MaterialType: predicted.String(),
		Quality:      quality,
		QualityGrade: geology.QualityGrade(quality),
		HighQuality:  geology.IsHighQuality(quality),
	}, nil
}

// UncertaintyResult is a boundary-uncertainty run result
type UncertaintyResult struct {
	RunInfo
	UnitID      int                        `json:"unit_id"`
	Uncertainty models.BoundaryUncertainty `json:"uncertainty"`
}

// BoundaryUncertainty computes confidence intervals for one logged interval's
// boundaries from the other observations of the same geological unit: the
// site is unit-identified first, then the target's unit-mates become the
// neighbor set.
func (s *AnalysisService) BoundaryUncertainty(req models.UncertaintyRequest) (*UncertaintyResult, error) {
	entries, units, err := s.loadSite(req.Site)
	if err != nil {
		return nil, err
	}

	targetIdx := -1
	for i, e := range entries {
		if e.BoreholeID == req.BoreholeID &&
			math.Abs(e.DepthTop-req.DepthTop) < 1e-6 &&
			math.Abs(e.DepthBottom-req.DepthBottom) < 1e-6 {
			targetIdx = i
			break
		}
	}
	if targetIdx < 0 {
		return nil, errors.New("target interval not found")
	}

	summary := geology.IdentifyUnits(entries)
	unitID := summary.EntryToUnit[targetIdx]

	var nearby []models.SpatialUnit
	for i := range entries {
		if i != targetIdx && summary.EntryToUnit[i] == unitID {
			nearby = append(nearby, units[i])
		}
	}

	confidence := req.ConfidenceLevel
	if confidence == 0 {
		confidence = 0.95
	}

	uncertainty := geology.CalculateBoundaryUncertainty(units[targetIdx], nearby, confidence)

	return &UncertaintyResult{
		RunInfo:     newRun(req.Site),
		UnitID:      unitID,
		Uncertainty: uncertainty,
	}, nil
}

// CrossValidationResult is a LOO cross-validation run result
type CrossValidationResult struct {
	RunInfo
	Result   models.CrossValidationResult `json:"result"`
	Reliable bool                         `json:"reliable"`
}

// CrossValidate runs leave-one-out cross-validation over a site's units
func (s *AnalysisService) CrossValidate(req models.CrossValidateRequest) (*CrossValidationResult, error) {
	_, units, err := s.loadSite(req.Site)
	if err != nil {
		return nil, err
	}

	k := req.K
	if k <= 0 {
		k = 5
	}

	result := geology.CrossValidate(units, k)
	log.Printf("[AnalysisService] site=%s cross-validation accuracy=%.3f (%d/%d)",
		req.Site, result.Accuracy, result.CorrectPredictions, result.TotalPredictions)

	return &CrossValidationResult{RunInfo: newRun(req.Site), Result: result, Reliable: result.Reliable()}, nil
}
