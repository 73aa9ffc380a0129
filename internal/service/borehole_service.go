package service

import (
	"errors"

	"github.com/stratigo/borehole-backend-go/internal/models"
	"github.com/stratigo/borehole-backend-go/internal/repository"
	"github.com/stratigo/borehole-backend-go/internal/spatial"
)

// BoreholeService handles business logic for boreholes and intervals
type BoreholeService struct {
	repo *repository.BoreholeRepository
}

// NewBoreholeService creates a new borehole service
func NewBoreholeService(repo *repository.BoreholeRepository) *BoreholeService {
	return &BoreholeService{repo: repo}
}

// CreateBorehole registers a borehole. Geodetic collars are projected onto
// the local site grid before storage so all downstream math stays metric.
func (s *BoreholeService) CreateBorehole(req models.CreateBoreholeRequest) (*models.Borehole, error) {
	b := models.Borehole{
		Site:      req.Site,
		Name:      req.Name,
		Elevation: req.Elevation,
	}

	switch {
	case req.Easting != nil && req.Northing != nil:
		b.Easting = *req.Easting
		b.Northing = *req.Northing
	case req.Latitude != nil && req.Longitude != nil && req.OriginLat != nil && req.OriginLon != nil:
		grid := spatial.NewSiteGrid(*req.OriginLat, *req.OriginLon)
		local := grid.ToLocal(*req.Latitude, *req.Longitude, req.Elevation)
		b.Easting = local.X
		b.Northing = local.Y
	default:
		return nil, errors.New("collar requires easting/northing or latitude/longitude with a site origin")
	}

	id, err := s.repo.CreateBorehole(&b)
	if err != nil {
		return nil, err
	}
	b.ID = id

	return &b, nil
}

// GetBoreholesBySite lists a site's boreholes
func (s *BoreholeService) GetBoreholesBySite(site string) ([]models.Borehole, error) {
	return s.repo.GetBoreholesBySite(site)
}

// GetBorehole retrieves a borehole with its intervals
func (s *BoreholeService) GetBorehole(id int64) (*models.Borehole, []models.Interval, error) {
	b, err := s.repo.GetBoreholeByID(id)
	if err != nil || b == nil {
		return b, nil, err
	}

	intervals, err := s.repo.GetIntervalsByBorehole(id)
	if err != nil {
		return nil, nil, err
	}
	return b, intervals, nil
}

// CreateInterval logs an interval against a borehole
func (s *BoreholeService) CreateInterval(boreholeID int64, req models.CreateIntervalRequest) (*models.Interval, error) {
	b, err := s.repo.GetBoreholeByID(boreholeID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, errors.New("borehole not found")
	}

	desc, ok := req.Description.ToDescription()
	if !ok {
		return nil, errors.New("unknown material type")
	}
	if req.DepthBottom < req.DepthTop {
		return nil, errors.New("depth_bottom must not be above depth_top")
	}

	iv := models.Interval{
		BoreholeID:     boreholeID,
		DepthTop:       req.DepthTop,
		DepthBottom:    req.DepthBottom,
		RawDescription: req.Description.RawDescription,
		Description:    desc,
	}

	id, err := s.repo.CreateInterval(&iv)
	if err != nil {
		return nil, err
	}
	iv.ID = id

	return &iv, nil
}
