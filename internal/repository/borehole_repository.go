package repository

import (
	"database/sql"
	"fmt"

	"github.com/stratigo/borehole-backend-go/internal/models"
)

// BoreholeRepository handles database operations for boreholes and their
// logged intervals
type BoreholeRepository struct {
	db *sql.DB
}

// NewBoreholeRepository creates a new borehole repository
func NewBoreholeRepository(db *sql.DB) *BoreholeRepository {
	return &BoreholeRepository{db: db}
}

// CreateBorehole inserts a borehole and returns its ID
func (r *BoreholeRepository) CreateBorehole(b *models.Borehole) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO boreholes (site, name, easting, northing, elevation)
		VALUES (?, ?, ?, ?, ?)`,
		b.Site, b.Name, b.Easting, b.Northing, b.Elevation,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert borehole: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get borehole id: %w", err)
	}
	return id, nil
}

// GetBoreholeByID retrieves a single borehole
func (r *BoreholeRepository) GetBoreholeByID(id int64) (*models.Borehole, error) {
	row := r.db.QueryRow(`
		SELECT id, site, name, easting, northing, elevation, created_at
		FROM boreholes WHERE id = ?`, id)

	var b models.Borehole
	if err := row.Scan(&b.ID, &b.Site, &b.Name, &b.Easting, &b.Northing, &b.Elevation, &b.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan borehole: %w", err)
	}
	return &b, nil
}

// GetBoreholesBySite retrieves all boreholes for a site, ordered by name
func (r *BoreholeRepository) GetBoreholesBySite(site string) ([]models.Borehole, error) {
	rows, err := r.db.Query(`
		SELECT id, site, name, easting, northing, elevation, created_at
		FROM boreholes WHERE site = ? ORDER BY name`, site)
	if err != nil {
		return nil, fmt.Errorf("failed to query boreholes: %w", err)
	}
	defer rows.Close()

	var boreholes []models.Borehole
	for rows.Next() {
		var b models.Borehole
		if err := rows.Scan(&b.ID, &b.Site, &b.Name, &b.Easting, &b.Northing, &b.Elevation, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan borehole: %w", err)
		}
		boreholes = append(boreholes, b)
	}

	return boreholes, rows.Err()
}

// CreateInterval inserts a logged interval for a borehole
func (r *BoreholeRepository) CreateInterval(iv *models.Interval) (int64, error) {
	desc := iv.Description

	result, err := r.db.Exec(`
		INSERT INTO intervals (
			borehole_id, depth_top, depth_bottom, raw_description,
			material_type, primary_soil_type, primary_rock_type,
			consistency, density, rock_strength, weathering_grade
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		iv.BoreholeID, iv.DepthTop, iv.DepthBottom, iv.RawDescription,
		desc.MaterialType.String(),
		optString(desc.PrimarySoilType),
		optString(desc.PrimaryRockType),
		optString(desc.Consistency),
		optString(desc.Density),
		optString(desc.RockStrength),
		optString(desc.WeatheringGrade),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert interval: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get interval id: %w", err)
	}
	return id, nil
}

// GetIntervalsByBorehole retrieves a borehole's intervals ordered by depth
func (r *BoreholeRepository) GetIntervalsByBorehole(boreholeID int64) ([]models.Interval, error) {
	rows, err := r.db.Query(`
		SELECT id, borehole_id, depth_top, depth_bottom, raw_description,
			material_type, primary_soil_type, primary_rock_type,
			consistency, density, rock_strength, weathering_grade, created_at
		FROM intervals WHERE borehole_id = ? ORDER BY depth_top`, boreholeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query intervals: %w", err)
	}
	defer rows.Close()

	return scanIntervals(rows)
}

// GetIntervalsBySite retrieves every interval at a site, ordered by borehole
// name then depth, so analysis input order is stable across runs
func (r *BoreholeRepository) GetIntervalsBySite(site string) ([]models.Interval, error) {
	rows, err := r.db.Query(`
		SELECT i.id, i.borehole_id, i.depth_top, i.depth_bottom, i.raw_description,
			i.material_type, i.primary_soil_type, i.primary_rock_type,
			i.consistency, i.density, i.rock_strength, i.weathering_grade, i.created_at
		FROM intervals i
		JOIN boreholes b ON b.id = i.borehole_id
		WHERE b.site = ?
		ORDER BY b.name, i.depth_top`, site)
	if err != nil {
		return nil, fmt.Errorf("failed to query site intervals: %w", err)
	}
	defer rows.Close()

	return scanIntervals(rows)
}

func scanIntervals(rows *sql.Rows) ([]models.Interval, error) {
	var intervals []models.Interval
	for rows.Next() {
		var iv models.Interval
		var materialType string
		var soilType, rockType, consistency, density, rockStrength, weathering sql.NullString

		if err := rows.Scan(
			&iv.ID, &iv.BoreholeID, &iv.DepthTop, &iv.DepthBottom, &iv.RawDescription,
			&materialType, &soilType, &rockType,
			&consistency, &density, &rockStrength, &weathering, &iv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan interval: %w", err)
		}

		iv.Description = buildDescription(iv.RawDescription, materialType,
			soilType, rockType, consistency, density, rockStrength, weathering)
		intervals = append(intervals, iv)
	}

	return intervals, rows.Err()
}

func buildDescription(raw, materialType string, soilType, rockType, consistency, density, rockStrength, weathering sql.NullString) models.ClassifiedDescription {
	desc := models.ClassifiedDescription{RawDescription: raw}
	desc.MaterialType, _ = models.ParseMaterialType(materialType)

	if soilType.Valid {
		if v, ok := models.ParseSoilType(soilType.String); ok {
			desc.PrimarySoilType = &v
		}
	}
	if rockType.Valid {
		if v, ok := models.ParseRockType(rockType.String); ok {
			desc.PrimaryRockType = &v
		}
	}
	if consistency.Valid {
		if v, ok := models.ParseConsistency(consistency.String); ok {
			desc.Consistency = &v
		}
	}
	if density.Valid {
		if v, ok := models.ParseDensity(density.String); ok {
			desc.Density = &v
		}
	}
	if rockStrength.Valid {
		if v, ok := models.ParseRockStrength(rockStrength.String); ok {
			desc.RockStrength = &v
		}
	}
	if weathering.Valid {
		if v, ok := models.ParseWeatheringGrade(weathering.String); ok {
			desc.WeatheringGrade = &v
		}
	}

	return desc
}

// optString converts an optional enum to a nullable column value
func optString[T fmt.Stringer](v *T) interface{} {
	if v == nil {
		return nil
	}
	return (*v).String()
}
