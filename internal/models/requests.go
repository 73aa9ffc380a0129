package models

// CreateBoreholeRequest is the payload for registering a borehole. Collar
// position is given either in the local site grid (easting/northing) or as
// WGS84 coordinates plus the site origin to project against.
type CreateBoreholeRequest struct {
	Site      string   `json:"site" binding:"required"`
	Name      string   `json:"name" binding:"required"`
	Easting   *float64 `json:"easting"`
	Northing  *float64 `json:"northing"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	OriginLat *float64 `json:"origin_lat"`
	OriginLon *float64 `json:"origin_lon"`
	Elevation float64  `json:"elevation"`
}

// ClassificationPayload carries a classified description over the wire with
// enum values in their string forms
type ClassificationPayload struct {
	RawDescription  string `json:"raw_description"`
	MaterialType    string `json:"material_type" binding:"required"`
	PrimarySoilType string `json:"primary_soil_type"`
	PrimaryRockType string `json:"primary_rock_type"`
	Consistency     string `json:"consistency"`
	Density         string `json:"density"`
	RockStrength    string `json:"rock_strength"`
	WeatheringGrade string `json:"weathering_grade"`
}

// ToDescription converts the wire form to a ClassifiedDescription.
// Unrecognized optional values are dropped rather than rejected.
func (p *ClassificationPayload) ToDescription() (ClassifiedDescription, bool) {
	desc := ClassifiedDescription{RawDescription: p.RawDescription}

	mt, ok := ParseMaterialType(p.MaterialType)
	if !ok {
		return desc, false
	}
	desc.MaterialType = mt

	if v, ok := ParseSoilType(p.PrimarySoilType); ok {
		desc.PrimarySoilType = &v
	}
	if v, ok := ParseRockType(p.PrimaryRockType); ok {
		desc.PrimaryRockType = &v
	}
	if v, ok := ParseConsistency(p.Consistency); ok {
		desc.Consistency = &v
	}
	if v, ok := ParseDensity(p.Density); ok {
		desc.Density = &v
	}
	if v, ok := ParseRockStrength(p.RockStrength); ok {
		desc.RockStrength = &v
	}
	if v, ok := ParseWeatheringGrade(p.WeatheringGrade); ok {
		desc.WeatheringGrade = &v
	}

	return desc, true
}

// CreateIntervalRequest is the payload for logging an interval
type CreateIntervalRequest struct {
	DepthTop    float64               `json:"depth_top"`
	DepthBottom float64               `json:"depth_bottom"`
	Description ClassificationPayload `json:"description" binding:"required"`
}

// BatchEntry is one classified interval supplied inline with an analysis
// request instead of being read from storage
type BatchEntry struct {
	BoreholeID  string                `json:"borehole_id" binding:"required"`
	DepthTop    float64               `json:"depth_top"`
	DepthBottom float64               `json:"depth_bottom"`
	Description ClassificationPayload `json:"description" binding:"required"`
}

// IdentifyUnitsRequest selects the unit-identification input: either a stored
// site or an inline batch of entries
type IdentifyUnitsRequest struct {
	Site    string       `json:"site"`
	Entries []BatchEntry `json:"entries"`
}

// ClusterRequest selects a site and density-clustering parameters
type ClusterRequest struct {
	Site      string  `json:"site" binding:"required"`
	Epsilon   float64 `json:"epsilon" binding:"required"`
	MinPoints int     `json:"min_points" binding:"required"`
}

// InterpolateRequest asks for a material prediction at a target point
type InterpolateRequest struct {
	Site   string  `json:"site" binding:"required"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	K      int     `json:"k"`
	Method string  `json:"method"` // "nearest" or "idw" (default)
}

// UncertaintyRequest asks for boundary uncertainty of one logged interval,
// identified by borehole name and depth range, against the other observations
// of the same geological unit at the site
type UncertaintyRequest struct {
	Site            string  `json:"site" binding:"required"`
	BoreholeID      string  `json:"borehole_id" binding:"required"`
	DepthTop        float64 `json:"depth_top"`
	DepthBottom     float64 `json:"depth_bottom"`
	ConfidenceLevel float64 `json:"confidence_level"`
}

// CrossValidateRequest asks for leave-one-out cross-validation over a site
type CrossValidateRequest struct {
	Site string `json:"site" binding:"required"`
	K    int    `json:"k"`
}
