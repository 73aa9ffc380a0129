package models

import (
	"time"

	"github.com/stratigo/borehole-backend-go/internal/spatial"
)

// Borehole represents a single vertical sampling location at a site.
// Collar coordinates are stored in the local site grid (meters).
type Borehole struct {
	ID        int64     `json:"id" db:"id"`
	Site      string    `json:"site" db:"site"`
	Name      string    `json:"name" db:"name"`
	Easting   float64   `json:"easting" db:"easting"`
	Northing  float64   `json:"northing" db:"northing"`
	Elevation float64   `json:"elevation" db:"elevation"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Collar returns the collar position in the local grid
func (b *Borehole) Collar() spatial.Point3D {
	return spatial.Point3D{X: b.Easting, Y: b.Northing, Z: b.Elevation}
}

// Interval is one logged depth interval of a borehole as persisted
type Interval struct {
	ID             int64                 `json:"id" db:"id"`
	BoreholeID     int64                 `json:"borehole_id" db:"borehole_id"`
	DepthTop       float64               `json:"depth_top" db:"depth_top"`
	DepthBottom    float64               `json:"depth_bottom" db:"depth_bottom"`
	RawDescription string                `json:"raw_description" db:"raw_description"`
	Description    ClassifiedDescription `json:"description"`
	CreatedAt      time.Time             `json:"created_at" db:"created_at"`
}

// BoreholeEntry is the unit-identification input: one classified interval
// tagged with the borehole it came from. Entries are consumed, never mutated.
type BoreholeEntry struct {
	BoreholeID  string                `json:"borehole_id"`
	DepthTop    float64               `json:"depth_top"`
	DepthBottom float64               `json:"depth_bottom"`
	Description ClassifiedDescription `json:"description"`
}

// SpatialUnit is one borehole interval placed in 3D space. Location is the
// survey collar position; depths are meters below the collar.
type SpatialUnit struct {
	BoreholeID   string                `json:"borehole_id"`
	Location     spatial.Point3D       `json:"location"`
	DepthTop     float64               `json:"depth_top"`
	DepthBottom  float64               `json:"depth_bottom"`
	Description  ClassifiedDescription `json:"description"`
	MaterialType MaterialType          `json:"material_type"`
}

// Thickness returns the interval thickness in meters
func (u *SpatialUnit) Thickness() float64 {
	return u.DepthBottom - u.DepthTop
}

// MidDepth returns the depth of the interval's vertical center
func (u *SpatialUnit) MidDepth() float64 {
	return (u.DepthTop + u.DepthBottom) / 2
}

// MidPoint places the unit's vertical center below the collar, so deeper
// units are farther apart in the same metric space used for lateral distance
func (u *SpatialUnit) MidPoint() spatial.Point3D {
	return spatial.Point3D{
		X: u.Location.X,
		Y: u.Location.Y,
		Z: u.Location.Z - u.MidDepth(),
	}
}
