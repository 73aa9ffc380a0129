package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
)

// HaversineDistance calculates the great-circle distance between two points
// in meters using the Haversine formula
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// GeodesicBearing calculates the initial bearing (forward azimuth) from
// point 1 to point 2 on the sphere
// Returns bearing in degrees (0-360), where 0 is North, 90 is East, etc.
func GeodesicBearing(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lonDiff := (lon2 - lon1) * math.Pi / 180

	y := math.Sin(lonDiff) * math.Cos(lat2Rad)
	x := math.Cos(lat1Rad)*math.Sin(lat2Rad) - math.Sin(lat1Rad)*math.Cos(lat2Rad)*math.Cos(lonDiff)
	bearing := math.Atan2(y, x)

	bearingDeg := bearing * 180 / math.Pi
	return math.Mod(bearingDeg+360, 360)
}

// SiteGrid projects WGS84 survey coordinates onto a local metric grid
// centered on a site origin. Within a site's extent (a few kilometers) the
// equirectangular approximation is well below survey accuracy.
type SiteGrid struct {
	origin s2.LatLng
}

// NewSiteGrid creates a local grid anchored at the given origin
func NewSiteGrid(originLat, originLon float64) *SiteGrid {
	return &SiteGrid{origin: s2.LatLngFromDegrees(originLat, originLon)}
}

// ToLocal converts a surveyed collar position to local grid coordinates:
// x meters east of the origin, y meters north, z the surveyed elevation
func (g *SiteGrid) ToLocal(lat, lon, elevation float64) Point3D {
	p := s2.LatLngFromDegrees(lat, lon)

	north := (p.Lat.Radians() - g.origin.Lat.Radians()) * EarthRadiusMeters
	east := (p.Lng.Radians() - g.origin.Lng.Radians()) * EarthRadiusMeters * math.Cos(g.origin.Lat.Radians())

	return Point3D{X: east, Y: north, Z: elevation}
}

// ToGeodetic converts local grid coordinates back to latitude/longitude
func (g *SiteGrid) ToGeodetic(p Point3D) (lat, lon float64) {
	latRad := g.origin.Lat.Radians() + p.Y/EarthRadiusMeters
	lonRad := g.origin.Lng.Radians() + p.X/(EarthRadiusMeters*math.Cos(g.origin.Lat.Radians()))

	return latRad * 180 / math.Pi, lonRad * 180 / math.Pi
}
