package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Point3D
		want float64
	}{
		{"same point", Point3D{1, 2, 3}, Point3D{1, 2, 3}, 0},
		{"unit x", Point3D{0, 0, 0}, Point3D{1, 0, 0}, 1},
		{"pythagorean", Point3D{0, 0, 0}, Point3D{3, 4, 0}, 5},
		{"3d diagonal", Point3D{0, 0, 0}, Point3D{2, 3, 6}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Distance(tt.a, tt.b), 1e-9)
			assert.InDelta(t, tt.want, Distance(tt.b, tt.a), 1e-9)
		})
	}
}

func TestHorizontalDistanceIgnoresElevation(t *testing.T) {
	a := Point3D{0, 0, 0}
	b := Point3D{3, 4, 100}

	assert.InDelta(t, 5.0, HorizontalDistance(a, b), 1e-9)
	assert.InDelta(t, 100.0, VerticalDistance(a, b), 1e-9)
}

func TestBearing(t *testing.T) {
	origin := Point3D{0, 0, 0}

	tests := []struct {
		name string
		to   Point3D
		want float64
	}{
		{"north", Point3D{0, 10, 0}, 0},
		{"east", Point3D{10, 0, 0}, 90},
		{"south", Point3D{0, -10, 0}, 180},
		{"west", Point3D{-10, 0, 0}, 270},
		{"northeast", Point3D{10, 10, 0}, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Bearing(origin, tt.to), 1e-9)
		})
	}
}

func TestCentroid(t *testing.T) {
	assert.Equal(t, Point3D{}, Centroid(nil))

	points := []Point3D{{0, 0, 0}, {2, 4, 6}, {4, 8, 12}}
	assert.Equal(t, Point3D{2, 4, 6}, Centroid(points))
}

func TestBoundingBox(t *testing.T) {
	points := []Point3D{{1, 5, -2}, {-3, 2, 7}, {4, -1, 0}}

	min, max := BoundingBox(points)
	assert.Equal(t, Point3D{-3, -1, -2}, min)
	assert.Equal(t, Point3D{4, 5, 7}, max)
}

func TestRadiusOfGyration(t *testing.T) {
	assert.Equal(t, 0.0, RadiusOfGyration(nil))

	// four points at unit distance from their centroid
	points := []Point3D{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}}
	assert.InDelta(t, 1.0, RadiusOfGyration(points), 1e-9)
}

func TestGeodesicBearing(t *testing.T) {
	// due north and due east from a mid-latitude origin
	assert.InDelta(t, 0.0, GeodesicBearing(52.0, 1.0, 52.01, 1.0), 1e-6)
	assert.InDelta(t, 90.0, GeodesicBearing(0.0, 1.0, 0.0, 1.01), 1e-6)
	assert.InDelta(t, 180.0, GeodesicBearing(52.01, 1.0, 52.0, 1.0), 1e-6)
}

func TestSiteGridRoundTrip(t *testing.T) {
	grid := NewSiteGrid(51.5, -0.12)

	local := grid.ToLocal(51.505, -0.115, 32.0)
	assert.InDelta(t, 32.0, local.Z, 1e-9)
	// ~555m north, ~345m east for this latitude
	assert.InDelta(t, 556.0, local.Y, 2.0)
	assert.Greater(t, local.X, 0.0)

	lat, lon := grid.ToGeodetic(local)
	assert.InDelta(t, 51.505, lat, 1e-6)
	assert.InDelta(t, -0.115, lon, 1e-6)
}

func TestSiteGridAgreesWithHaversine(t *testing.T) {
	grid := NewSiteGrid(52.0, 1.0)

	local := grid.ToLocal(52.003, 1.004, 0)
	planar := HorizontalDistance(Point3D{}, local)
	geodesic := HaversineDistance(52.0, 1.0, 52.003, 1.004)

	// within a site extent the planar approximation tracks the sphere closely
	assert.InDelta(t, geodesic, planar, 1.0)
}
