package spatial

import (
	"math"
)

// Point3D represents a point in the local site grid: x east, y north,
// z elevation, all in meters
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Distance calculates the Euclidean distance between two points in meters
func Distance(a, b Point3D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// HorizontalDistance calculates the plan distance between two points,
// ignoring elevation
func HorizontalDistance(a, b Point3D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// VerticalDistance calculates the absolute elevation difference
func VerticalDistance(a, b Point3D) float64 {
	return math.Abs(a.Z - b.Z)
}

// Bearing calculates the plan bearing from a to b
// Returns degrees (0-360), where 0 is North, 90 is East, etc.
func Bearing(a, b Point3D) float64 {
	bearing := math.Atan2(b.X-a.X, b.Y-a.Y)
	bearingDeg := bearing * 180 / math.Pi
	return math.Mod(bearingDeg+360, 360)
}

// Centroid calculates the centroid of a set of points
func Centroid(points []Point3D) Point3D {
	if len(points) == 0 {
		return Point3D{}
	}

	var sumX, sumY, sumZ float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
		sumZ += p.Z
	}

	n := float64(len(points))
	return Point3D{X: sumX / n, Y: sumY / n, Z: sumZ / n}
}

// BoundingBox calculates the axis-aligned bounding box of a set of points
// Returns (min, max); zero points for an empty set
func BoundingBox(points []Point3D) (Point3D, Point3D) {
	if len(points) == 0 {
		return Point3D{}, Point3D{}
	}

	min, max := points[0], points[0]
	for _, p := range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}

	return min, max
}

// RadiusOfGyration calculates the spatial dispersion of a set of points
// around their centroid
func RadiusOfGyration(points []Point3D) float64 {
	if len(points) == 0 {
		return 0
	}

	center := Centroid(points)

	var sumSquaredDist float64
	for _, p := range points {
		dist := Distance(center, p)
		sumSquaredDist += dist * dist
	}

	return math.Sqrt(sumSquaredDist / float64(len(points)))
}
