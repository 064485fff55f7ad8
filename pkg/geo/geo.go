package geo

import "math"

const (
	// EarthRadius in meters.
	EarthRadius = 6371000.0

	// DefaultRadius is the geofence radius in meters used for pickup and delivery gates.
	DefaultRadius = 500.0
)

type Point struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

// Distance returns the great-circle distance between a and b in meters.
func Distance(a, b Point) float64 {
	phi1 := radians(a.Lat)
	phi2 := radians(b.Lat)
	dPhi := radians(b.Lat - a.Lat)
	dLambda := radians(b.Lon - a.Lon)

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)

	return 2 * EarthRadius * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// WithinRange reports whether cur lies within radius meters of target. The boundary is inclusive.
func WithinRange(cur, target Point, radius float64) bool {
	return Distance(cur, target) <= radius
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
