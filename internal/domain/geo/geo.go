package geo

import "math"

// earthRadiusMeters is the mean Earth radius used for great-circle distances.
const earthRadiusMeters = 6371000

// DefaultProximityMeters is the confirmation range for landmarks and
// unique landmarks.
const DefaultProximityMeters = 10

// Coordinate is a WGS84 geographic position in degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// Valid reports whether both components are finite numbers.
func (c Coordinate) Valid() bool {
	return !math.IsNaN(c.Latitude) && !math.IsInf(c.Latitude, 0) &&
		!math.IsNaN(c.Longitude) && !math.IsInf(c.Longitude, 0)
}

// DistanceMeters returns the haversine great-circle distance between two
// coordinates.
func DistanceMeters(from, to Coordinate) float64 {
	phi1 := toRad(from.Latitude)
	phi2 := toRad(to.Latitude)
	dPhi := toRad(to.Latitude - from.Latitude)
	dLambda := toRad(to.Longitude - from.Longitude)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// WithinRange reports whether user is at most threshold meters from target.
// It is recomputed on every location update; there is no state to cache.
func WithinRange(user, target Coordinate, threshold float64) bool {
	return DistanceMeters(user, target) <= threshold
}

// Offset shifts a coordinate by the given meters north and east. Used to
// place generated sessions relative to the player's starting position.
func Offset(origin Coordinate, metersNorth, metersEast float64) Coordinate {
	// One degree of latitude is roughly 111.32 km; longitude shrinks with
	// the cosine of the latitude.
	latOffset := metersNorth / 111320
	lonOffset := metersEast / (111320 * math.Cos(toRad(origin.Latitude)))
	return Coordinate{
		Latitude:  origin.Latitude + latOffset,
		Longitude: origin.Longitude + lonOffset,
	}
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
