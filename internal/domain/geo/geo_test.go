package geo_test

import (
	"math"
	"testing"

	"github.com/lmoretto/wanderlust/internal/domain/geo"
	"github.com/stretchr/testify/require"
)

// pointAtMeters returns a coordinate the given number of meters due north of
// origin, so the great-circle distance is known by construction.
func pointAtMeters(origin geo.Coordinate, meters float64) geo.Coordinate {
	return geo.Coordinate{
		Latitude:  origin.Latitude + (meters/6371000)*(180/math.Pi),
		Longitude: origin.Longitude,
	}
}

func TestDistanceMeters_Reflexive(t *testing.T) {
	coords := []geo.Coordinate{
		{Latitude: 0, Longitude: 0},
		{Latitude: 45.0650791, Longitude: 7.6570358},
		{Latitude: -33.8688, Longitude: 151.2093},
	}
	for _, c := range coords {
		require.Zero(t, geo.DistanceMeters(c, c))
	}
}

func TestDistanceMeters_KnownSeparation(t *testing.T) {
	origin := geo.Coordinate{Latitude: 45.0, Longitude: 7.65}
	target := pointAtMeters(origin, 10)

	require.InDelta(t, 10.0, geo.DistanceMeters(origin, target), 1e-6)
}

func TestWithinRange_Boundary(t *testing.T) {
	origin := geo.Coordinate{Latitude: 45.0, Longitude: 7.65}

	near := pointAtMeters(origin, 9.99)
	far := pointAtMeters(origin, 10.01)

	require.True(t, geo.WithinRange(origin, near, geo.DefaultProximityMeters))
	require.False(t, geo.WithinRange(origin, far, geo.DefaultProximityMeters))

	// The gate is inclusive at exactly the threshold distance.
	exact := pointAtMeters(origin, 10)
	require.True(t, geo.WithinRange(origin, exact, geo.DistanceMeters(origin, exact)))
}

func TestCoordinateValid(t *testing.T) {
	require.True(t, geo.Coordinate{Latitude: 0, Longitude: 0}.Valid())
	require.False(t, geo.Coordinate{Latitude: math.NaN(), Longitude: 0}.Valid())
	require.False(t, geo.Coordinate{Latitude: 0, Longitude: math.Inf(1)}.Valid())
}

func TestOffset(t *testing.T) {
	origin := geo.Coordinate{Latitude: 45.0, Longitude: 7.65}

	moved := geo.Offset(origin, 10, 10)
	require.Greater(t, moved.Latitude, origin.Latitude)
	require.Greater(t, moved.Longitude, origin.Longitude)
	// ~14.1 m diagonal for a 10 m north + 10 m east shift.
	require.InDelta(t, math.Sqrt(200), geo.DistanceMeters(origin, moved), 0.1)

	back := geo.Offset(origin, -7, 8)
	require.Less(t, back.Latitude, origin.Latitude)
	require.Greater(t, back.Longitude, origin.Longitude)
}
