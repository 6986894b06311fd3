package spatial

import (
	"fmt"

	"github.com/golang/geo/s2"

	"trip-itinerary-service/internal/domain"
)

const (
	// EarthRadiusMeters is Earth's mean radius.
	EarthRadiusMeters = 6371000.0

	// MaxPlausibleMeters bounds a legitimate in-trip leg. Anything beyond it
	// is treated as upstream coordinate corruption, not a distant POI.
	MaxPlausibleMeters = 1000000.0

	// DefaultMeters is the conservative substitute distance callers use when
	// a computation fails, so scheduling can proceed.
	DefaultMeters = 1000.0
)

// Distance returns the great-circle distance between two points in meters.
//
// It fails with domain.ErrInvalidCoordinate when either point is out of
// range and with domain.ErrImplausibleDistance when the result exceeds
// MaxPlausibleMeters. Both failures are recoverable at the scoring boundary
// via the DefaultMeters substitution policy.
func Distance(a, b domain.Coordinates) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, fmt.Errorf("distance: origin: %w", err)
	}
	if err := b.Validate(); err != nil {
		return 0, fmt.Errorf("distance: destination: %w", err)
	}

	p1 := s2.LatLngFromDegrees(a.Lat, a.Lon)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lon)
	d := p1.Distance(p2).Radians() * EarthRadiusMeters

	if d > MaxPlausibleMeters {
		return 0, fmt.Errorf("%w: %.2f km between (%v,%v) and (%v,%v)",
			domain.ErrImplausibleDistance, d/1000, a.Lat, a.Lon, b.Lat, b.Lon)
	}

	return d, nil
}
