package services

import (
	"math/rand"

	"trip-itinerary-service/internal/domain"
)

// Jitter returns a copy of the pool with each coordinate perturbed by a
// uniform offset in [-amplitude, amplitude] degrees, clamped to valid
// ranges.
//
// It is an explicit, seeded transform applied once while building a pool,
// never invoked implicitly inside the scheduler, so jittered runs stay
// reproducible. Amplitude 0 returns an unmodified copy.
func Jitter(pool []*domain.POI, amplitude float64, seed int64) []*domain.POI {
	out := make([]*domain.POI, len(pool))
	if amplitude == 0 {
		for i, p := range pool {
			c := *p
			out[i] = &c
		}
		return out
	}

	rng := rand.New(rand.NewSource(seed))
	for i, p := range pool {
		c := *p
		c.Coord.Lat = clamp(c.Coord.Lat+offset(rng, amplitude), -90, 90)
		c.Coord.Lon = clamp(c.Coord.Lon+offset(rng, amplitude), -180, 180)
		out[i] = &c
	}
	return out
}

func offset(rng *rand.Rand, amplitude float64) float64 {
	return (rng.Float64()*2 - 1) * amplitude
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
