package domain

// Category of a point of interest within the candidate pools.
type POICategory string

const (
	CategoryAttraction POICategory = "attraction"
	CategoryRestaurant POICategory = "restaurant"
)

// Represents a single candidate point of interest.
//
// A POI is identified by its name, which is unique within its pool. Price is
// the ticket price for attractions and the per-person average spend for
// restaurants. A POI moves from "available" to "consumed" exactly once per
// trip and is never offered again on a later day.
type POI struct {
	Name     string
	Category POICategory
	Coord    Coordinates
	Price    float64
}

// RemoveByName drops the named POIs from the pool, preserving order of the
// survivors. Used by the trip orchestrator to consume a day's choices.
func RemoveByName(pool []*POI, names []string) []*POI {
	if len(names) == 0 {
		return pool
	}

	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}

	out := pool[:0]
	for _, p := range pool {
		if _, ok := drop[p.Name]; ok {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FindByName returns the first POI with the given name, or nil.
func FindByName(pool []*POI, name string) *POI {
	for _, p := range pool {
		if p.Name == name {
			return p
		}
	}
	return nil
}
