package ports

import (
	"context"

	"trip-itinerary-service/internal/domain"
)

// Port: a boundary for retrieving POI and lodging records from a data source.
// Discovery of the underlying records (map services, scrapers) happens before
// they enter this engine; the repository only reads what was stored.
type POIRepository interface {
	// Retrieve all attraction candidates stored for a city.
	ListAttractions(ctx context.Context, city string) ([]*domain.POI, error)

	// Retrieve all restaurant candidates stored for a city.
	ListRestaurants(ctx context.Context, city string) ([]*domain.POI, error)

	// Retrieve the lodging record for a city.
	GetLodging(ctx context.Context, city string) (*domain.Lodging, error)
}
