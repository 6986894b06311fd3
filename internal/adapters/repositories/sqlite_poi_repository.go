package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trip-itinerary-service/internal/domain"
)

// SQLite-backed implementation of the POIRepository port.
type SqlitePOIRepository struct{ DB *sql.DB }

func NewSqlitePOIRepository(db *sql.DB) *SqlitePOIRepository {
	return &SqlitePOIRepository{DB: db}
}

func (s *SqlitePOIRepository) ListAttractions(ctx context.Context, city string) ([]*domain.POI, error) {
	return s.listByCategory(ctx, city, domain.CategoryAttraction)
}

func (s *SqlitePOIRepository) ListRestaurants(ctx context.Context, city string) ([]*domain.POI, error) {
	return s.listByCategory(ctx, city, domain.CategoryRestaurant)
}

func (s *SqlitePOIRepository) listByCategory(ctx context.Context, city string, category domain.POICategory) ([]*domain.POI, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite poi repository: DB is nil")
	}

	// Stable ordering matters: pool iteration order is the documented
	// tie-break for greedy selection.
	query := `
	SELECT name, lat, lon, price
	FROM pois
	WHERE city = ? AND category = ?
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, query, city, string(category))
	if err != nil {
		return nil, fmt.Errorf("list %ss: query pois table: %w", category, err)
	}
	defer rows.Close()

	pois := make([]*domain.POI, 0, 32)
	for rows.Next() {
		var name string
		var lat, lon, price float64
		if err := rows.Scan(&name, &lat, &lon, &price); err != nil {
			return nil, fmt.Errorf("list %ss: scan row: %w", category, err)
		}
		pois = append(pois, &domain.POI{
			Name:     name,
			Category: category,
			Coord:    domain.Coordinates{Lat: lat, Lon: lon},
			Price:    price,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %ss: row iteration: %w", category, err)
	}

	return pois, nil
}

func (s *SqlitePOIRepository) GetLodging(ctx context.Context, city string) (*domain.Lodging, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite poi repository: DB is nil")
	}

	query := `
	SELECT name, lat, lon, price_per_night
	FROM lodgings
	WHERE city = ?;
	`
	var name string
	var lat, lon float64
	var price int
	err := s.DB.QueryRowContext(ctx, query, city).Scan(&name, &lat, &lon, &price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get lodging: no lodging stored for city %q", city)
	}
	if err != nil {
		return nil, fmt.Errorf("get lodging: query lodgings table: %w", err)
	}

	return &domain.Lodging{
		Name:          name,
		Coord:         domain.Coordinates{Lat: lat, Lon: lon},
		PricePerNight: price,
	}, nil
}
