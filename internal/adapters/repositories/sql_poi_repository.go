package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/platform/obs"
)

// SQLPOIRepository is the Postgres-backed implementation of the
// POIRepository port, used where deployments share one POI store.
type SQLPOIRepository struct{ DB *sql.DB }

func NewSQLPOIRepository(db *sql.DB) *SQLPOIRepository {
	return &SQLPOIRepository{DB: db}
}

func (s *SQLPOIRepository) ListAttractions(ctx context.Context, city string) ([]*domain.POI, error) {
	return s.listByCategory(ctx, city, domain.CategoryAttraction)
}

func (s *SQLPOIRepository) ListRestaurants(ctx context.Context, city string) ([]*domain.POI, error) {
	return s.listByCategory(ctx, city, domain.CategoryRestaurant)
}

func (s *SQLPOIRepository) listByCategory(ctx context.Context, city string, category domain.POICategory) (_ []*domain.POI, err error) {
	defer obs.Time(ctx, "poi.repo.listByCategory")(&err)

	if s.DB == nil {
		return nil, errors.New("sql poi repository: DB is nil")
	}

	query := `
	SELECT name, lat, lon, price
	FROM pois
	WHERE city = $1 AND category = $2
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

func (s *SQLPOIRepository) GetLodging(ctx context.Context, city string) (_ *domain.Lodging, err error) {
	defer obs.Time(ctx, "poi.repo.GetLodging")(&err)

	if s.DB == nil {
		return nil, errors.New("sql poi repository: DB is nil")
	}

	query := `
	SELECT name, lat, lon, price_per_night
	FROM lodgings
	WHERE city = $1;
	`
	var name string
	var lat, lon float64
	var price int
	err = s.DB.QueryRowContext(ctx, query, city).Scan(&name, &lat, &lon, &price)
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

// InitSchemaSQL initializes the Postgres schema used by cmd/dbtool.
func InitSchemaSQL(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS pois (
			city TEXT NOT NULL,
			name TEXT NOT NULL,
			category TEXT NOT NULL CHECK (category IN ('attraction', 'restaurant')),
			lat DOUBLE PRECISION NOT NULL,
			lon DOUBLE PRECISION NOT NULL,
			price DOUBLE PRECISION NOT NULL DEFAULT 0,
			PRIMARY KEY (city, name)
		);`,
		`CREATE TABLE IF NOT EXISTS lodgings (
			city TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			lat DOUBLE PRECISION NOT NULL,
			lon DOUBLE PRECISION NOT NULL,
			price_per_night INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_pois_city_category ON pois(city, category);`,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// SeedFromJSONSQL loads the same city seed file into Postgres.
func SeedFromJSONSQL(db *sql.DB, jsonPath string) error {
	cities, err := readCitySeeds(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed pois: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	poiStmt, err := tx.Prepare(`
	INSERT INTO pois (city, name, category, lat, lon, price)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (city, name) DO UPDATE
	SET category = EXCLUDED.category,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		price = EXCLUDED.price;
	`)
	if err != nil {
		return fmt.Errorf("seed pois: prepare poi insert: %w", err)
	}
	defer poiStmt.Close()

	lodgingStmt, err := tx.Prepare(`
	INSERT INTO lodgings (city, name, lat, lon, price_per_night)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (city) DO UPDATE
	SET name = EXCLUDED.name,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		price_per_night = EXCLUDED.price_per_night;
	`)
	if err != nil {
		return fmt.Errorf("seed pois: prepare lodging insert: %w", err)
	}
	defer lodgingStmt.Close()

	for _, c := range cities {
		if _, err := lodgingStmt.Exec(c.City, c.Lodging.Name, c.Lodging.Lat, c.Lodging.Lon, c.Lodging.PricePerNight); err != nil {
			return fmt.Errorf("seed pois: insert lodging for %q: %w", c.City, err)
		}
		if err := insertPOIs(poiStmt, c.City, "attraction", c.Attractions); err != nil {
			return err
		}
		if err := insertPOIs(poiStmt, c.City, "restaurant", c.Restaurants); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed pois: commit tx: %w", err)
	}

	return nil
}
