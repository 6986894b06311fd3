package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPOIsQuery := `
	CREATE TABLE IF NOT EXISTS pois (
		city TEXT NOT NULL,
		name TEXT NOT NULL,
		category TEXT NOT NULL CHECK (category IN ('attraction', 'restaurant')),
		lat REAL NOT NULL,
		lon REAL NOT NULL,
		price REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (city, name)
	);
	`

	createLodgingsQuery := `
	CREATE TABLE IF NOT EXISTS lodgings (
		city TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lat REAL NOT NULL,
		lon REAL NOT NULL,
		price_per_night INTEGER NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_pois_city_category
	ON pois(city, category);
	`

	statements := []string{
		createPOIsQuery,
		createLodgingsQuery,
		createIndexQuery,
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

// Category is implied by which seed list the entry sits in.
type POISeed struct {
	Name  string  `json:"name"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Price float64 `json:"price"`
}

type LodgingSeed struct {
	Name          string  `json:"name"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	PricePerNight int     `json:"price_per_night"`
}

type CitySeed struct {
	City        string      `json:"city"`
	Lodging     LodgingSeed `json:"lodging"`
	Attractions []POISeed   `json:"attractions"`
	Restaurants []POISeed   `json:"restaurants"`
}

// readCitySeeds loads and validates the city seed file shared by the
// SQLite and Postgres seeding paths.
func readCitySeeds(jsonPath string) ([]CitySeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed pois: read %q: %w", jsonPath, err)
	}

	var cities []CitySeed
	if err := json.Unmarshal(bytes, &cities); err != nil {
		return nil, fmt.Errorf("seed pois: parse json: %w", err)
	}

	for i := range cities {
		cities[i].City = strings.TrimSpace(cities[i].City)
		if cities[i].City == "" {
			return nil, fmt.Errorf("seed pois: city at index %d: name cannot be empty", i)
		}
		if strings.TrimSpace(cities[i].Lodging.Name) == "" {
			return nil, fmt.Errorf("seed pois: city %q: lodging name cannot be empty", cities[i].City)
		}
	}

	return cities, nil
}

// Populate the database with city POI and lodging data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
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
	INSERT OR REPLACE INTO pois (city, name, category, lat, lon, price)
	VALUES (?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed pois: prepare poi insert: %w", err)
	}
	defer poiStmt.Close()

	lodgingStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO lodgings (city, name, lat, lon, price_per_night)
	VALUES (?, ?, ?, ?, ?);
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

func insertPOIs(stmt *sql.Stmt, city, category string, seeds []POISeed) error {
	for _, p := range seeds {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return fmt.Errorf("seed pois: city %q: %s with empty name", city, category)
		}
		if _, err := stmt.Exec(city, name, category, p.Lat, p.Lon, p.Price); err != nil {
			return fmt.Errorf("seed pois: insert %s %q for %q: %w", category, name, city, err)
		}
	}
	return nil
}
