package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"trip-itinerary-service/internal/adapters/advisor"
	"trip-itinerary-service/internal/adapters/repositories"
	"trip-itinerary-service/internal/api"
	"trip-itinerary-service/internal/config"
	"trip-itinerary-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, advisor HTTP client) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/pois.json")
	port := config.Get("PORT", "8080")
	defaultSeed := int64(config.GetInt("PLANNER_SEED", 1))

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSqlitePOIRepository(db)

	// The advisor is optional: without a URL every day is planned greedily
	// unless the request itself carries selections.
	var selectionProvider ports.SelectionProvider
	if advisorURL := strings.TrimSpace(os.Getenv("ADVISOR_URL")); advisorURL != "" {
		client, err := advisor.NewClient(advisorURL, os.Getenv("ADVISOR_API_KEY"))
		if err != nil {
			log.Fatal(err)
		}
		selectionProvider = client
	}

	router := api.NewRouter(repo, selectionProvider, defaultSeed)

	// Write timeout covers advisor round trips for multi-day trips.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
