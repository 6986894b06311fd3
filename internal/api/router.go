package api

import (
	"net/http"

	"github.com/rs/cors"

	"trip-itinerary-service/internal/api/handlers"
	"trip-itinerary-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.POIRepository, advisor ports.SelectionProvider, defaultSeed int64) http.Handler {
	mux := http.NewServeMux()

	poiHandler := &handlers.POIHandler{Repo: repo}
	itineraryHandler := &handlers.ItineraryHandler{
		Repo:    repo,
		Advisor: advisor,
		Seed:    defaultSeed,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/pois", poiHandler.List)
	mux.HandleFunc("/itineraries", itineraryHandler.Plan)

	return loggingMiddleware(cors.Default().Handler(mux))
}
