package handlers

import (
	"log"
	"net/http"
	"strings"

	"trip-itinerary-service/internal/api/dto"
	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
)

type POIHandler struct {
	Repo ports.POIRepository
}

// List returns the stored candidate pools for a city.
func (h *POIHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		writeError(w, r, http.StatusBadRequest, "city is required")
		return
	}

	attractions, err := h.Repo.ListAttractions(r.Context(), city)
	if err != nil {
		log.Printf("list pois failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	restaurants, err := h.Repo.ListRestaurants(r.Context(), city)
	if err != nil {
		log.Printf("list pois failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListPOIResponse{
		City:        city,
		Attractions: toPOIResponses(attractions),
		Restaurants: toPOIResponses(restaurants),
	})
}

func toPOIResponses(pool []*domain.POI) []dto.POIResponse {
	out := make([]dto.POIResponse, 0, len(pool))
	for _, p := range pool {
		out = append(out, dto.POIResponse{
			Name:     p.Name,
			Category: string(p.Category),
			Lat:      p.Coord.Lat,
			Lon:      p.Coord.Lon,
			Price:    p.Price,
		})
	}
	return out
}
