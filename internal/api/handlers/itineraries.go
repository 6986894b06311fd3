package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"trip-itinerary-service/internal/adapters/export"
	"trip-itinerary-service/internal/adapters/selection"
	"trip-itinerary-service/internal/api/dto"
	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
	"trip-itinerary-service/internal/services"
)

type ItineraryHandler struct {
	Repo    ports.POIRepository
	Advisor ports.SelectionProvider
	Seed    int64 // default seed when the request does not supply one
}

// Plan orchestrates POI loading, day-by-day scheduling and trip-level cost
// summation for one trip request.
//
// Request-embedded selections take the advisor role for their days; when
// none are supplied the configured advisor (if any) is consulted instead.
// With ?format=markdown the itinerary document is returned instead of JSON.
func (h *ItineraryHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanTripRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	city := strings.TrimSpace(req.City)
	if city == "" {
		writeError(w, r, http.StatusBadRequest, "city is required")
		return
	}

	startDate, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "start_date must be formatted YYYY-MM-DD")
		return
	}

	if req.Days < 1 || req.Days > 30 {
		writeError(w, r, http.StatusBadRequest, "days must be between 1 and 30")
		return
	}
	if req.Adults < 1 || req.Adults > 20 {
		writeError(w, r, http.StatusBadRequest, "adults must be between 1 and 20")
		return
	}
	if req.Children < 0 || req.Children > 20 {
		writeError(w, r, http.StatusBadRequest, "children must be between 0 and 20")
		return
	}
	if req.Budget < 100 {
		writeError(w, r, http.StatusBadRequest, "budget must be at least 100")
		return
	}
	if req.JitterAmplitude < 0 || req.JitterAmplitude > 0.1 {
		writeError(w, r, http.StatusBadRequest, "jitter_amplitude must be between 0 and 0.1")
		return
	}

	seed := h.Seed
	if req.Seed != nil {
		seed = *req.Seed
	}

	ctx := r.Context()

	lodging, err := h.Repo.GetLodging(ctx, city)
	if err != nil {
		log.Printf("plan itinerary failed: %v", err)
		writeError(w, r, http.StatusNotFound, "no lodging stored for city")
		return
	}

	attractions, err := h.Repo.ListAttractions(ctx, city)
	if err != nil {
		log.Printf("plan itinerary failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	restaurants, err := h.Repo.ListRestaurants(ctx, city)
	if err != nil {
		log.Printf("plan itinerary failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if req.JitterAmplitude > 0 {
		attractions = services.Jitter(attractions, req.JitterAmplitude, seed)
		restaurants = services.Jitter(restaurants, req.JitterAmplitude, seed)
	}

	advisor := h.Advisor
	if len(req.Selections) > 0 {
		advisor = selection.NewStaticProvider(toSelections(req.Selections))
	}

	it, err := services.PlanTrip(ctx, services.TripRequest{
		Lodging:     *lodging,
		Party:       domain.Party{Adults: req.Adults, Children: req.Children},
		Attractions: attractions,
		Restaurants: restaurants,
		StartDate:   startDate,
		Days:        req.Days,
		Budget:      req.Budget,
		Seed:        seed,
	}, advisor)
	if err != nil {
		log.Printf("plan itinerary failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	summary := services.Summarize(it.Days, lodging.PricePerNight, req.Days, req.Budget)

	if r.URL.Query().Get("format") == "markdown" {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := io.WriteString(w, export.RenderMarkdown(it.Days, summary, it.Notice)); err != nil {
			log.Printf("write markdown failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
		}
		return
	}

	writeJSON(w, r, http.StatusOK, toTripResponse(city, req.Budget, it, summary))
}

func toSelections(in []dto.DaySelectionRequest) map[int]domain.DaySelection {
	out := make(map[int]domain.DaySelection, len(in))
	for _, s := range in {
		out[s.Day] = domain.DaySelection{
			MorningAttraction:   domain.SelectionPick{Name: s.MorningAttraction.Name, Reason: s.MorningAttraction.Reason},
			Lunch:               domain.SelectionPick{Name: s.Lunch.Name, Reason: s.Lunch.Reason},
			AfternoonAttraction: domain.SelectionPick{Name: s.AfternoonAttraction.Name, Reason: s.AfternoonAttraction.Reason},
			Dinner:              domain.SelectionPick{Name: s.Dinner.Name, Reason: s.Dinner.Reason},
			OverallReason:       s.OverallReason,
		}
	}
	return out
}

func toTripResponse(city string, budget int, it *services.TripItinerary, summary domain.TripSummary) dto.PlanTripResponse {
	res := dto.PlanTripResponse{
		City:   city,
		Days:   make([]dto.DayPlanResponse, 0, len(it.Days)),
		Notice: it.Notice,
		Summary: dto.TripSummaryResponse{
			AccommodationTotal: summary.AccommodationTotal,
			RestaurantTotal:    summary.RestaurantTotal,
			TransportTotal:     summary.TransportTotal,
			AttractionTotal:    summary.AttractionTotal,
			ContingencyTotal:   summary.ContingencyTotal,
			GrandTotal:         summary.GrandTotal,
			BudgetRemaining:    summary.BudgetRemaining,
			BudgetUsedPercent:  float64(summary.GrandTotal) / float64(budget) * 100,
			OverBudget:         summary.OverBudget,
		},
	}

	for _, d := range it.Days {
		day := dto.DayPlanResponse{
			Day:           d.Plan.Day,
			Activities:    make([]dto.ActivityResponse, 0, len(d.Plan.Activities)),
			Accommodation: d.Plan.Accommodation,
			Restaurant:    d.Plan.Restaurant,
			Transport:     d.Plan.Transport,
			Attraction:    d.Plan.Attraction,
			Contingency:   d.Plan.Contingency,
			Rationale:     d.Rationale,
		}
		for _, a := range d.Plan.Activities {
			day.Activities = append(day.Activities, dto.ActivityResponse{
				Name:             a.Name,
				Start:            a.Start,
				End:              a.End,
				TransportMode:    a.TransportMode,
				TransportMinutes: a.TransportDuration,
				Category:         string(a.Category),
			})
		}
		res.Days = append(res.Days, day)
	}

	return res
}
