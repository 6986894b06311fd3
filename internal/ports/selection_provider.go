package ports

import (
	"context"

	"trip-itinerary-service/internal/domain"
)

// Everything an advisor needs to pick one day's four content slots.
// Candidate slices are the pools still available on that day.
type SelectionRequest struct {
	Day         int
	Lodging     domain.Lodging
	Party       domain.Party
	Attractions []*domain.POI
	Restaurants []*domain.POI
}

// Contract for the optional per-day advisor collaborator.
type SelectionProvider interface {
	// Return zero or one selection for the given day. A nil selection with a
	// nil error means the advisor has no suggestion; the planner then uses
	// greedy choice. Selections are validated by the planner before use.
	DaySelection(ctx context.Context, req SelectionRequest) (*domain.DaySelection, error)
}
