package selection

import (
	"context"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
)

// StaticProvider serves pre-supplied selections keyed by day number.
// It backs request-embedded advisor picks and test fixtures; days without
// an entry get no suggestion.
type StaticProvider struct {
	byDay map[int]domain.DaySelection
}

func NewStaticProvider(byDay map[int]domain.DaySelection) *StaticProvider {
	return &StaticProvider{byDay: byDay}
}

func (s *StaticProvider) DaySelection(_ context.Context, req ports.SelectionRequest) (*domain.DaySelection, error) {
	sel, ok := s.byDay[req.Day]
	if !ok {
		return nil, nil
	}
	return &sel, nil
}
