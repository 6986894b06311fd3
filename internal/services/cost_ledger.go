package services

import "trip-itinerary-service/internal/domain"

// Summarize aggregates per-day cost buckets into a trip-level summary.
//
// Accommodation is lodging price times the requested trip length, computed
// once here rather than summed from per-day fields (day plans carry zero
// accommodation precisely so this cannot double count). Truncated trips
// still pay for every booked night.
func Summarize(days []PlannedDay, lodgingPricePerNight, numDays, totalBudget int) domain.TripSummary {
	s := domain.TripSummary{
		AccommodationTotal: lodgingPricePerNight * numDays,
	}

	for _, d := range days {
		s.RestaurantTotal += d.Plan.Restaurant
		s.TransportTotal += d.Plan.Transport
		s.AttractionTotal += d.Plan.Attraction
		s.ContingencyTotal += d.Plan.Contingency
	}

	s.GrandTotal = s.AccommodationTotal + s.RestaurantTotal + s.TransportTotal +
		s.AttractionTotal + s.ContingencyTotal
	s.BudgetRemaining = totalBudget - s.GrandTotal
	s.OverBudget = s.GrandTotal > totalBudget

	return s
}
