package domain

// Lodging is the trip's fixed base: every day starts there.
type Lodging struct {
	Name          string
	Coord         Coordinates
	PricePerNight int
}

// Trip-level cost aggregation produced by the cost ledger.
//
// AccommodationTotal is lodging price times trip length, computed once rather
// than summed from per-day fields.
type TripSummary struct {
	AccommodationTotal int
	RestaurantTotal    int
	TransportTotal     int
	AttractionTotal    int
	ContingencyTotal   int

	GrandTotal      int
	BudgetRemaining int
	OverBudget      bool
}
