package dto

import "time"

type SelectionPickRequest struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// One pre-made day selection embedded in a plan request. Plays the advisor
// role for that day; invalid picks fall back to greedy selection.
type DaySelectionRequest struct {
	Day                 int                  `json:"day"`
	MorningAttraction   SelectionPickRequest `json:"morning_attraction"`
	Lunch               SelectionPickRequest `json:"lunch"`
	AfternoonAttraction SelectionPickRequest `json:"afternoon_attraction"`
	Dinner              SelectionPickRequest `json:"dinner"`
	OverallReason       string               `json:"overall_reason"`
}

type PlanTripRequest struct {
	City            string                `json:"city"`
	StartDate       string                `json:"start_date"` // YYYY-MM-DD
	Days            int                   `json:"days"`
	Adults          int                   `json:"adults"`
	Children        int                   `json:"children"`
	Budget          int                   `json:"budget"`
	Seed            *int64                `json:"seed"`
	JitterAmplitude float64               `json:"jitter_amplitude"`
	Selections      []DaySelectionRequest `json:"selections"`
}

type ActivityResponse struct {
	Name             string    `json:"name"`
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
	TransportMode    string    `json:"transport_mode,omitempty"`
	TransportMinutes int       `json:"transport_minutes,omitempty"`
	Category         string    `json:"category"`
}

type DayPlanResponse struct {
	Day        int                `json:"day"`
	Activities []ActivityResponse `json:"activities"`

	Accommodation int `json:"accommodation"`
	Restaurant    int `json:"restaurant"`
	Transport     int `json:"transport"`
	Attraction    int `json:"attraction"`
	Contingency   int `json:"contingency"`

	Rationale string `json:"rationale,omitempty"`
}

type TripSummaryResponse struct {
	AccommodationTotal int     `json:"accommodation_total"`
	RestaurantTotal    int     `json:"restaurant_total"`
	TransportTotal     int     `json:"transport_total"`
	AttractionTotal    int     `json:"attraction_total"`
	ContingencyTotal   int     `json:"contingency_total"`
	GrandTotal         int     `json:"grand_total"`
	BudgetRemaining    int     `json:"budget_remaining"`
	BudgetUsedPercent  float64 `json:"budget_used_percent"`
	OverBudget         bool    `json:"over_budget"`
}

type PlanTripResponse struct {
	City    string              `json:"city"`
	Days    []DayPlanResponse   `json:"days"`
	Summary TripSummaryResponse `json:"summary"`
	Notice  string              `json:"notice,omitempty"`
}
