package domain

import "time"

// Category of a scheduled activity.
type ActivityCategory string

const (
	ActivityHotel      ActivityCategory = "hotel"
	ActivityAttraction ActivityCategory = "attraction"
	ActivityMeal       ActivityCategory = "meal"
)

// TransportWalking is the only modeled transport mode.
const TransportWalking = "walking"

// Represents a single scheduled occurrence within a day.
// An Activity is immutable planning data produced by the day planner; the
// transport fields describe the leg that precedes the activity.
type Activity struct {
	Name              string
	Start             time.Time
	End               time.Time
	TransportMode     string
	TransportDuration int // minutes
	Category          ActivityCategory
}

// Represents the planned schedule and cost breakdown for a single trip day.
//
// Activities are temporally ordered and non-overlapping. Accommodation is
// intentionally zero at the day level; lodging is priced once for the whole
// trip by the cost ledger so it is never double counted.
type DayPlan struct {
	Day        int // 1-based
	Activities []Activity

	Accommodation int
	Restaurant    int
	Transport     int
	Attraction    int
	Contingency   int
}

// WalkingMinutes sums the walking-leg minutes across the day.
func (d *DayPlan) WalkingMinutes() int {
	total := 0
	for _, a := range d.Activities {
		if a.TransportMode == TransportWalking && a.TransportDuration > 0 {
			total += a.TransportDuration
		}
	}
	return total
}
