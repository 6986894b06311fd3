package domain

// A single named pick inside an external day selection, with the advisor's
// free-text justification.
type SelectionPick struct {
	Name   string
	Reason string
}

// An optional per-day selection supplied by an external advisor: four named
// picks for the day's content slots plus an overall justification.
//
// A selection is valid only if every named pick resolves against the pools
// still available that day; otherwise the whole selection is discarded and
// the planner falls back to greedy choice for all four slots.
type DaySelection struct {
	MorningAttraction   SelectionPick
	Lunch               SelectionPick
	AfternoonAttraction SelectionPick
	Dinner              SelectionPick
	OverallReason       string
}
