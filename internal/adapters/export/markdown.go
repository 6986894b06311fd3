package export

import (
	"fmt"
	"strings"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/services"
)

// RenderMarkdown renders a finished itinerary as a human-readable Markdown
// document: one line per activity with its walking leg, per-day walking
// totals, the trip cost summary, and the truncation notice when the trip
// could not be fully planned.
func RenderMarkdown(days []services.PlannedDay, summary domain.TripSummary, notice string) string {
	var b strings.Builder

	b.WriteString("# Trip Itinerary\n\n")

	totalKm := 0.0
	totalMin := 0

	for _, d := range days {
		fmt.Fprintf(&b, "## Day %d\n", d.Plan.Day)

		dayMin := 0
		for _, act := range d.Plan.Activities {
			if act.TransportMode == domain.TransportWalking && act.TransportDuration > 0 {
				fmt.Fprintf(&b, "- %s - %s  %s  (walk %d min)\n",
					act.Start.Format("01-02 15:04"), act.End.Format("15:04"),
					act.Name, act.TransportDuration)
				dayMin += act.TransportDuration
			} else {
				fmt.Fprintf(&b, "- %s - %s  %s\n",
					act.Start.Format("01-02 15:04"), act.End.Format("15:04"), act.Name)
			}
		}

		dayKm := float64(dayMin) * services.WalkSpeedMetersPerMinute / 1000
		fmt.Fprintf(&b, "> Walking today: %.2f km / %d min\n", dayKm, dayMin)

		if d.Rationale != "" {
			fmt.Fprintf(&b, "\n%s\n", d.Rationale)
		}

		totalKm += dayKm
		totalMin += dayMin
		b.WriteString("\n")
	}

	b.WriteString("---\n")
	fmt.Fprintf(&b, "Total walking: %.2f km / %d min\n\n", totalKm, totalMin)

	b.WriteString("## Cost Summary\n")
	fmt.Fprintf(&b, "- Accommodation: %d\n", summary.AccommodationTotal)
	fmt.Fprintf(&b, "- Restaurants: %d\n", summary.RestaurantTotal)
	fmt.Fprintf(&b, "- Transport: %d\n", summary.TransportTotal)
	fmt.Fprintf(&b, "- Attractions: %d\n", summary.AttractionTotal)
	fmt.Fprintf(&b, "- Contingency: %d\n", summary.ContingencyTotal)
	fmt.Fprintf(&b, "- **Grand total: %d**\n", summary.GrandTotal)
	if summary.OverBudget {
		fmt.Fprintf(&b, "- Over budget by %d\n", -summary.BudgetRemaining)
	} else {
		fmt.Fprintf(&b, "- Budget remaining: %d\n", summary.BudgetRemaining)
	}

	if notice != "" {
		fmt.Fprintf(&b, "\n> %s\n", notice)
	}

	return b.String()
}
