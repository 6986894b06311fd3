package services

import (
	"log"
	"math"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/spatial"
)

const (
	// WalkSpeedMetersPerMinute is the only modeled transport speed.
	WalkSpeedMetersPerMinute = 80

	// defaultStayMinutes is the dwell time for attractions and meals alike.
	defaultStayMinutes = 60
)

// ScoreActivity scores a single candidate POI against the current position
// and the minutes remaining in the slot's time window.
//
// The score is the slack left in the window after travel and dwell time;
// higher is better, zero means the candidate does not fit. Transport minutes
// are floored to 1 so every leg is visibly represented even for near-zero
// distances.
//
// Distance failures are absorbed here: a conservative default distance is
// substituted and scoring continues, keeping the day loop alive.
func ScoreActivity(current domain.Coordinates, remainingMinutes int, poi *domain.POI) (score, transportMinutes, stayMinutes int) {
	d, err := spatial.Distance(current, poi.Coord)
	if err != nil {
		log.Printf("score activity: poi=%q distance failed, using default: %v", poi.Name, err)
		d = spatial.DefaultMeters
	}

	transportMinutes = int(math.Round(d / WalkSpeedMetersPerMinute))
	if transportMinutes < 1 {
		transportMinutes = 1
	}

	stayMinutes = defaultStayMinutes

	score = remainingMinutes - transportMinutes - stayMinutes
	if score < 0 {
		score = 0
	}
	return score, transportMinutes, stayMinutes
}

// bestByScore returns the highest-scoring POI, skipping the excluded name.
// Ties keep the first-seen candidate so selection stays deterministic under
// pool iteration order.
func bestByScore(pool []*domain.POI, current domain.Coordinates, remainingMinutes int, exclude string) *domain.POI {
	var best *domain.POI
	bestScore := -1

	for _, p := range pool {
		if exclude != "" && p.Name == exclude {
			continue
		}
		s, _, _ := ScoreActivity(current, remainingMinutes, p)
		if s > bestScore {
			bestScore = s
			best = p
		}
	}
	return best
}
