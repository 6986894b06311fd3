package services

import (
	"testing"

	"trip-itinerary-service/internal/domain"
)

func TestScoreActivitySlack(t *testing.T) {
	current := domain.Coordinates{Lat: 31.30, Lon: 120.62}
	poi := &domain.POI{
		Name:     "Garden",
		Category: domain.CategoryAttraction,
		Coord:    domain.Coordinates{Lat: 31.31, Lon: 120.63},
	}

	score, transport, stay := ScoreActivity(current, 210, poi)

	if stay != 60 {
		t.Fatalf("stay = %d, want 60", stay)
	}
	if transport < 1 {
		t.Fatalf("transport = %d, want >= 1", transport)
	}
	if score != 210-transport-stay {
		t.Fatalf("score = %d, want %d", score, 210-transport-stay)
	}
}

func TestScoreActivityTransportFloor(t *testing.T) {
	// Colocated POI: the leg must still be visibly represented.
	at := domain.Coordinates{Lat: 31.30, Lon: 120.62}
	poi := &domain.POI{Name: "Next door", Coord: at}

	_, transport, _ := ScoreActivity(at, 120, poi)
	if transport != 1 {
		t.Fatalf("transport = %d, want floor of 1", transport)
	}
}

func TestScoreActivityClampsToZero(t *testing.T) {
	current := domain.Coordinates{Lat: 31.30, Lon: 120.62}
	poi := &domain.POI{Name: "Garden", Coord: domain.Coordinates{Lat: 31.31, Lon: 120.63}}

	score, _, _ := ScoreActivity(current, 10, poi)
	if score != 0 {
		t.Fatalf("score = %d, want 0 when the window cannot fit the visit", score)
	}
}

func TestScoreActivityAbsorbsDistanceFailure(t *testing.T) {
	current := domain.Coordinates{Lat: 31.30, Lon: 120.62}
	corrupt := &domain.POI{Name: "Corrupt", Coord: domain.Coordinates{Lat: 95, Lon: 120.62}}

	// Default distance of 1000 m at 80 m/min is a 13-minute walk (rounded).
	score, transport, stay := ScoreActivity(current, 210, corrupt)
	if transport != 13 {
		t.Fatalf("transport = %d, want 13 from the default distance", transport)
	}
	if score != 210-13-stay {
		t.Fatalf("score = %d, want %d", score, 210-13-stay)
	}
}

func TestBestByScorePrefersFirstSeenOnTie(t *testing.T) {
	from := domain.Coordinates{Lat: 31.30, Lon: 120.62}
	same := domain.Coordinates{Lat: 31.31, Lon: 120.63}

	pool := []*domain.POI{
		{Name: "First", Coord: same},
		{Name: "Second", Coord: same},
	}

	best := bestByScore(pool, from, 210, "")
	if best == nil || best.Name != "First" {
		t.Fatalf("best = %+v, want the first-seen candidate on a tie", best)
	}
}

func TestBestByScoreHonorsExclusion(t *testing.T) {
	from := domain.Coordinates{Lat: 31.30, Lon: 120.62}

	pool := []*domain.POI{
		{Name: "Near", Coord: domain.Coordinates{Lat: 31.301, Lon: 120.621}},
		{Name: "Far", Coord: domain.Coordinates{Lat: 31.33, Lon: 120.65}},
	}

	best := bestByScore(pool, from, 210, "Near")
	if best == nil || best.Name != "Far" {
		t.Fatalf("best = %+v, want the remaining candidate", best)
	}
}
