package services

import (
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"time"

	"trip-itinerary-service/internal/domain"
)

func testLodging() domain.Lodging {
	return domain.Lodging{
		Name:          "Lakeside Hotel",
		Coord:         domain.Coordinates{Lat: 31.30, Lon: 120.62},
		PricePerNight: 200,
	}
}

func testAttractions() []*domain.POI {
	return []*domain.POI{
		{Name: "A", Category: domain.CategoryAttraction, Coord: domain.Coordinates{Lat: 31.31, Lon: 120.63}, Price: 80},
		{Name: "B", Category: domain.CategoryAttraction, Coord: domain.Coordinates{Lat: 31.29, Lon: 120.60}, Price: 0},
	}
}

func testRestaurants() []*domain.POI {
	return []*domain.POI{
		{Name: "X", Category: domain.CategoryRestaurant, Coord: domain.Coordinates{Lat: 31.305, Lon: 120.625}, Price: 60},
		{Name: "Y", Category: domain.CategoryRestaurant, Coord: domain.Coordinates{Lat: 31.295, Lon: 120.615}, Price: 40},
	}
}

func dayStart() time.Time {
	return time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
}

func TestPlanDayGreedySchedule(t *testing.T) {
	res, err := PlanDay(DayRequest{
		Day:         1,
		Start:       dayStart(),
		Lodging:     testLodging(),
		Party:       domain.Party{Adults: 2},
		Attractions: testAttractions(),
		Restaurants: testRestaurants(),
		Rand:        rand.New(rand.NewSource(7)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plan := res.Plan
	if len(plan.Activities) != 5 {
		t.Fatalf("expected 5 activities, got %d", len(plan.Activities))
	}

	wantCategories := []domain.ActivityCategory{
		domain.ActivityHotel,
		domain.ActivityAttraction,
		domain.ActivityMeal,
		domain.ActivityAttraction,
		domain.ActivityMeal,
	}
	for i, want := range wantCategories {
		if plan.Activities[i].Category != want {
			t.Fatalf("activity %d category = %q, want %q", i, plan.Activities[i].Category, want)
		}
	}

	checkIn := plan.Activities[0]
	if !checkIn.Start.Equal(dayStart()) || !checkIn.End.Equal(dayStart().Add(30*time.Minute)) {
		t.Fatalf("check-in = %v..%v, want 08:00..08:30", checkIn.Start, checkIn.End)
	}

	// A has the higher slack score from the lodging, so it takes the morning.
	if plan.Activities[1].Name != "A" {
		t.Fatalf("morning attraction = %q, want A", plan.Activities[1].Name)
	}
	if plan.Activities[3].Name != "B" {
		t.Fatalf("afternoon attraction = %q, want B", plan.Activities[3].Name)
	}

	lunch, dinner := plan.Activities[2], plan.Activities[4]
	if lunch.Start.Hour() < 12 {
		t.Fatalf("lunch starts %v, want at or after 12:00", lunch.Start)
	}
	if dinner.Start.Hour() < 18 {
		t.Fatalf("dinner starts %v, want at or after 18:00", dinner.Start)
	}
	lunchRest := strings.TrimPrefix(lunch.Name, "Lunch - ")
	dinnerRest := strings.TrimPrefix(dinner.Name, "Dinner - ")
	if lunchRest == dinnerRest {
		t.Fatalf("dinner restaurant must differ from lunch while both exist, got %q twice", lunchRest)
	}

	// Non-decreasing, non-overlapping timeline.
	for i := 1; i < len(plan.Activities); i++ {
		if plan.Activities[i].Start.Before(plan.Activities[i-1].End) {
			t.Fatalf("activity %d starts %v before previous ends %v",
				i, plan.Activities[i].Start, plan.Activities[i-1].End)
		}
	}

	// Every walking leg is visibly represented.
	for i, a := range plan.Activities[1:] {
		if a.TransportDuration < 1 {
			t.Fatalf("activity %d transport = %d, want >= 1", i+1, a.TransportDuration)
		}
	}

	// Tickets: 2 adults, A costs 80 and B is free.
	if plan.Attraction != 160 {
		t.Fatalf("attraction cost = %d, want 160", plan.Attraction)
	}
	// Meals: both restaurants used, 2 adults each.
	if plan.Restaurant != 200 {
		t.Fatalf("restaurant cost = %d, want 200", plan.Restaurant)
	}

	totalKm := float64(plan.WalkingMinutes()) * WalkSpeedMetersPerMinute / 1000
	if plan.Transport != TaxiSurcharge(totalKm) {
		t.Fatalf("transport cost = %d, want %d for %.2f walking km",
			plan.Transport, TaxiSurcharge(totalKm), totalKm)
	}

	wantContingency := int(0.10 * float64(plan.Restaurant+plan.Transport+plan.Attraction))
	if plan.Contingency != wantContingency {
		t.Fatalf("contingency = %d, want %d", plan.Contingency, wantContingency)
	}
	if plan.Accommodation != 0 {
		t.Fatalf("day-level accommodation = %d, want 0", plan.Accommodation)
	}

	if res.Rationale != "" {
		t.Fatalf("greedy day carries rationale %q, want empty", res.Rationale)
	}
	if !reflect.DeepEqual(res.UsedAttractions, []string{"A", "B"}) {
		t.Fatalf("used attractions = %v, want [A B]", res.UsedAttractions)
	}
	if len(res.UsedRestaurants) != 2 {
		t.Fatalf("used restaurants = %v, want both", res.UsedRestaurants)
	}
}

func TestPlanDayHonorsValidSelection(t *testing.T) {
	sel := &domain.DaySelection{
		MorningAttraction:   domain.SelectionPick{Name: "B", Reason: "quiet in the morning"},
		Lunch:               domain.SelectionPick{Name: "Y", Reason: "close to B"},
		AfternoonAttraction: domain.SelectionPick{Name: "A", Reason: "best light after noon"},
		Dinner:              domain.SelectionPick{Name: "X", Reason: "local specialty"},
		OverallReason:       "west-to-east loop",
	}

	res, err := PlanDay(DayRequest{
		Day:         1,
		Start:       dayStart(),
		Lodging:     testLodging(),
		Party:       domain.Party{Adults: 2},
		Attractions: testAttractions(),
		Restaurants: testRestaurants(),
		Selection:   sel,
		Rand:        rand.New(rand.NewSource(7)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plan := res.Plan
	if plan.Activities[1].Name != "B" {
		t.Fatalf("morning = %q, want selected B", plan.Activities[1].Name)
	}
	if plan.Activities[2].Name != "Lunch - Y" {
		t.Fatalf("lunch = %q, want selected Y", plan.Activities[2].Name)
	}
	if plan.Activities[3].Name != "A" {
		t.Fatalf("afternoon = %q, want selected A", plan.Activities[3].Name)
	}
	if plan.Activities[4].Name != "Dinner - X" {
		t.Fatalf("dinner = %q, want selected X", plan.Activities[4].Name)
	}

	for _, reason := range []string{"quiet in the morning", "close to B", "best light after noon", "local specialty", "west-to-east loop"} {
		if !strings.Contains(res.Rationale, reason) {
			t.Fatalf("rationale %q missing %q", res.Rationale, reason)
		}
	}
}

func TestPlanDaySelectionIsAllOrNothing(t *testing.T) {
	// Three picks resolve, one does not: the day must match pure greedy
	// output, never a 3/1 hybrid.
	sel := &domain.DaySelection{
		MorningAttraction:   domain.SelectionPick{Name: "B"},
		Lunch:               domain.SelectionPick{Name: "Y"},
		AfternoonAttraction: domain.SelectionPick{Name: "No Such Place"},
		Dinner:              domain.SelectionPick{Name: "X"},
	}

	withSel, err := PlanDay(DayRequest{
		Day:         1,
		Start:       dayStart(),
		Lodging:     testLodging(),
		Party:       domain.Party{Adults: 2},
		Attractions: testAttractions(),
		Restaurants: testRestaurants(),
		Selection:   sel,
		Rand:        rand.New(rand.NewSource(7)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	greedy, err := PlanDay(DayRequest{
		Day:         1,
		Start:       dayStart(),
		Lodging:     testLodging(),
		Party:       domain.Party{Adults: 2},
		Attractions: testAttractions(),
		Restaurants: testRestaurants(),
		Rand:        rand.New(rand.NewSource(7)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(withSel.Plan, greedy.Plan) {
		t.Fatalf("partially-resolving selection produced %+v, want greedy plan %+v",
			withSel.Plan, greedy.Plan)
	}
	if withSel.Rationale != "" {
		t.Fatalf("discarded selection carries rationale %q, want empty", withSel.Rationale)
	}
}

func TestPlanDayRejectsDuplicateAttractionSelection(t *testing.T) {
	sel := &domain.DaySelection{
		MorningAttraction:   domain.SelectionPick{Name: "A"},
		Lunch:               domain.SelectionPick{Name: "X"},
		AfternoonAttraction: domain.SelectionPick{Name: "A"},
		Dinner:              domain.SelectionPick{Name: "Y"},
	}

	res, err := PlanDay(DayRequest{
		Day:         1,
		Start:       dayStart(),
		Lodging:     testLodging(),
		Party:       domain.Party{Adults: 2},
		Attractions: testAttractions(),
		Restaurants: testRestaurants(),
		Selection:   sel,
		Rand:        rand.New(rand.NewSource(7)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Plan.Activities[1].Name == res.Plan.Activities[3].Name {
		t.Fatalf("same attraction scheduled twice: %q", res.Plan.Activities[1].Name)
	}
	if res.Rationale != "" {
		t.Fatalf("invalid selection carries rationale %q, want empty", res.Rationale)
	}
}

func TestPlanDaySingleRestaurantServesBothMeals(t *testing.T) {
	only := []*domain.POI{
		{Name: "X", Category: domain.CategoryRestaurant, Coord: domain.Coordinates{Lat: 31.305, Lon: 120.625}, Price: 60},
	}

	res, err := PlanDay(DayRequest{
		Day:         1,
		Start:       dayStart(),
		Lodging:     testLodging(),
		Party:       domain.Party{Adults: 2},
		Attractions: testAttractions(),
		Restaurants: only,
		Rand:        rand.New(rand.NewSource(7)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Plan.Activities[2].Name != "Lunch - X" || res.Plan.Activities[4].Name != "Dinner - X" {
		t.Fatalf("expected the last restaurant to serve both meals, got %q and %q",
			res.Plan.Activities[2].Name, res.Plan.Activities[4].Name)
	}
	if len(res.UsedRestaurants) != 1 || res.UsedRestaurants[0] != "X" {
		t.Fatalf("used restaurants = %v, want [X]", res.UsedRestaurants)
	}
}

func TestPlanDayInsufficientCandidates(t *testing.T) {
	base := DayRequest{
		Day:         3,
		Start:       dayStart(),
		Lodging:     testLodging(),
		Party:       domain.Party{Adults: 2},
		Restaurants: testRestaurants(),
		Rand:        rand.New(rand.NewSource(7)),
	}

	base.Attractions = testAttractions()[:1]
	_, err := PlanDay(base)
	var ice *domain.InsufficientCandidatesError
	if !errors.As(err, &ice) || ice.Missing != "attractions" || ice.Day != 3 {
		t.Fatalf("error = %v, want InsufficientCandidatesError{Day: 3, Missing: attractions}", err)
	}

	base.Attractions = testAttractions()
	base.Restaurants = nil
	_, err = PlanDay(base)
	if !errors.As(err, &ice) || ice.Missing != "restaurants" {
		t.Fatalf("error = %v, want InsufficientCandidatesError{Missing: restaurants}", err)
	}
}

func TestTaxiSurcharge(t *testing.T) {
	cases := []struct {
		km   float64
		want int
	}{
		{0, 0},
		{4.9, 0},
		{5, 0},
		{6, 2},
		{7, 4},
	}

	for _, c := range cases {
		if got := TaxiSurcharge(c.km); got != c.want {
			t.Errorf("TaxiSurcharge(%v) = %d, want %d", c.km, got, c.want)
		}
	}
}
