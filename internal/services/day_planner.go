package services

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"trip-itinerary-service/internal/domain"
)

const (
	checkInMinutes = 30
	mealMinutes    = 60

	// Minutes in the afternoon slot window: lunch end (13:00) to 18:00.
	afternoonWindowMinutes = 300
)

// Everything the day planner needs for one day. The pool slices are
// read-only views owned by the trip orchestrator; the planner reports its
// choices back through DayResult instead of mutating them.
type DayRequest struct {
	Day         int
	Start       time.Time // day start at the lodging, 08:00 local
	Lodging     domain.Lodging
	Party       domain.Party
	Attractions []*domain.POI
	Restaurants []*domain.POI
	Selection   *domain.DaySelection
	Rand        *rand.Rand
}

// A planned day plus the pool removals the orchestrator must apply before
// the next day, and the advisor rationale when a selection was honored.
type DayResult struct {
	Plan            *domain.DayPlan
	Rationale       string
	UsedAttractions []string
	UsedRestaurants []string
}

// picks holds the four resolved content slots for one day.
type picks struct {
	morning   *domain.POI
	lunch     *domain.POI
	afternoon *domain.POI
	dinner    *domain.POI
}

// PlanDay builds one day's five-slot schedule:
// check-in, morning attraction, lunch, afternoon attraction, dinner.
//
// If an external selection is supplied and every pick resolves against the
// available pools, the selection is used for all four content slots;
// otherwise the whole selection is discarded and every slot falls back to
// greedy choice. The two are never mixed within a day.
//
// The day deliberately ends after dinner with no return leg to the lodging.
func PlanDay(req DayRequest) (*DayResult, error) {
	if err := req.Party.Validate(); err != nil {
		return nil, fmt.Errorf("plan day %d: %w", req.Day, err)
	}
	if len(req.Attractions) < 2 {
		return nil, &domain.InsufficientCandidatesError{Day: req.Day, Missing: "attractions"}
	}
	if len(req.Restaurants) < 1 {
		return nil, &domain.InsufficientCandidatesError{Day: req.Day, Missing: "restaurants"}
	}

	rng := req.Rand
	if rng == nil {
		// Day-keyed source keeps unconfigured runs reproducible.
		rng = rand.New(rand.NewSource(int64(req.Day)))
	}

	currentTime := req.Start
	currentPos := req.Lodging.Coord

	activities := make([]domain.Activity, 0, 5)
	attractionCost := 0
	restaurantCost := 0

	// Check-in: fixed half hour at the lodging.
	activities = append(activities, domain.Activity{
		Name:     fmt.Sprintf("Check-in %s", req.Lodging.Name),
		Start:    currentTime,
		End:      currentTime.Add(checkInMinutes * time.Minute),
		Category: domain.ActivityHotel,
	})
	currentTime = currentTime.Add(checkInMinutes * time.Minute)

	chosen, fromSelection := resolveSelection(req)
	if !fromSelection {
		if req.Selection != nil {
			log.Printf("plan day %d: %v, falling back to greedy", req.Day, domain.ErrInvalidSelection)
		}
		chosen = greedyPicks(req, currentTime, currentPos, rng)
	}

	// Morning attraction, scored against the window up to noon.
	remainingAM := minutesUntil(currentTime, 12)
	_, transAM, stayAM := ScoreActivity(currentPos, remainingAM, chosen.morning)
	activities = append(activities, domain.Activity{
		Name:              chosen.morning.Name,
		Start:             currentTime,
		End:               currentTime.Add(time.Duration(transAM+stayAM) * time.Minute),
		TransportMode:     domain.TransportWalking,
		TransportDuration: transAM,
		Category:          domain.ActivityAttraction,
	})
	attractionCost += req.Party.Cost(chosen.morning.Price)
	currentPos = chosen.morning.Coord
	currentTime = currentTime.Add(time.Duration(transAM+stayAM) * time.Minute)

	// Lunch at noon, or immediately if the morning ran long.
	lunchTime := clockOrLater(currentTime, 12)
	_, transLunch, _ := ScoreActivity(currentPos, mealMinutes, chosen.lunch)
	activities = append(activities, domain.Activity{
		Name:              fmt.Sprintf("Lunch - %s", chosen.lunch.Name),
		Start:             lunchTime,
		End:               lunchTime.Add(mealMinutes * time.Minute),
		TransportMode:     domain.TransportWalking,
		TransportDuration: transLunch,
		Category:          domain.ActivityMeal,
	})
	restaurantCost += req.Party.Cost(chosen.lunch.Price)
	currentTime = lunchTime.Add(mealMinutes * time.Minute)
	currentPos = chosen.lunch.Coord

	// Afternoon attraction, scored against the 18:00 cutoff.
	remainingPM := minutesUntil(currentTime, 18)
	_, transPM, stayPM := ScoreActivity(currentPos, remainingPM, chosen.afternoon)
	activities = append(activities, domain.Activity{
		Name:              chosen.afternoon.Name,
		Start:             currentTime,
		End:               currentTime.Add(time.Duration(transPM+stayPM) * time.Minute),
		TransportMode:     domain.TransportWalking,
		TransportDuration: transPM,
		Category:          domain.ActivityAttraction,
	})
	attractionCost += req.Party.Cost(chosen.afternoon.Price)
	currentPos = chosen.afternoon.Coord
	currentTime = currentTime.Add(time.Duration(transPM+stayPM) * time.Minute)

	// Dinner at 18:00, or immediately if the afternoon ran long.
	dinnerTime := clockOrLater(currentTime, 18)
	_, transDinner, _ := ScoreActivity(currentPos, mealMinutes, chosen.dinner)
	activities = append(activities, domain.Activity{
		Name:              fmt.Sprintf("Dinner - %s", chosen.dinner.Name),
		Start:             dinnerTime,
		End:               dinnerTime.Add(mealMinutes * time.Minute),
		TransportMode:     domain.TransportWalking,
		TransportDuration: transDinner,
		Category:          domain.ActivityMeal,
	})
	restaurantCost += req.Party.Cost(chosen.dinner.Price)

	plan := &domain.DayPlan{
		Day:        req.Day,
		Activities: activities,
	}

	totalKm := float64(plan.WalkingMinutes()) * WalkSpeedMetersPerMinute / 1000
	transportCost := TaxiSurcharge(totalKm)

	plan.Restaurant = restaurantCost
	plan.Attraction = attractionCost
	plan.Transport = transportCost
	plan.Contingency = int(0.10 * float64(restaurantCost+transportCost+attractionCost))
	plan.Accommodation = 0 // lodging is priced once at trip level

	result := &DayResult{
		Plan:            plan,
		UsedAttractions: []string{chosen.morning.Name, chosen.afternoon.Name},
		UsedRestaurants: usedRestaurants(chosen),
	}
	if fromSelection {
		result.Rationale = selectionRationale(req.Selection)
	}
	return result, nil
}

// TaxiSurcharge prices the walking overage for a day: 2 currency units per
// kilometer past the first 5 km, nothing below that.
func TaxiSurcharge(totalKm float64) int {
	if totalKm <= 5 {
		return 0
	}
	return int((totalKm - 5) * 2)
}

// resolveSelection validates an external selection against the available
// pools. All four picks must resolve, and the two attractions must differ
// (the same POI cannot be consumed twice); any failure discards the whole
// selection rather than honoring part of it.
func resolveSelection(req DayRequest) (picks, bool) {
	sel := req.Selection
	if sel == nil {
		return picks{}, false
	}

	p := picks{
		morning:   domain.FindByName(req.Attractions, sel.MorningAttraction.Name),
		lunch:     domain.FindByName(req.Restaurants, sel.Lunch.Name),
		afternoon: domain.FindByName(req.Attractions, sel.AfternoonAttraction.Name),
		dinner:    domain.FindByName(req.Restaurants, sel.Dinner.Name),
	}
	if p.morning == nil || p.lunch == nil || p.afternoon == nil || p.dinner == nil {
		return picks{}, false
	}
	if p.morning.Name == p.afternoon.Name {
		return picks{}, false
	}
	return p, true
}

// greedyPicks chooses all four content slots without advisor input: slack
// scoring for the attractions, random choice for the meals. The dinner pick
// avoids the lunch restaurant unless it is the only one left.
func greedyPicks(req DayRequest, start time.Time, from domain.Coordinates, rng *rand.Rand) picks {
	var p picks

	remainingAM := minutesUntil(start, 12)
	p.morning = bestByScore(req.Attractions, from, remainingAM, "")
	p.lunch = req.Restaurants[rng.Intn(len(req.Restaurants))]
	p.afternoon = bestByScore(req.Attractions, from, afternoonWindowMinutes, p.morning.Name)

	others := make([]*domain.POI, 0, len(req.Restaurants))
	for _, r := range req.Restaurants {
		if r.Name != p.lunch.Name {
			others = append(others, r)
		}
	}
	if len(others) == 0 {
		others = req.Restaurants
	}
	p.dinner = others[rng.Intn(len(others))]

	return p
}

func usedRestaurants(p picks) []string {
	if p.lunch.Name == p.dinner.Name {
		return []string{p.lunch.Name}
	}
	return []string{p.lunch.Name, p.dinner.Name}
}

func selectionRationale(sel *domain.DaySelection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Morning attraction: %s\n", sel.MorningAttraction.Reason)
	fmt.Fprintf(&b, "Lunch: %s\n", sel.Lunch.Reason)
	fmt.Fprintf(&b, "Afternoon attraction: %s\n", sel.AfternoonAttraction.Reason)
	fmt.Fprintf(&b, "Dinner: %s\n", sel.Dinner.Reason)
	fmt.Fprintf(&b, "Overall: %s", sel.OverallReason)
	return b.String()
}

// clockOrLater pins t to the given hour of its day, or leaves it as-is when
// it is already past that hour.
func clockOrLater(t time.Time, hour int) time.Time {
	if t.Hour() < hour {
		return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
	}
	return t
}

// minutesUntil returns the whole minutes from t to the given hour of its
// day. Negative when t is already past it; score clamping handles that.
func minutesUntil(t time.Time, hour int) int {
	target := time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
	return int(target.Sub(t).Minutes())
}
