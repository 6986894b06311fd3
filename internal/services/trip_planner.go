package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
)

// Hour of day at which every trip day starts.
const dayStartHour = 8

// Candidate lists handed to the advisor are capped so one day's request
// stays small even for POI-rich cities.
const advisorCandidateLimit = 15

type TripRequest struct {
	Lodging     domain.Lodging
	Party       domain.Party
	Attractions []*domain.POI
	Restaurants []*domain.POI
	StartDate   time.Time
	Days        int
	Budget      int
	Seed        int64
}

type PlannedDay struct {
	Plan      *domain.DayPlan
	Rationale string
}

// The ordered outcome of a trip. FailedDay is zero when every requested day
// was planned; otherwise it names the first day the pools could not fill and
// Days holds the itinerary up to the last successful day.
type TripItinerary struct {
	Days      []PlannedDay
	FailedDay int
	Notice    string
}

// PlanTrip iterates the trip days in order, invoking the day planner once
// per day and consuming its choices from the candidate pools so no POI
// repeats across days.
//
// The loop is sequential by construction: each day reads pool state mutated
// by all previous days, so days cannot be planned out of order or in
// parallel. Candidate exhaustion truncates the itinerary at the last
// successful day rather than failing the whole trip; cancellation is checked
// once per day boundary.
func PlanTrip(ctx context.Context, req TripRequest, advisor ports.SelectionProvider) (*TripItinerary, error) {
	if req.Days < 1 {
		return nil, fmt.Errorf("plan trip: days must be at least 1, got %d", req.Days)
	}
	if err := req.Party.Validate(); err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}
	if err := req.Lodging.Coord.Validate(); err != nil {
		return nil, fmt.Errorf("plan trip: lodging %q: %w", req.Lodging.Name, err)
	}

	// Own the pools: the caller's slices stay untouched.
	attractions := append([]*domain.POI(nil), req.Attractions...)
	restaurants := append([]*domain.POI(nil), req.Restaurants...)

	rng := rand.New(rand.NewSource(req.Seed))

	it := &TripItinerary{Days: make([]PlannedDay, 0, req.Days)}

	for day := 1; day <= req.Days; day++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("plan trip: day %d: %w", day, err)
		}

		dayStart := dayStartTime(req.StartDate, day)

		var selection *domain.DaySelection
		if advisor != nil {
			sel, err := advisor.DaySelection(ctx, ports.SelectionRequest{
				Day:         day,
				Lodging:     req.Lodging,
				Party:       req.Party,
				Attractions: capPool(attractions, advisorCandidateLimit),
				Restaurants: capPool(restaurants, advisorCandidateLimit),
			})
			if err != nil {
				// Advisor failures are never fatal; the day falls back to greedy.
				log.Printf("plan trip: day=%d advisor failed, falling back to greedy: %v", day, err)
			} else {
				selection = sel
			}
		}

		res, err := PlanDay(DayRequest{
			Day:         day,
			Start:       dayStart,
			Lodging:     req.Lodging,
			Party:       req.Party,
			Attractions: attractions,
			Restaurants: restaurants,
			Selection:   selection,
			Rand:        rng,
		})
		if err != nil {
			var ice *domain.InsufficientCandidatesError
			if errors.As(err, &ice) {
				it.FailedDay = ice.Day
				it.Notice = fmt.Sprintf("itinerary truncated: %v", ice)
				return it, nil
			}
			return nil, fmt.Errorf("plan trip: day %d: %w", day, err)
		}

		it.Days = append(it.Days, PlannedDay{Plan: res.Plan, Rationale: res.Rationale})

		// Consume the day's choices so later days cannot repeat them.
		attractions = domain.RemoveByName(attractions, res.UsedAttractions)
		restaurants = domain.RemoveByName(restaurants, res.UsedRestaurants)
	}

	return it, nil
}

func dayStartTime(startDate time.Time, day int) time.Time {
	d := startDate.AddDate(0, 0, day-1)
	return time.Date(d.Year(), d.Month(), d.Day(), dayStartHour, 0, 0, 0, d.Location())
}

func capPool(pool []*domain.POI, limit int) []*domain.POI {
	if len(pool) <= limit {
		return pool
	}
	return pool[:limit]
}
