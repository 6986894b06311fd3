package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidCoordinate marks a latitude/longitude outside its valid range.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// ErrImplausibleDistance marks a computed distance too large to be a real
// in-trip leg, signaling upstream coordinate corruption. Recoverable: callers
// substitute a conservative default distance instead of failing the schedule.
var ErrImplausibleDistance = errors.New("implausible distance")

// ErrInvalidSelection marks an external day selection that failed validation
// against the available pools. Recoverable: the planner falls back to greedy
// choice for the whole day, never a partial merge.
var ErrInvalidSelection = errors.New("invalid external selection")

// InsufficientCandidatesError reports that the remaining pools cannot fill a
// required slot for a given day. Fatal for that day and every day after it.
type InsufficientCandidatesError struct {
	Day     int
	Missing string // "attractions" or "restaurants"
}

func (e *InsufficientCandidatesError) Error() string {
	return fmt.Sprintf("insufficient candidates for day %d: no %s left to schedule", e.Day, e.Missing)
}
