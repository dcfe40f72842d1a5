package lifecycle

import (
	"time"

	"github.com/crewcall-dev/crew-manager/backend/internal/domain"
)

type DropOutcome int

const (
	// DropRemove deletes the assignment outright; the slot becomes
	// unfilled and the role's assigned count drops by one.
	DropRemove DropOutcome = iota
	// DropUpForGrabs keeps the slot occupied but flags it reclaimable,
	// so a late cancellation stays visible as an open problem.
	DropUpForGrabs
)

// ValidateDrop checks that the worker may self-drop at all. Dropping
// while actively clocked in is not allowed; a slot already up for grabs
// signals a concurrent drop.
func ValidateDrop(a *domain.Assignment) error {
	switch a.Status {
	case domain.StatusAssigned, domain.StatusClockedOut, domain.StatusOnBreak:
		return nil
	case domain.StatusUpForGrabs:
		return &ConflictError{Message: "assignment is already up for grabs"}
	default:
		return validationErrorf("cannot drop a shift while %s", a.Status)
	}
}

// DecideDrop applies the time-to-start threshold: with more than cutoff
// until the shift starts the assignment is removed, otherwise it goes up
// for grabs.
func DecideDrop(shiftStart, now time.Time, cutoff time.Duration) DropOutcome {
	if shiftStart.Sub(now) > cutoff {
		return DropRemove
	}
	return DropUpForGrabs
}
