package lifecycle

import "github.com/crewcall-dev/crew-manager/backend/internal/domain"

// ValidateFinalize checks the finalizer precondition: the shift has no
// timesheet yet and every assignment has ended. A shift that already
// carries a timesheet is a conflict (route to view, don't re-finalize);
// incomplete workers block with their count and nothing is created.
func ValidateFinalize(shift *domain.Shift, assignments []*domain.Assignment) error {
	if shift.Timesheet != nil {
		return &ConflictError{Message: "shift has already been finalized"}
	}

	remaining := 0
	for _, a := range assignments {
		if a.Status != domain.StatusShiftEnded {
			remaining++
		}
	}
	if remaining > 0 {
		return &IncompleteShiftError{Remaining: remaining}
	}

	return nil
}
