package lifecycle

import (
	"errors"
	"testing"

	"github.com/crewcall-dev/crew-manager/backend/internal/domain"
)

func TestValidateFinalizeAllEnded(t *testing.T) {
	shift := &domain.Shift{ID: 10}
	assignments := []*domain.Assignment{
		assignmentWithStatus(domain.StatusShiftEnded),
		assignmentWithStatus(domain.StatusShiftEnded),
	}

	if err := ValidateFinalize(shift, assignments); err != nil {
		t.Fatalf("expected finalize to pass, got %v", err)
	}
}

func TestValidateFinalizeReportsRemaining(t *testing.T) {
	shift := &domain.Shift{ID: 10}
	// 5 assignments, 2 ended
	assignments := []*domain.Assignment{
		assignmentWithStatus(domain.StatusShiftEnded),
		assignmentWithStatus(domain.StatusShiftEnded),
		assignmentWithStatus(domain.StatusAssigned),
		assignmentWithStatus(domain.StatusClockedIn),
		assignmentWithStatus(domain.StatusUpForGrabs),
	}

	err := ValidateFinalize(shift, assignments)
	var incompleteErr *IncompleteShiftError
	if !errors.As(err, &incompleteErr) {
		t.Fatalf("expected IncompleteShiftError, got %T: %v", err, err)
	}
	if incompleteErr.Remaining != 3 {
		t.Fatalf("expected 3 remaining, got %d", incompleteErr.Remaining)
	}
}

func TestValidateFinalizeNoShowBlocks(t *testing.T) {
	shift := &domain.Shift{ID: 10}
	assignments := []*domain.Assignment{
		assignmentWithStatus(domain.StatusShiftEnded),
		assignmentWithStatus(domain.StatusNoShow),
	}

	err := ValidateFinalize(shift, assignments)
	var incompleteErr *IncompleteShiftError
	if !errors.As(err, &incompleteErr) {
		t.Fatalf("expected IncompleteShiftError, got %T: %v", err, err)
	}
	if incompleteErr.Remaining != 1 {
		t.Fatalf("expected 1 remaining, got %d", incompleteErr.Remaining)
	}
}

func TestValidateFinalizeTwiceConflicts(t *testing.T) {
	shift := &domain.Shift{
		ID:        10,
		Timesheet: &domain.Timesheet{ID: "abc", ShiftID: 10, Status: domain.TimesheetStatusPendingApproval},
	}

	err := ValidateFinalize(shift, nil)
	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("expected ConflictError, got %T: %v", err, err)
	}
}
