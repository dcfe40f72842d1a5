package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/crewcall-dev/crew-manager/backend/internal/domain"
)

func TestDecideDrop(t *testing.T) {
	cutoff := 24 * time.Hour
	now := base

	tests := []struct {
		name       string
		hoursUntil time.Duration
		want       DropOutcome
	}{
		{"30 hours out removes", 30 * time.Hour, DropRemove},
		{"10 hours out goes up for grabs", 10 * time.Hour, DropUpForGrabs},
		{"exactly at the cutoff goes up for grabs", 24 * time.Hour, DropUpForGrabs},
		{"just past the cutoff removes", 24*time.Hour + time.Minute, DropRemove},
		{"shift already started goes up for grabs", -time.Hour, DropUpForGrabs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecideDrop(now.Add(tt.hoursUntil), now, cutoff); got != tt.want {
				t.Fatalf("DecideDrop = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateDrop(t *testing.T) {
	droppable := []domain.AssignmentStatus{domain.StatusAssigned, domain.StatusClockedOut, domain.StatusOnBreak}
	for _, status := range droppable {
		t.Run(string(status), func(t *testing.T) {
			if err := ValidateDrop(assignmentWithStatus(status)); err != nil {
				t.Fatalf("expected drop from %q to be allowed, got %v", status, err)
			}
		})
	}

	t.Run("clocked in", func(t *testing.T) {
		mustBeValidationError(t, ValidateDrop(assignmentWithStatus(domain.StatusClockedIn)))
	})
	t.Run("terminal", func(t *testing.T) {
		mustBeValidationError(t, ValidateDrop(assignmentWithStatus(domain.StatusShiftEnded)))
		mustBeValidationError(t, ValidateDrop(assignmentWithStatus(domain.StatusNoShow)))
	})
	t.Run("double drop conflicts", func(t *testing.T) {
		err := ValidateDrop(assignmentWithStatus(domain.StatusUpForGrabs))
		var conflictErr *ConflictError
		if !errors.As(err, &conflictErr) {
			t.Fatalf("expected ConflictError, got %T: %v", err, err)
		}
	})
}
