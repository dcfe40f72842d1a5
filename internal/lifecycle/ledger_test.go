package lifecycle

import (
	"testing"
	"time"

	"github.com/crewcall-dev/crew-manager/backend/internal/domain"
)

func TestTotalWorkedMinutesClosedEntry(t *testing.T) {
	out := base.Add(90 * time.Minute)
	a := &domain.Assignment{
		Status: domain.StatusClockedOut,
		TimeEntries: []domain.TimeEntry{
			{ClockIn: base, ClockOut: &out},
		},
	}

	if got := TotalWorkedMinutes(a); got != 90 {
		t.Fatalf("expected 90 worked minutes, got %d", got)
	}
}

func TestOpenEntryCountsTowardSessionOnly(t *testing.T) {
	a := &domain.Assignment{
		Status: domain.StatusClockedIn,
		TimeEntries: []domain.TimeEntry{
			{ClockIn: base},
		},
	}

	if got := TotalWorkedMinutes(a); got != 0 {
		t.Fatalf("open entry must contribute 0 to total, got %d", got)
	}

	now := base.Add(45 * time.Minute)
	if got := CurrentSessionMinutes(a, now); got != 45 {
		t.Fatalf("expected a 45 minute session, got %d", got)
	}
}

func TestCurrentSessionMinutesWithoutOpenEntry(t *testing.T) {
	out := base.Add(time.Hour)
	a := &domain.Assignment{
		Status: domain.StatusClockedOut,
		TimeEntries: []domain.TimeEntry{
			{ClockIn: base, ClockOut: &out},
		},
	}

	if got := CurrentSessionMinutes(a, base.Add(2*time.Hour)); got != 0 {
		t.Fatalf("expected 0 session minutes with no open entry, got %d", got)
	}
}

func TestTotalWorkedMinutesAcrossSegments(t *testing.T) {
	out1 := base.Add(2 * time.Hour)
	in2 := out1.Add(30 * time.Minute)
	out2 := in2.Add(90 * time.Minute)
	a := &domain.Assignment{
		Status: domain.StatusShiftEnded,
		TimeEntries: []domain.TimeEntry{
			{ClockIn: base, ClockOut: &out1, BreakStart: &out1, BreakEnd: &in2},
			{ClockIn: in2, ClockOut: &out2},
		},
	}

	// 120 worked + 90 worked, the 30 minute break excluded
	if got := TotalWorkedMinutes(a); got != 210 {
		t.Fatalf("expected 210 worked minutes, got %d", got)
	}
}
