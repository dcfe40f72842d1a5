package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/crewcall-dev/crew-manager/backend/internal/domain"
)

var base = time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC)

func assignmentWithStatus(status domain.AssignmentStatus) *domain.Assignment {
	return &domain.Assignment{ID: 1, ShiftID: 10, UserID: 100, RoleCode: domain.RoleCodeStagehand, Status: status}
}

func mustBeValidationError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
}

func TestClockInFromAssigned(t *testing.T) {
	a := assignmentWithStatus(domain.StatusAssigned)

	if err := ClockIn(a, base); err != nil {
		t.Fatalf("ClockIn returned error: %v", err)
	}
	if a.Status != domain.StatusClockedIn {
		t.Fatalf("expected status %q, got %q", domain.StatusClockedIn, a.Status)
	}
	if len(a.TimeEntries) != 1 {
		t.Fatalf("expected 1 time entry, got %d", len(a.TimeEntries))
	}
	if !a.TimeEntries[0].IsOpen() {
		t.Fatal("expected the new entry to be open")
	}
}

func TestClockInTwiceFails(t *testing.T) {
	a := assignmentWithStatus(domain.StatusAssigned)

	if err := ClockIn(a, base); err != nil {
		t.Fatalf("first ClockIn returned error: %v", err)
	}
	mustBeValidationError(t, ClockIn(a, base.Add(time.Minute)))

	if len(a.TimeEntries) != 1 {
		t.Fatalf("rejected clock-in must not add an entry, got %d entries", len(a.TimeEntries))
	}
}

func TestClockInFromTerminalStates(t *testing.T) {
	for _, status := range []domain.AssignmentStatus{domain.StatusShiftEnded, domain.StatusNoShow, domain.StatusUpForGrabs} {
		t.Run(string(status), func(t *testing.T) {
			a := assignmentWithStatus(status)
			mustBeValidationError(t, ClockIn(a, base))
			if a.Status != status {
				t.Fatalf("status must not change on rejection, got %q", a.Status)
			}
		})
	}
}

func TestClockOutClosesEntry(t *testing.T) {
	a := assignmentWithStatus(domain.StatusAssigned)
	if err := ClockIn(a, base); err != nil {
		t.Fatal(err)
	}

	out := base.Add(90 * time.Minute)
	if err := ClockOut(a, out); err != nil {
		t.Fatalf("ClockOut returned error: %v", err)
	}
	if a.Status != domain.StatusClockedOut {
		t.Fatalf("expected status %q, got %q", domain.StatusClockedOut, a.Status)
	}
	if a.TimeEntries[0].ClockOut == nil || !a.TimeEntries[0].ClockOut.Equal(out) {
		t.Fatalf("expected clock-out at %v, got %v", out, a.TimeEntries[0].ClockOut)
	}
}

func TestClockOutOnlyValidFromClockedIn(t *testing.T) {
	for _, status := range []domain.AssignmentStatus{
		domain.StatusAssigned,
		domain.StatusOnBreak,
		domain.StatusClockedOut,
		domain.StatusShiftEnded,
		domain.StatusNoShow,
		domain.StatusUpForGrabs,
	} {
		t.Run(string(status), func(t *testing.T) {
			a := assignmentWithStatus(status)
			mustBeValidationError(t, ClockOut(a, base))
		})
	}
}

func TestBreakWindow(t *testing.T) {
	a := assignmentWithStatus(domain.StatusAssigned)
	if err := ClockIn(a, base); err != nil {
		t.Fatal(err)
	}

	breakAt := base.Add(2 * time.Hour)
	if err := StartBreak(a, breakAt); err != nil {
		t.Fatalf("StartBreak returned error: %v", err)
	}
	if a.Status != domain.StatusOnBreak {
		t.Fatalf("expected status %q, got %q", domain.StatusOnBreak, a.Status)
	}

	entry := &a.TimeEntries[0]
	if entry.ClockOut == nil || !entry.ClockOut.Equal(breakAt) {
		t.Fatal("starting a break must close the work segment")
	}
	if entry.BreakStart == nil || !entry.BreakStart.Equal(breakAt) {
		t.Fatal("starting a break must stamp breakStart")
	}

	resumeAt := breakAt.Add(30 * time.Minute)
	if err := ClockIn(a, resumeAt); err != nil {
		t.Fatalf("ClockIn after break returned error: %v", err)
	}
	if entry.BreakEnd == nil || !entry.BreakEnd.Equal(resumeAt) {
		t.Fatal("clocking back in must close the break window")
	}
	if len(a.TimeEntries) != 2 {
		t.Fatalf("expected a second entry after the break, got %d", len(a.TimeEntries))
	}
	if !a.TimeEntries[1].IsOpen() {
		t.Fatal("expected the post-break entry to be open")
	}
}

func TestClockInBeforePreviousClockOutFails(t *testing.T) {
	a := assignmentWithStatus(domain.StatusAssigned)
	if err := ClockIn(a, base); err != nil {
		t.Fatal(err)
	}
	if err := ClockOut(a, base.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}

	mustBeValidationError(t, ClockIn(a, base.Add(30*time.Minute)))
}

func TestEndShiftForcesClockOut(t *testing.T) {
	a := assignmentWithStatus(domain.StatusAssigned)
	if err := ClockIn(a, base); err != nil {
		t.Fatal(err)
	}

	endAt := base.Add(8 * time.Hour)
	if err := EndShift(a, endAt); err != nil {
		t.Fatalf("EndShift returned error: %v", err)
	}
	if a.Status != domain.StatusShiftEnded {
		t.Fatalf("expected status %q, got %q", domain.StatusShiftEnded, a.Status)
	}
	if a.OpenEntry() != nil {
		t.Fatal("EndShift must close the open entry")
	}
	if !a.TimeEntries[0].ClockOut.Equal(endAt) {
		t.Fatalf("expected forced clock-out at %v, got %v", endAt, a.TimeEntries[0].ClockOut)
	}
}

func TestEndShiftFromEveryNonTerminalStatus(t *testing.T) {
	for _, status := range []domain.AssignmentStatus{
		domain.StatusAssigned,
		domain.StatusClockedOut,
		domain.StatusOnBreak,
		domain.StatusUpForGrabs,
	} {
		t.Run(string(status), func(t *testing.T) {
			a := assignmentWithStatus(status)
			if err := EndShift(a, base); err != nil {
				t.Fatalf("EndShift from %q returned error: %v", status, err)
			}
			if a.Status != domain.StatusShiftEnded {
				t.Fatalf("expected status %q, got %q", domain.StatusShiftEnded, a.Status)
			}
		})
	}
}

func TestEndShiftRejectedWhenTerminal(t *testing.T) {
	for _, status := range []domain.AssignmentStatus{domain.StatusShiftEnded, domain.StatusNoShow} {
		t.Run(string(status), func(t *testing.T) {
			a := assignmentWithStatus(status)
			mustBeValidationError(t, EndShift(a, base))
		})
	}
}

func TestEndShiftClosesPendingBreakWindow(t *testing.T) {
	a := assignmentWithStatus(domain.StatusAssigned)
	if err := ClockIn(a, base); err != nil {
		t.Fatal(err)
	}
	if err := StartBreak(a, base.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}

	endAt := base.Add(2 * time.Hour)
	if err := EndShift(a, endAt); err != nil {
		t.Fatal(err)
	}
	if a.TimeEntries[0].BreakEnd == nil || !a.TimeEntries[0].BreakEnd.Equal(endAt) {
		t.Fatal("EndShift must close a pending break window")
	}
}

func TestMarkNoShow(t *testing.T) {
	a := assignmentWithStatus(domain.StatusAssigned)
	if err := MarkNoShow(a); err != nil {
		t.Fatalf("MarkNoShow returned error: %v", err)
	}
	if a.Status != domain.StatusNoShow {
		t.Fatalf("expected status %q, got %q", domain.StatusNoShow, a.Status)
	}
}

func TestMarkNoShowRejectedAfterTimeLogged(t *testing.T) {
	a := assignmentWithStatus(domain.StatusAssigned)
	if err := ClockIn(a, base); err != nil {
		t.Fatal(err)
	}
	mustBeValidationError(t, MarkNoShow(a))
}

func TestMarkNoShowOnlyFromAssigned(t *testing.T) {
	for _, status := range []domain.AssignmentStatus{
		domain.StatusClockedIn,
		domain.StatusOnBreak,
		domain.StatusClockedOut,
		domain.StatusShiftEnded,
		domain.StatusNoShow,
		domain.StatusUpForGrabs,
	} {
		t.Run(string(status), func(t *testing.T) {
			a := assignmentWithStatus(status)
			mustBeValidationError(t, MarkNoShow(a))
		})
	}
}
