// Package lifecycle holds the rules of the assignment lifecycle engine:
// the per-worker state machine, the time entry ledger, the staffing
// tracker, the drop-shift policy and the shift-level bulk operations.
// Everything in this package mutates in-memory domain values only; the
// caller persists the outcome.
package lifecycle

import (
	"time"

	"github.com/crewcall-dev/crew-manager/backend/internal/domain"
)

// ClockIn starts (or resumes) a work segment. Valid from Assigned,
// OnBreak and ClockedOut. A pending break window on the previous entry is
// closed, then a new active time entry opens.
func ClockIn(a *domain.Assignment, now time.Time) error {
	switch a.Status {
	case domain.StatusAssigned, domain.StatusOnBreak, domain.StatusClockedOut:
	default:
		return validationErrorf("cannot clock in while %s", a.Status)
	}

	if last := a.LastEntry(); last != nil {
		// entries are append-only and chronologically non-decreasing
		if last.ClockOut != nil && now.Before(*last.ClockOut) {
			return validationErrorf("clock-in time precedes the previous clock-out")
		}
		if last.BreakStart != nil && last.BreakEnd == nil {
			end := now
			last.BreakEnd = &end
		}
	}

	a.TimeEntries = append(a.TimeEntries, domain.TimeEntry{ClockIn: now})
	a.Status = domain.StatusClockedIn

	return nil
}

// ClockOut closes the active work segment. Valid only from ClockedIn.
func ClockOut(a *domain.Assignment, now time.Time) error {
	if a.Status != domain.StatusClockedIn {
		return validationErrorf("cannot clock out while %s", a.Status)
	}

	entry := a.OpenEntry()
	if entry == nil {
		return validationErrorf("no open time entry to clock out of")
	}
	if now.Before(entry.ClockIn) {
		return validationErrorf("clock-out time precedes the clock-in")
	}

	out := now
	entry.ClockOut = &out
	a.Status = domain.StatusClockedOut

	return nil
}

// StartBreak closes the active work segment and marks the start of a
// break window on it. Valid only from ClockedIn; the window closes on the
// next clock-in.
func StartBreak(a *domain.Assignment, now time.Time) error {
	if a.Status != domain.StatusClockedIn {
		return validationErrorf("cannot start a break while %s", a.Status)
	}

	entry := a.OpenEntry()
	if entry == nil {
		return validationErrorf("no open time entry to start a break from")
	}
	if now.Before(entry.ClockIn) {
		return validationErrorf("break start precedes the clock-in")
	}

	out := now
	entry.ClockOut = &out
	entry.BreakStart = &out
	a.Status = domain.StatusOnBreak

	return nil
}

// EndShift moves the assignment to its final ShiftEnded state, forcing a
// clock-out if a work segment is still open and closing a pending break
// window. Valid from any non-terminal status.
func EndShift(a *domain.Assignment, now time.Time) error {
	if a.Status.IsTerminal() {
		return validationErrorf("shift already ended for this assignment")
	}

	if entry := a.OpenEntry(); entry != nil {
		out := now
		if out.Before(entry.ClockIn) {
			out = entry.ClockIn
		}
		entry.ClockOut = &out
	}
	if last := a.LastEntry(); last != nil && last.BreakStart != nil && last.BreakEnd == nil {
		end := now
		last.BreakEnd = &end
	}

	a.Status = domain.StatusShiftEnded

	return nil
}

// MarkNoShow is valid only from Assigned, before any time was logged.
func MarkNoShow(a *domain.Assignment) error {
	if a.Status != domain.StatusAssigned {
		return validationErrorf("cannot mark no-show while %s", a.Status)
	}
	if len(a.TimeEntries) > 0 {
		return validationErrorf("cannot mark no-show after time has been logged")
	}

	a.Status = domain.StatusNoShow

	return nil
}
