package domain

import "time"

type AssignmentStatus string

const (
	StatusAssigned   AssignmentStatus = "assigned"
	StatusClockedIn  AssignmentStatus = "clocked_in"
	StatusOnBreak    AssignmentStatus = "on_break"
	StatusClockedOut AssignmentStatus = "clocked_out"
	StatusShiftEnded AssignmentStatus = "shift_ended"
	StatusNoShow     AssignmentStatus = "no_show"
	StatusUpForGrabs AssignmentStatus = "up_for_grabs"
)

// IsTerminal reports whether no further lifecycle transition is valid.
// UpForGrabs is terminal for the dropping worker but the slot itself can
// still be ended in bulk or reclaimed by a replacement, so it is not
// terminal here.
func (s AssignmentStatus) IsTerminal() bool {
	return s == StatusShiftEnded || s == StatusNoShow
}

// TimeEntry is one work segment of an assignment. Opened on clock-in,
// closed on the paired clock-out. The break fields record the window
// between this segment and the next one when the worker went on break.
type TimeEntry struct {
	ID         int64      `json:"id"`
	ClockIn    time.Time  `json:"clockIn"`
	ClockOut   *time.Time `json:"clockOut"`
	BreakStart *time.Time `json:"breakStart,omitempty"`
	BreakEnd   *time.Time `json:"breakEnd,omitempty"`
}

func (e *TimeEntry) IsOpen() bool {
	return e.ClockOut == nil
}

type Assignment struct {
	ID          int64            `json:"id"`
	ShiftID     int64            `json:"shiftID"`
	UserID      int64            `json:"userID"`
	RoleCode    string           `json:"roleCode"`
	Status      AssignmentStatus `json:"status"`
	TimeEntries []TimeEntry      `json:"timeEntries"`
	CreatedAt   time.Time        `json:"createdAt"`
	Version     int32            `json:"-"`
}

// OpenEntry returns the active time entry, or nil if none. At most one
// entry per assignment is ever open.
func (a *Assignment) OpenEntry() *TimeEntry {
	for i := range a.TimeEntries {
		if a.TimeEntries[i].IsOpen() {
			return &a.TimeEntries[i]
		}
	}
	return nil
}

// LastEntry returns the most recently opened time entry, or nil if the
// worker never clocked in.
func (a *Assignment) LastEntry() *TimeEntry {
	if len(a.TimeEntries) == 0 {
		return nil
	}
	return &a.TimeEntries[len(a.TimeEntries)-1]
}
