package domain

import "time"

type TimesheetStatus string

const (
	TimesheetStatusPendingApproval TimesheetStatus = "pending_approval"
	TimesheetStatusApproved        TimesheetStatus = "approved"
	TimesheetStatusRejected        TimesheetStatus = "rejected"
)

// Timesheet is the closed-out record of a shift's worked time. Created
// exactly once per shift by the finalizer; the approval workflow owns it
// afterwards.
type Timesheet struct {
	ID        string          `json:"id"`
	ShiftID   int64           `json:"shiftID"`
	Status    TimesheetStatus `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}
