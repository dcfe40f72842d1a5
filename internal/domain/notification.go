package domain

import "time"

type NotificationMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type UpForGrabsNotificationData struct {
	ShiftName string    `json:"shiftName"`
	Location  string    `json:"location"`
	StartTime time.Time `json:"startTime"`
	RoleCode  string    `json:"roleCode"`
}

type TimesheetReadyNotificationData struct {
	ShiftName   string    `json:"shiftName"`
	StartTime   time.Time `json:"startTime"`
	TimesheetID string    `json:"timesheetID"`
}
