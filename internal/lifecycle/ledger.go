package lifecycle

import (
	"time"

	"github.com/crewcall-dev/crew-manager/backend/internal/domain"
)

// TotalWorkedMinutes sums the closed work segments of an assignment. An
// entry that is still open contributes nothing here.
func TotalWorkedMinutes(a *domain.Assignment) int {
	total := 0
	for i := range a.TimeEntries {
		entry := &a.TimeEntries[i]
		if entry.ClockOut == nil {
			continue
		}
		total += int(entry.ClockOut.Sub(entry.ClockIn) / time.Minute)
	}
	return total
}

// CurrentSessionMinutes reports how long the open work segment has been
// running, or 0 when the worker is not clocked in.
func CurrentSessionMinutes(a *domain.Assignment, now time.Time) int {
	entry := a.OpenEntry()
	if entry == nil || now.Before(entry.ClockIn) {
		return 0
	}
	return int(now.Sub(entry.ClockIn) / time.Minute)
}
