package utils

import (
	"errors"
	"time"
)

func ValidateShiftTimes(start, end time.Time) error {
	if !end.After(start) {
		return errors.New("shift end time must be after its start time")
	}
	return nil
}
