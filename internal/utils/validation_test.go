package utils

import (
	"testing"
	"time"
)

func TestValidateShiftTimes(t *testing.T) {
	start := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	if err := ValidateShiftTimes(start, start.Add(8*time.Hour)); err != nil {
		t.Fatalf("expected valid times to pass, got %v", err)
	}
	if err := ValidateShiftTimes(start, start); err == nil {
		t.Fatal("expected zero-length shift to be rejected")
	}
	if err := ValidateShiftTimes(start, start.Add(-time.Hour)); err == nil {
		t.Fatal("expected end before start to be rejected")
	}
}
