package inflight

import "testing"

func TestAssignmentKey(t *testing.T) {
	if got := AssignmentKey(42, ActionClockIn); got != "inflight_assignment_42_clock_in" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestShiftKey(t *testing.T) {
	if got := ShiftKey(7, ActionEndAll); got != "inflight_shift_7_end_all" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestKeysAreDistinctPerAction(t *testing.T) {
	if AssignmentKey(1, ActionClockIn) == AssignmentKey(1, ActionClockOut) {
		t.Fatal("different actions must map to different keys")
	}
	if AssignmentKey(1, ActionDrop) == ShiftKey(1, ActionDrop) {
		t.Fatal("assignment and shift keys must not collide")
	}
}
