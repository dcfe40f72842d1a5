package lifecycle

import (
	"testing"
	"time"

	"github.com/crewcall-dev/crew-manager/backend/internal/domain"
)

func TestEndAllWhenEverythingAlreadyEnded(t *testing.T) {
	assignments := []*domain.Assignment{
		assignmentWithStatus(domain.StatusShiftEnded),
		assignmentWithStatus(domain.StatusShiftEnded),
	}

	res := EndAll(assignments, base)

	if !res.AlreadyEnded {
		t.Fatal("expected AlreadyEnded")
	}
	if len(res.Ended) != 0 || len(res.Failed) != 0 {
		t.Fatalf("expected zero affected workers, got %d ended %d failed", len(res.Ended), len(res.Failed))
	}
}

func TestEndAllEmptyShift(t *testing.T) {
	res := EndAll(nil, base)

	if !res.AlreadyEnded {
		t.Fatal("a shift without assignments has nothing to end")
	}
}

func TestEndAllMixedShift(t *testing.T) {
	// one crew chief mid-shift, two stagehands who never clocked in
	cc := &domain.Assignment{ID: 1, RoleCode: domain.RoleCodeCrewChief, Status: domain.StatusAssigned}
	if err := ClockIn(cc, base); err != nil {
		t.Fatal(err)
	}
	sh1 := &domain.Assignment{ID: 2, RoleCode: domain.RoleCodeStagehand, Status: domain.StatusAssigned}
	sh2 := &domain.Assignment{ID: 3, RoleCode: domain.RoleCodeStagehand, Status: domain.StatusAssigned}

	res := EndAll([]*domain.Assignment{cc, sh1, sh2}, base.Add(8*time.Hour))

	if len(res.Ended) != 3 {
		t.Fatalf("expected all 3 assignments ended, got %d", len(res.Ended))
	}
	for _, a := range res.Ended {
		if a.Status != domain.StatusShiftEnded {
			t.Fatalf("assignment %d not ended: %q", a.ID, a.Status)
		}
	}
	if cc.OpenEntry() != nil {
		t.Fatal("ending the shift must close the crew chief's open time entry")
	}
}

func TestEndAllReportsTerminalMembers(t *testing.T) {
	noShow := &domain.Assignment{ID: 7, Status: domain.StatusNoShow}
	active := &domain.Assignment{ID: 8, Status: domain.StatusAssigned}

	res := EndAll([]*domain.Assignment{noShow, active}, base)

	if len(res.Ended) != 1 || res.Ended[0].ID != 8 {
		t.Fatalf("expected only the active assignment to end, got %v", res.Ended)
	}
	if len(res.Failed) != 1 || res.Failed[0].AssignmentID != 7 {
		t.Fatalf("expected the no-show to be reported, got %v", res.Failed)
	}
}

func TestEndAllIncludesUpForGrabs(t *testing.T) {
	ufg := &domain.Assignment{ID: 4, Status: domain.StatusUpForGrabs}

	res := EndAll([]*domain.Assignment{ufg}, base)

	if len(res.Ended) != 1 || ufg.Status != domain.StatusShiftEnded {
		t.Fatal("up-for-grabs slots are still on the shift and must be ended")
	}
}
