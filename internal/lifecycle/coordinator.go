package lifecycle

import (
	"time"

	"github.com/crewcall-dev/crew-manager/backend/internal/domain"
)

type AssignmentFailure struct {
	AssignmentID int64  `json:"assignmentID"`
	Error        string `json:"error"`
}

type EndAllResult struct {
	// Ended holds the assignments transitioned to ShiftEnded in memory;
	// the caller persists them and may append persistence failures.
	Ended  []*domain.Assignment
	Failed []AssignmentFailure
	// AlreadyEnded is set when no assignment needed ending. A no-op, not
	// an error.
	AlreadyEnded bool
}

// EndAll fans endShift out over every assignment on a shift that is not
// already ShiftEnded. The operation is not atomic: members that cannot be
// ended (a NoShow is terminal) are reported per assignment and do not
// stop the rest.
func EndAll(assignments []*domain.Assignment, now time.Time) EndAllResult {
	res := EndAllResult{}

	targets := make([]*domain.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.Status != domain.StatusShiftEnded {
			targets = append(targets, a)
		}
	}

	if len(targets) == 0 {
		res.AlreadyEnded = true
		return res
	}

	for _, a := range targets {
		if err := EndShift(a, now); err != nil {
			res.Failed = append(res.Failed, AssignmentFailure{AssignmentID: a.ID, Error: err.Error()})
			continue
		}
		res.Ended = append(res.Ended, a)
	}

	return res
}
