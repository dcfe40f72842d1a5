package seed

import (
	"log/slog"
	"math/rand"

	"github.com/crewcall-dev/crew-manager/backend/internal/domain"
	"github.com/crewcall-dev/crew-manager/backend/internal/repository"
	"github.com/crewcall-dev/crew-manager/backend/internal/utils"
)

func SeedRandomWorkers(r *repository.Repository, n int) {
	for i := 0; i < n; i++ {
		worker := utils.GenerateRandomWorker()
		if err := r.CreateUser(worker); err != nil {
			slog.Error("failed to insert worker", "error", err)
			continue
		}
		slog.Info("inserted worker", "id", worker.ID, "name", worker.FullName)
	}
}

func SeedRandomShifts(r *repository.Repository, n int) {
	for i := 0; i < n; i++ {
		shift := utils.GenerateRandomShift()
		if err := r.CreateShift(shift); err != nil {
			slog.Error("failed to insert shift", "error", err)
			continue
		}
		slog.Info("inserted shift", "id", shift.ID, "name", shift.Name, "start", shift.StartTime)
	}
}

// SeedRandomAssignments fills a shift's open role slots from the worker
// pool, at most one assignment per worker.
func SeedRandomAssignments(r *repository.Repository, shiftID int64) {
	shift, err := r.GetShiftByID(shiftID)
	if err != nil {
		slog.Error("failed to load shift", "shiftID", shiftID, "error", err)
		return
	}

	workers, err := r.GetAllUsers()
	if err != nil {
		slog.Error("failed to load workers", "error", err)
		return
	}

	rand.Shuffle(len(workers), func(i, j int) {
		workers[i], workers[j] = workers[j], workers[i]
	})

	next := 0
	for _, req := range shift.Requirements {
		for slot := int32(0); slot < req.RequiredCount; slot++ {
			if next >= len(workers) {
				slog.Warn("ran out of workers before filling the shift", "shiftID", shiftID)
				return
			}

			assignment := &domain.Assignment{
				ShiftID:  shift.ID,
				UserID:   workers[next].ID,
				RoleCode: req.RoleCode,
				Status:   domain.StatusAssigned,
			}
			next++

			if err := r.CreateAssignment(assignment); err != nil {
				slog.Error("failed to insert assignment", "error", err)
				continue
			}
			slog.Info("inserted assignment", "id", assignment.ID, "role", assignment.RoleCode, "userID", assignment.UserID)
		}
	}
}
