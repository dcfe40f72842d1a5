package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/crewcall-dev/crew-manager/backend/internal/domain"
	"github.com/crewcall-dev/crew-manager/backend/internal/inflight"
	"github.com/crewcall-dev/crew-manager/backend/internal/lifecycle"
	"github.com/crewcall-dev/crew-manager/backend/internal/utils"
)

type requirementRequest struct {
	RoleCode      string `json:"roleCode" validate:"required,max=8"`
	RequiredCount int32  `json:"requiredCount" validate:"min=0"`
}

// resolveRequirements normalizes submitted requirements against the role
// registry: codes are uppercased and must exist, duplicates are rejected,
// and the Crew Chief floor is applied.
func (h *Handler) resolveRequirements(reqs []requirementRequest) ([]domain.RoleRequirement, error) {
	roles, err := h.repository.GetAllRoles()
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(roles))
	for _, role := range roles {
		known[role.Code] = true
	}

	requirements := make([]domain.RoleRequirement, 0, len(reqs))
	seen := make(map[string]bool, len(reqs))
	for _, req := range reqs {
		code := strings.ToUpper(req.RoleCode)
		if !known[code] {
			return nil, &lifecycle.ValidationError{Message: fmt.Sprintf("unknown role code %q", code)}
		}
		if seen[code] {
			return nil, &lifecycle.ValidationError{Message: fmt.Sprintf("duplicate role code %q", code)}
		}
		seen[code] = true
		requirements = append(requirements, domain.RoleRequirement{
			RoleCode:      code,
			RequiredCount: req.RequiredCount,
		})
	}

	return domain.NormalizeRequirements(requirements), nil
}

func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string               `json:"name" validate:"required,max=128"`
		Location     string               `json:"location" validate:"required,max=256"`
		StartTime    time.Time            `json:"startTime" validate:"required"`
		EndTime      time.Time            `json:"endTime" validate:"required"`
		Requirements []requirementRequest `json:"requirements" validate:"dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := utils.ValidateShiftTimes(req.StartTime, req.EndTime); err != nil {
		h.badRequest(w, r, err)
		return
	}

	requirements, err := h.resolveRequirements(req.Requirements)
	if err != nil {
		h.engineError(w, r, err)
		return
	}

	shift := &domain.Shift{
		Name:         req.Name,
		Location:     req.Location,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Requirements: requirements,
	}

	if err := h.repository.CreateShift(shift); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, shift)
}

func (h *Handler) GetAllShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.repository.GetAllShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, shifts)
}

func (h *Handler) GetShift(w http.ResponseWriter, r *http.Request) {
	shift := shiftFromContext(r)

	assignments, err := h.repository.GetAssignmentsByShiftID(shift.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, struct {
		*domain.Shift
		Assignments []*domain.Assignment      `json:"assignments"`
		Staffing    lifecycle.StaffingSummary `json:"staffing"`
	}{
		Shift:       shift,
		Assignments: assignments,
		Staffing:    lifecycle.Staffing(shift.Requirements, assignments),
	})
}

func (h *Handler) UpdateRequirements(w http.ResponseWriter, r *http.Request) {
	shift := shiftFromContext(r)

	release, ok := h.acquire(w, r, inflight.ShiftKey(shift.ID, inflight.ActionUpdateReqs))
	if !ok {
		return
	}
	defer release()

	var req struct {
		WorkerRequirements []requirementRequest `json:"workerRequirements" validate:"required,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// the caller supplies the full desired set, no partial merge
	requirements, err := h.resolveRequirements(req.WorkerRequirements)
	if err != nil {
		h.engineError(w, r, err)
		return
	}

	if err := h.repository.ReplaceShiftRequirements(shift, requirements); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusConflict, "shift was modified concurrently, refresh and retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, shift)
}

func (h *Handler) AssignWorker(w http.ResponseWriter, r *http.Request) {
	shift := shiftFromContext(r)

	release, ok := h.acquire(w, r, inflight.ShiftKey(shift.ID, inflight.ActionAssign))
	if !ok {
		return
	}
	defer release()

	var req struct {
		UserID              int64  `json:"userID" validate:"required"`
		RoleCode            string `json:"roleCode" validate:"required,max=8"`
		ReplaceAssignmentID *int64 `json:"replaceAssignmentID"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	worker, err := h.repository.GetUserByID(req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusBadRequest, "worker does not exist")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}
	if !worker.IsActive {
		h.errorResponse(w, r, http.StatusBadRequest, "worker is not active")
		return
	}

	roleCode := strings.ToUpper(req.RoleCode)
	roles, err := h.repository.GetAllRoles()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	known := false
	for _, role := range roles {
		if role.Code == roleCode {
			known = true
			break
		}
	}
	if !known {
		h.errorResponse(w, r, http.StatusBadRequest, fmt.Sprintf("unknown role code %q", roleCode))
		return
	}

	assignment := &domain.Assignment{
		ShiftID:  shift.ID,
		UserID:   req.UserID,
		RoleCode: roleCode,
		Status:   domain.StatusAssigned,
	}

	if req.ReplaceAssignmentID != nil {
		outgoing, err := h.repository.GetAssignmentByID(*req.ReplaceAssignmentID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, http.StatusNotFound, "assignment to replace not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
		if outgoing.ShiftID != shift.ID {
			h.errorResponse(w, r, http.StatusNotFound, "assignment to replace does not belong to this shift")
			return
		}

		// the replacement takes over the outgoing worker's role slot
		assignment.RoleCode = outgoing.RoleCode

		if err := h.repository.ReplaceAssignment(outgoing, assignment); err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, http.StatusConflict, "assignment was modified concurrently, refresh and retry")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		h.writeJSON(w, r, http.StatusOK, struct {
			Action     string             `json:"action"`
			Assignment *domain.Assignment `json:"assignment"`
		}{Action: "replaced", Assignment: assignment})
		return
	}

	if err := h.repository.CreateAssignment(assignment); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "assignments_shift_id_user_id_key":
			h.errorResponse(w, r, http.StatusConflict, "worker is already assigned to this shift")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusCreated, struct {
		Action     string             `json:"action"`
		Assignment *domain.Assignment `json:"assignment"`
	}{Action: "assigned", Assignment: assignment})
}

func (h *Handler) EndAllShifts(w http.ResponseWriter, r *http.Request) {
	shift := shiftFromContext(r)

	release, ok := h.acquire(w, r, inflight.ShiftKey(shift.ID, inflight.ActionEndAll))
	if !ok {
		return
	}
	defer release()

	assignments, err := h.repository.GetAssignmentsByShiftID(shift.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	res := lifecycle.EndAll(assignments, time.Now())
	if res.AlreadyEnded {
		h.writeJSON(w, r, http.StatusOK, struct {
			Message string `json:"message"`
			Ended   int    `json:"ended"`
		}{Message: "all assignments already ended", Ended: 0})
		return
	}

	// non-atomic fan-out: persist what ended, report the rest so the
	// caller can retry the remainder
	ended := 0
	failed := res.Failed
	for _, a := range res.Ended {
		if err := h.repository.SaveAssignmentState(a); err != nil {
			msg := "failed to save assignment"
			if errors.Is(err, sql.ErrNoRows) {
				msg = "assignment was modified concurrently"
			}
			failed = append(failed, lifecycle.AssignmentFailure{AssignmentID: a.ID, Error: msg})
			continue
		}
		ended++
	}

	h.writeJSON(w, r, http.StatusOK, struct {
		Message string                        `json:"message"`
		Ended   int                           `json:"ended"`
		Failed  []lifecycle.AssignmentFailure `json:"failed,omitempty"`
	}{
		Message: fmt.Sprintf("ended %d of %d active assignments", ended, len(res.Ended)+len(res.Failed)),
		Ended:   ended,
		Failed:  failed,
	})
}

func (h *Handler) FinalizeTimesheet(w http.ResponseWriter, r *http.Request) {
	shift := shiftFromContext(r)

	release, ok := h.acquire(w, r, inflight.ShiftKey(shift.ID, inflight.ActionFinalize))
	if !ok {
		return
	}
	defer release()

	assignments, err := h.repository.GetAssignmentsByShiftID(shift.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := lifecycle.ValidateFinalize(shift, assignments); err != nil {
		h.engineError(w, r, err)
		return
	}

	ts := &domain.Timesheet{
		ID:      uuid.NewString(),
		ShiftID: shift.ID,
		Status:  domain.TimesheetStatusPendingApproval,
	}

	if err := h.repository.CreateTimesheet(ts); err != nil {
		var pgErr *pgconn.PgError
		switch {
		// unique shift_id backstops the precondition check against a
		// concurrent finalize
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "timesheets_shift_id_key":
			h.errorResponse(w, r, http.StatusConflict, "shift has already been finalized")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.publishNotification(domain.NotificationMessage{
		Type: "timesheet_ready",
		To:   h.config.Email.ApprovalsAddress,
		Data: domain.TimesheetReadyNotificationData{
			ShiftName:   shift.Name,
			StartTime:   shift.StartTime,
			TimesheetID: ts.ID,
		},
	})

	h.writeJSON(w, r, http.StatusCreated, struct {
		TimesheetID string `json:"timesheetID"`
	}{TimesheetID: ts.ID})
}

func (h *Handler) GetTimesheet(w http.ResponseWriter, r *http.Request) {
	shift := shiftFromContext(r)

	ts, err := h.repository.GetTimesheetByShiftID(shift.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusNotFound, "shift has not been finalized yet")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, ts)
}
