package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/crewcall-dev/crew-manager/backend/internal/domain"
	"github.com/crewcall-dev/crew-manager/backend/internal/inflight"
	"github.com/crewcall-dev/crew-manager/backend/internal/lifecycle"
)

// saveTransition persists an in-memory lifecycle transition. A version
// clash means another call won the race; the caller's optimistic view is
// stale and the local mutation is discarded with the request.
func (h *Handler) saveTransition(w http.ResponseWriter, r *http.Request, a *domain.Assignment) bool {
	if err := h.repository.SaveAssignmentState(a); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusConflict, "assignment was modified concurrently, refresh and retry")
		default:
			h.internalServerError(w, r, err)
		}
		return false
	}
	return true
}

func (h *Handler) Clock(w http.ResponseWriter, r *http.Request) {
	assignment := assignmentFromContext(r)

	var req struct {
		Action string `json:"action" validate:"required,oneof=clock_in clock_out start_break end_break"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	release, ok := h.acquire(w, r, inflight.AssignmentKey(assignment.ID, req.Action))
	if !ok {
		return
	}
	defer release()

	now := time.Now()
	var err error
	switch req.Action {
	case "clock_in":
		err = lifecycle.ClockIn(assignment, now)
	case "clock_out":
		err = lifecycle.ClockOut(assignment, now)
	case "start_break":
		err = lifecycle.StartBreak(assignment, now)
	case "end_break":
		if assignment.Status != domain.StatusOnBreak {
			err = &lifecycle.ValidationError{Message: "no break to end"}
		} else {
			err = lifecycle.ClockIn(assignment, now)
		}
	}
	if err != nil {
		h.engineError(w, r, err)
		return
	}

	if !h.saveTransition(w, r, assignment) {
		return
	}

	h.writeJSON(w, r, http.StatusOK, assignment)
}

func (h *Handler) EndShift(w http.ResponseWriter, r *http.Request) {
	assignment := assignmentFromContext(r)

	release, ok := h.acquire(w, r, inflight.AssignmentKey(assignment.ID, inflight.ActionEndShift))
	if !ok {
		return
	}
	defer release()

	if err := lifecycle.EndShift(assignment, time.Now()); err != nil {
		h.engineError(w, r, err)
		return
	}

	if !h.saveTransition(w, r, assignment) {
		return
	}

	h.writeJSON(w, r, http.StatusOK, assignment)
}

func (h *Handler) MarkNoShow(w http.ResponseWriter, r *http.Request) {
	assignment := assignmentFromContext(r)

	release, ok := h.acquire(w, r, inflight.AssignmentKey(assignment.ID, inflight.ActionNoShow))
	if !ok {
		return
	}
	defer release()

	if err := lifecycle.MarkNoShow(assignment); err != nil {
		h.engineError(w, r, err)
		return
	}

	if !h.saveTransition(w, r, assignment) {
		return
	}

	h.writeJSON(w, r, http.StatusOK, assignment)
}

func (h *Handler) DropShift(w http.ResponseWriter, r *http.Request) {
	shift := shiftFromContext(r)
	assignment := assignmentFromContext(r)

	release, ok := h.acquire(w, r, inflight.AssignmentKey(assignment.ID, inflight.ActionDrop))
	if !ok {
		return
	}
	defer release()

	if err := lifecycle.ValidateDrop(assignment); err != nil {
		h.engineError(w, r, err)
		return
	}

	cutoff := time.Duration(h.config.DropShift.CutoffHours) * time.Hour
	switch lifecycle.DecideDrop(shift.StartTime, time.Now(), cutoff) {
	case lifecycle.DropRemove:
		if err := h.repository.DeleteAssignment(assignment); err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, http.StatusConflict, "assignment was modified concurrently, refresh and retry")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		h.writeJSON(w, r, http.StatusOK, struct {
			Message string `json:"message"`
		}{Message: "you have been removed from this shift"})

	case lifecycle.DropUpForGrabs:
		assignment.Status = domain.StatusUpForGrabs
		if !h.saveTransition(w, r, assignment) {
			return
		}

		h.publishNotification(domain.NotificationMessage{
			Type: "up_for_grabs",
			To:   h.config.Email.DispatchAddress,
			Data: domain.UpForGrabsNotificationData{
				ShiftName: shift.Name,
				Location:  shift.Location,
				StartTime: shift.StartTime,
				RoleCode:  assignment.RoleCode,
			},
		})

		h.writeJSON(w, r, http.StatusOK, struct {
			Message string `json:"message"`
		}{Message: "shift starts soon, your spot is now up for grabs"})
	}
}

func (h *Handler) UnassignWorker(w http.ResponseWriter, r *http.Request) {
	assignment := assignmentFromContext(r)

	release, ok := h.acquire(w, r, inflight.AssignmentKey(assignment.ID, inflight.ActionUnassign))
	if !ok {
		return
	}
	defer release()

	if err := h.repository.DeleteAssignment(assignment); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusConflict, "assignment was modified concurrently, refresh and retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, struct {
		Message string `json:"message"`
	}{Message: "worker unassigned"})
}
