package handler

import (
	"net/http"

	"github.com/crewcall-dev/crew-manager/backend/internal/domain"
)

type ContextKey string

var (
	ShiftCtx      ContextKey = "shift"
	AssignmentCtx ContextKey = "assignment"
)

func shiftFromContext(r *http.Request) *domain.Shift {
	return r.Context().Value(ShiftCtx).(*domain.Shift)
}

func assignmentFromContext(r *http.Request) *domain.Assignment {
	return r.Context().Value(AssignmentCtx).(*domain.Assignment)
}
