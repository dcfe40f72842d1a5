package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/crewcall-dev/crew-manager/backend/internal/lifecycle"
)

func (h *Handler) logInternalServerError(r *http.Request, err error) {
	slog.Error("internal server error", "method", r.Method, "path", r.URL.Path, "error", err)
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logInternalServerError(r, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// errorResponse returns the machine-readable error string the caller
// surfaces verbatim.
func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.writeJSON(w, r, status, errorBody{Error: msg})
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		h.errorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	h.errorResponse(w, r, http.StatusBadRequest, validationErrors[0].Translate(h.translator))
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logInternalServerError(r, err)
	h.errorResponse(w, r, http.StatusInternalServerError, "internal server error")
}

// engineError maps the lifecycle taxonomy onto status codes: validation
// failures are 400, conflicts 409, anything else is unexpected.
func (h *Handler) engineError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *lifecycle.ValidationError
		incompleteErr *lifecycle.IncompleteShiftError
		conflictErr   *lifecycle.ConflictError
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &incompleteErr):
		h.errorResponse(w, r, http.StatusBadRequest, err.Error())
	case errors.As(err, &conflictErr):
		h.errorResponse(w, r, http.StatusConflict, err.Error())
	default:
		h.internalServerError(w, r, err)
	}
}
