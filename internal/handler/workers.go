package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/crewcall-dev/crew-manager/backend/internal/domain"
)

func (h *Handler) GetAllWorkers(w http.ResponseWriter, r *http.Request) {
	workers, err := h.repository.GetAllUsers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, workers)
}

func (h *Handler) CreateWorker(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName string `json:"fullName" validate:"required,max=128"`
		Email    string `json:"email" validate:"required,email"`
		Phone    string `json:"phone" validate:"omitempty,max=32"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	worker := &domain.User{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		IsActive: true,
	}

	if err := h.repository.CreateUser(worker); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "users_email_key":
			h.errorResponse(w, r, http.StatusConflict, "a worker with this email already exists")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusCreated, worker)
}
