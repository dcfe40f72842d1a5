package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/crewcall-dev/crew-manager/backend/internal/domain"
)

func (h *Handler) GetAllRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.repository.GetAllRoles()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, roles)
}

func (h *Handler) CreateRole(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code        string `json:"code" validate:"required,alphanum,max=8"`
		DisplayName string `json:"displayName" validate:"required,max=64"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	role := &domain.Role{
		Code:        strings.ToUpper(req.Code),
		DisplayName: req.DisplayName,
		IsBuiltin:   false,
	}

	if err := h.repository.CreateRole(role); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "roles_pkey":
			h.errorResponse(w, r, http.StatusConflict, "role code already exists")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusCreated, role)
}
