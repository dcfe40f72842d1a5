package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("request handled", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // slog mangles multi-line stack traces
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) shiftCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shiftIDParam := chi.URLParam(r, "shiftID")
		shiftID, err := strconv.ParseInt(shiftIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, http.StatusBadRequest, "invalid shift id")
			return
		}

		shift, err := h.repository.GetShiftByID(shiftID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, http.StatusNotFound, "shift not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), ShiftCtx, shift)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) assignmentCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assignmentIDParam := chi.URLParam(r, "assignmentID")
		assignmentID, err := strconv.ParseInt(assignmentIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, http.StatusBadRequest, "invalid assignment id")
			return
		}

		assignment, err := h.repository.GetAssignmentByID(assignmentID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, http.StatusNotFound, "assignment not found")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		shift := shiftFromContext(r)
		if assignment.ShiftID != shift.ID {
			h.errorResponse(w, r, http.StatusNotFound, "assignment does not belong to this shift")
			return
		}

		ctx := context.WithValue(r.Context(), AssignmentCtx, assignment)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
