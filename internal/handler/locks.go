package handler

import (
	"context"
	"log/slog"
	"net/http"
)

// acquire sets the in-flight busy flag for key and writes the refusal
// when it cannot: 409 while a prior call for the same key is pending,
// 503 when the flag store is unreachable (the action is refused before
// anything is dispatched). Returns a release func and whether the flag
// was taken.
func (h *Handler) acquire(w http.ResponseWriter, r *http.Request, key string) (func(), bool) {
	ok, err := h.locks.TryAcquire(r.Context(), key)
	if err != nil {
		h.errorResponse(w, r, http.StatusServiceUnavailable, "engine unavailable, action was not dispatched")
		return nil, false
	}
	if !ok {
		h.errorResponse(w, r, http.StatusConflict, "operation already in progress")
		return nil, false
	}

	release := func() {
		// the request context may already be done; the TTL still bounds a
		// leaked flag if this fails
		if err := h.locks.Release(context.Background(), key); err != nil {
			slog.Error("failed to release in-flight flag", "key", key, "error", err)
		}
	}

	return release, true
}
