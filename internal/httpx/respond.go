package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/alorahq/marketplace/internal/catalog"
	"github.com/alorahq/marketplace/internal/identity"
	"github.com/alorahq/marketplace/internal/orders"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps service errors onto stable status codes. Anything outside
// the taxonomy is a store fault: logged, reported as 500, never retried.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orders.ErrMissingFields),
		errors.Is(err, identity.ErrMissingFields),
		errors.Is(err, catalog.ErrMissingFields),
		errors.Is(err, catalog.ErrTooManyImages),
		errors.Is(err, catalog.ErrEmptyQuery):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, identity.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
	case errors.Is(err, orders.ErrProductNotFound),
		errors.Is(err, orders.ErrOrderNotFound),
		errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, identity.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, orders.ErrInsufficientStock),
		errors.Is(err, orders.ErrAlreadyCancelled),
		errors.Is(err, orders.ErrInvalidStatus),
		errors.Is(err, identity.ErrEmailTaken):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		slog.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
