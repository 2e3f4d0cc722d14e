package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mkrasikov/go-filmorate/internal/utils"
)

// pathID extracts a numeric path parameter. Non-numeric values are reported
// as a client error.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("path parameter %q must be a number, got %q", name, raw)
	}
	return id, nil
}

// respondError maps a service or storage error onto an HTTP status and writes
// a JSON error body.
func respondError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, map[string]string{"error": err.Error()}, statusFromError(err)) //nolint:errcheck
}

// respondBadRequest writes a 400 with a JSON error body.
func respondBadRequest(w http.ResponseWriter, message string) {
	utils.WriteJSON(w, map[string]string{"error": message}, http.StatusBadRequest) //nolint:errcheck
}
