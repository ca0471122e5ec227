package handlers

import (
	"net/http"

	"github.com/campusparking/lotfinder/internal/location"
)

type LocationHandler struct {
	resolver *location.Resolver
}

func NewLocationHandler(resolver *location.Resolver) *LocationHandler {
	return &LocationHandler{resolver: resolver}
}

// ListLocations returns every campus location in registry order
func (h *LocationHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	entries := h.resolver.Registry().All()

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"count":     len(entries),
		"locations": entries,
	})
}

// ResolveLocation maps a free-text name to a campus location
func (h *LocationHandler) ResolveLocation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, "q query parameter is required", "")
		return
	}

	entry, ok := h.resolver.Resolve(q)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":               "Location not found",
			"message":             "No campus location matches " + q,
			"needs_clarification": true,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"query":    q,
		"location": entry,
	})
}
