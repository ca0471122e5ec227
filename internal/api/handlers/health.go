// Package handlers contains HTTP request handlers
package handlers

import (
	"net/http"
	"time"

	"github.com/campusparking/lotfinder/internal/location"
)

type HealthHandler struct {
	startTime  time.Time
	registry   *location.Registry
	facilities FacilityProvider
}

func NewHealthHandler(registry *location.Registry, facilities FacilityProvider) *HealthHandler {
	return &HealthHandler{
		startTime:  time.Now(),
		registry:   registry,
		facilities: facilities,
	}
}

// Health reports liveness plus whether the lot source can be read.
// An unreadable source answers 503.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, code := "OK", http.StatusOK
	checks := map[string]any{"locations": h.registry.Len()}

	if lots, err := h.facilities.List(r.Context()); err != nil {
		status, code = "DEGRADED", http.StatusServiceUnavailable
		checks["facilities"] = err.Error()
	} else {
		checks["facilities"] = len(lots)
	}

	writeJSON(w, code, map[string]any{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   "1.0.0",
		"uptime":    time.Since(h.startTime).String(),
		"checks":    checks,
	})
}
