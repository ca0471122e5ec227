package handlers

import (
	"net/http"
)

type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

func (h *RootHandler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":        "lotfinder",
		"description": "Campus parking lots ranked by walking distance to where you are going",
		"version":     "1.0.0",
		"endpoints": map[string]string{
			"GET /":                             "API information",
			"GET /health":                       "Health check",
			"GET /metrics":                      "Prometheus metrics",
			"GET /parking/locations":            "Known campus locations",
			"GET /parking/locations/resolve?q=": "Resolve a place name",
			"GET /parking/recommend?q=":         "Closest lots to a place mentioned in text",
			"GET /parking/nearby?lat=&lng=":     "Lots ranked around a map point",
			"GET /parking/nearby/{location}":    "Lots ranked around a campus location",
			"POST /parking/chat":                "Conversational parking helper",
		},
	})
}

func (h *RootHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"error":   "Route not found",
		"message": "Check the root endpoint (/) for available routes",
	})
}
