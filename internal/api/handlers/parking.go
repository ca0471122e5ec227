package handlers

import (
	"net/http"
	"strconv"

	"github.com/campusparking/lotfinder/internal/location"
	"github.com/campusparking/lotfinder/internal/logger"
	"github.com/campusparking/lotfinder/internal/metrics"
	"github.com/campusparking/lotfinder/internal/models"
	"github.com/campusparking/lotfinder/internal/recommend"
)

const (
	defaultRecommendLimit = recommend.DefaultLimit
	maxRecommendLimit     = 20
	defaultNearbyLimit    = 0 // all lots
	maxNearbyLimit        = 100
	defaultNearbyRadius   = 0 // no radius filter
	maxNearbyRadius       = 5000
)

type ParkingHandler struct {
	recommender *recommend.Recommender
	facilities  FacilityProvider
}

func NewParkingHandler(rec *recommend.Recommender, facilities FacilityProvider) *ParkingHandler {
	return &ParkingHandler{
		recommender: rec,
		facilities:  facilities,
	}
}

// Recommend returns the closest lots to a place mentioned in free text
func (h *ParkingHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, "q query parameter is required", "")
		return
	}

	facilities, ok := h.listFacilities(w, r)
	if !ok {
		return
	}

	limit := parseIntParam(r, "limit", defaultRecommendLimit, 1, maxRecommendLimit)
	rec, found := h.recommender.Recommend(q, facilities, limit)
	if !found {
		metrics.RecommendationsTotal.WithLabelValues("search", "unresolved").Inc()
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":               "Location not found",
			"message":             "Could not tell which campus location you mean; try naming a building",
			"needs_clarification": true,
		})
		return
	}
	metrics.RecommendationsTotal.WithLabelValues("search", "resolved").Inc()
	metrics.FacilitiesSkippedTotal.Add(float64(rec.Skipped))

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"query":    q,
		"location": rec.Location,
		"lots":     rec.Ranked,
		"count":    len(rec.Ranked),
		"metadata": map[string]any{
			"limit":   limit,
			"skipped": rec.Skipped,
		},
	})
}

// NearbyCoords ranks lots around a point selected on the map
func (h *ParkingHandler) NearbyCoords(w http.ResponseWriter, r *http.Request) {
	latStr := r.URL.Query().Get("lat")
	lngStr := r.URL.Query().Get("lng")

	if latStr == "" || lngStr == "" {
		writeError(w, http.StatusBadRequest, "lat and lng query parameters are required", "")
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid lat parameter", "")
		return
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid lng parameter", "")
		return
	}

	point := models.Coordinates{Lat: lat, Lng: lng}
	if !point.Valid() {
		writeError(w, http.StatusBadRequest, "lat and lng must be finite numbers", "")
		return
	}

	h.writeNearby(w, r, point, map[string]any{"lat": lat, "lng": lng})
}

// NearbyLocation ranks lots around a campus location given by key or name
func (h *ParkingHandler) NearbyLocation(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("location")

	entry, ok := h.recommender.Resolver().Resolve(name)
	if !ok {
		metrics.RecommendationsTotal.WithLabelValues("map", "unresolved").Inc()
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":               "Location not found",
			"message":             "No campus location matches " + name,
			"needs_clarification": true,
		})
		return
	}

	h.writeNearby(w, r, entry.Coordinates, map[string]any{"location": entry})
}

func (h *ParkingHandler) writeNearby(w http.ResponseWriter, r *http.Request, point models.Coordinates, extra map[string]any) {
	facilities, ok := h.listFacilities(w, r)
	if !ok {
		return
	}

	radius := parseIntParam(r, "radius", defaultNearbyRadius, 0, maxNearbyRadius)
	limit := parseIntParam(r, "limit", defaultNearbyLimit, 0, maxNearbyLimit)

	ranked := h.recommender.RecommendAt(point, facilities, float64(radius), limit)
	skipped := location.Skipped(facilities)
	metrics.RecommendationsTotal.WithLabelValues("map", "resolved").Inc()
	metrics.FacilitiesSkippedTotal.Add(float64(skipped))

	body := map[string]any{
		"success":       true,
		"radius_meters": radius,
		"lots":          ranked,
		"count":         len(ranked),
		"metadata": map[string]any{
			"limit":   limit,
			"skipped": skipped,
		},
	}
	for k, v := range extra {
		body[k] = v
	}

	writeJSON(w, http.StatusOK, body)
}

func (h *ParkingHandler) listFacilities(w http.ResponseWriter, r *http.Request) ([]models.Facility, bool) {
	facilities, err := h.facilities.List(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("facility_list_error", "err", err)
		writeError(w, http.StatusBadGateway, "Failed to load parking lots", err.Error())
		return nil, false
	}
	return facilities, true
}
