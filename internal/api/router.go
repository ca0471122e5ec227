package api

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/campusparking/lotfinder/internal/api/handlers"
	"github.com/campusparking/lotfinder/internal/config"
	"github.com/campusparking/lotfinder/internal/metrics"
	"github.com/campusparking/lotfinder/internal/recommend"
)

// NewRouter creates and configures the HTTP router with all routes and middleware
func NewRouter(
	cfg *config.Config,
	rec *recommend.Recommender,
	facilities handlers.FacilityProvider,
	helper handlers.ChatProvider,
) http.Handler {
	mux := http.NewServeMux()
	handle := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, Instrument(pattern, h))
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(rec.Resolver().Registry(), facilities)
	rootHandler := handlers.NewRootHandler()
	locationHandler := handlers.NewLocationHandler(rec.Resolver())
	parkingHandler := handlers.NewParkingHandler(rec, facilities)
	chatHandler := handlers.NewChatHandler(helper)

	// Core routes
	handle("GET /{$}", rootHandler.Index)
	handle("GET /api", rootHandler.Index)
	handle("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", metrics.Handler())

	// Location directory
	handle("GET /parking/locations", locationHandler.ListLocations)
	handle("GET /parking/locations/resolve", locationHandler.ResolveLocation)

	// Conversational and search flows
	handle("GET /parking/recommend", parkingHandler.Recommend)
	var chatRoute http.Handler = http.HandlerFunc(chatHandler.Reply)
	if cfg != nil && cfg.ChatRate > 0 {
		chatRoute = RateLimit(rate.NewLimiter(rate.Limit(cfg.ChatRate), cfg.ChatBurst), chatRoute)
	}
	mux.Handle("POST /parking/chat", Instrument("POST /parking/chat", chatRoute))

	// Map flow
	handle("GET /parking/nearby", parkingHandler.NearbyCoords)
	handle("GET /parking/nearby/{location}", parkingHandler.NearbyLocation)

	mux.HandleFunc("/", rootHandler.NotFound)

	timeout := 15 * time.Second
	if cfg != nil && cfg.HTTPTimeout > 0 {
		timeout = cfg.HTTPTimeout
	}

	// Apply middleware stack
	handler := Chain(mux,
		Recovery,
		RequestID,
		Logging,
		CORS,
		Timeout(timeout),
	)

	return handler
}
