// Package main is the entry point for the lotfinder server.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/campusparking/lotfinder/internal/api"
	"github.com/campusparking/lotfinder/internal/chat"
	"github.com/campusparking/lotfinder/internal/config"
	"github.com/campusparking/lotfinder/internal/facility"
	"github.com/campusparking/lotfinder/internal/location"
	"github.com/campusparking/lotfinder/internal/logger"
	"github.com/campusparking/lotfinder/internal/recommend"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.Error("configuration error", "err", err)
		os.Exit(1)
	}

	registry, err := loadRegistry(cfg)
	if err != nil {
		log.Error("location registry failed to initialize", "err", err)
		os.Exit(1)
	}
	log.Info("locations loaded", "count", registry.Len())

	source, closeSource, err := openFacilities(cfg)
	if err != nil {
		log.Error("facility source failed to open", "err", err)
		os.Exit(1)
	}
	defer closeSource()

	cached := facility.NewCachedSource(source, cfg.FacilityTTL)
	defer cached.Close()

	rec := recommend.New(location.NewResolver(registry))

	var phraser chat.Phraser
	if cfg.HasOpenAI() {
		phraser = chat.NewOpenAIPhraser(openai.NewClient(cfg.OpenAIKey), cfg.OpenAIModel)
		log.Info("chat replies phrased by model", "model", cfg.OpenAIModel)
	}
	helper := chat.NewHelper(rec, cached, phraser, recommend.DefaultLimit, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.NewRouter(cfg, rec, cached, helper),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("lotfinder server starting", "port", cfg.Port, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "err", err)
	}
}

func loadRegistry(cfg *config.Config) (*location.Registry, error) {
	if cfg.LocationsFile != "" {
		return location.LoadRegistry(cfg.LocationsFile)
	}
	return location.NewRegistry(location.DefaultConfig())
}

func openFacilities(cfg *config.Config) (facility.Source, func(), error) {
	if cfg.DatabaseURL == "" {
		slog.Info("reading lots from file", "path", cfg.LotsFile)
		return facility.NewFileSource(cfg.LotsFile), func() {}, nil
	}

	db, err := facility.OpenPostgres(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		slog.Warn("postgres ping failed", "err", err)
	}
	return facility.NewPostgresSource(db), func() { _ = db.Close() }, nil
}
