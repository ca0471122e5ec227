// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Port          string
	Env           string
	LocationsFile string
	LotsFile      string
	DatabaseURL   string
	OpenAIKey     string
	OpenAIModel   string
	LogLevel      string
	LogFormat     string
	FacilityTTL   time.Duration
	HTTPTimeout   time.Duration
	ChatRate      float64 // requests per second, 0 disables limiting
	ChatBurst     int
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first if present; values
// already in the environment win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "3000"),
		Env:           getEnv("ENV", "development"),
		LocationsFile: getEnv("LOCATIONS_FILE", ""),
		LotsFile:      getEnv("LOTS_FILE", "data/lots.json"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		FacilityTTL:   getDurationEnv("FACILITY_CACHE_SECONDS", 30) * time.Second,
		HTTPTimeout:   getDurationEnv("HTTP_TIMEOUT_SECONDS", 10) * time.Second,
		ChatRate:      getFloatEnv("CHAT_RATE_PER_SECOND", 2),
		ChatBurst:     getIntEnv("CHAT_RATE_BURST", 5),
	}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// HasOpenAI reports whether replies should be phrased by the chat model.
func (c *Config) HasOpenAI() bool {
	return c.OpenAIKey != ""
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if n, err := strconv.Atoi(c.Port); err != nil || n <= 0 || n > 65535 {
		return fmt.Errorf("invalid PORT %q", c.Port)
	}
	if c.LotsFile == "" && c.DatabaseURL == "" {
		return errors.New("one of LOTS_FILE or DATABASE_URL is required")
	}
	if c.FacilityTTL <= 0 {
		return errors.New("FACILITY_CACHE_SECONDS must be positive")
	}
	if c.ChatRate < 0 || (c.ChatRate > 0 && c.ChatBurst < 1) {
		return errors.New("CHAT_RATE_PER_SECOND must be >= 0 with CHAT_RATE_BURST >= 1")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultSeconds int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds)
		}
	}
	return time.Duration(defaultSeconds)
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
