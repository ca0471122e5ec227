package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "ENV", "LOTS_FILE", "DATABASE_URL", "OPENAI_API_KEY", "FACILITY_CACHE_SECONDS", "HTTP_TIMEOUT_SECONDS", "LOG_LEVEL", "CHAT_RATE_PER_SECOND", "CHAT_RATE_BURST"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want 3000", cfg.Port)
	}
	if !cfg.IsDevelopment() {
		t.Error("expected development by default")
	}
	if cfg.LotsFile != "data/lots.json" {
		t.Errorf("LotsFile = %q", cfg.LotsFile)
	}
	if cfg.FacilityTTL != 30*time.Second {
		t.Errorf("FacilityTTL = %v, want 30s", cfg.FacilityTTL)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("HTTPTimeout = %v, want 10s", cfg.HTTPTimeout)
	}
	if cfg.HasOpenAI() {
		t.Error("HasOpenAI = true without a key")
	}
	if cfg.ChatRate != 2 || cfg.ChatBurst != 5 {
		t.Errorf("ChatRate/ChatBurst = %v/%d, want 2/5", cfg.ChatRate, cfg.ChatBurst)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate defaults: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://localhost/lots")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("FACILITY_CACHE_SECONDS", "5")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("CHAT_RATE_PER_SECOND", "0.5")
	t.Setenv("CHAT_RATE_BURST", "1")

	cfg := Load()

	if cfg.Port != "8080" || cfg.IsDevelopment() {
		t.Errorf("Port/Env = %q/%q", cfg.Port, cfg.Env)
	}
	if cfg.DatabaseURL != "postgres://localhost/lots" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if !cfg.HasOpenAI() {
		t.Error("HasOpenAI = false with a key set")
	}
	if cfg.FacilityTTL != 5*time.Second {
		t.Errorf("FacilityTTL = %v, want 5s", cfg.FacilityTTL)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("HTTPTimeout = %v, want default 10s for bad input", cfg.HTTPTimeout)
	}
	if cfg.ChatRate != 0.5 || cfg.ChatBurst != 1 {
		t.Errorf("ChatRate/ChatBurst = %v/%d, want 0.5/1", cfg.ChatRate, cfg.ChatBurst)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{Port: "3000", LotsFile: "data/lots.json", FacilityTTL: time.Second, ChatRate: 2, ChatBurst: 5}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"database only", func(c *Config) { c.LotsFile = ""; c.DatabaseURL = "postgres://x" }, false},
		{"port not numeric", func(c *Config) { c.Port = "http" }, true},
		{"port out of range", func(c *Config) { c.Port = "70000" }, true},
		{"no facility source", func(c *Config) { c.LotsFile = "" }, true},
		{"zero ttl", func(c *Config) { c.FacilityTTL = 0 }, true},
		{"rate limiting off", func(c *Config) { c.ChatRate = 0 }, false},
		{"negative rate", func(c *Config) { c.ChatRate = -1 }, true},
		{"rate without burst", func(c *Config) { c.ChatRate = 1; c.ChatBurst = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
