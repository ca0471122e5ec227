// Package location resolves campus place names and ranks parking lots by distance
package location

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/campusparking/lotfinder/internal/models"
)

var (
	ErrDuplicateKey       = errors.New("duplicate location key")
	ErrMissingCoordinates = errors.New("missing coordinates")
	ErrInvalidEntry       = errors.New("invalid location entry")
)

// Config describes one registry entry before validation. Lat and Lng are
// pointers so a missing value can be told apart from zero.
type Config struct {
	Key         string   `json:"key"`
	DisplayName string   `json:"display_name"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	Aliases     []string `json:"aliases"`
}

// Registry is the read-only directory of campus locations. It is built once
// and never mutated, so it is safe for concurrent use without locking.
type Registry struct {
	entries []models.LocationEntry
	byKey   map[string]int
}

// NewRegistry validates the configuration and builds a registry that keeps
// the configured order. Any defect fails the whole registry.
func NewRegistry(configs []Config) (*Registry, error) {
	r := &Registry{
		entries: make([]models.LocationEntry, 0, len(configs)),
		byKey:   make(map[string]int, len(configs)),
	}

	for i, cfg := range configs {
		key := normalize(cfg.Key)
		if key == "" {
			return nil, fmt.Errorf("entry %d: blank key: %w", i, ErrInvalidEntry)
		}
		if _, exists := r.byKey[key]; exists {
			return nil, fmt.Errorf("entry %d (%s): %w", i, key, ErrDuplicateKey)
		}
		if cfg.Lat == nil || cfg.Lng == nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, key, ErrMissingCoordinates)
		}
		coords := models.Coordinates{Lat: *cfg.Lat, Lng: *cfg.Lng}
		if !coords.Valid() {
			return nil, fmt.Errorf("entry %d (%s): non-finite coordinates: %w", i, key, ErrMissingCoordinates)
		}

		aliases := make([]string, 0, len(cfg.Aliases))
		for _, a := range cfg.Aliases {
			alias := normalize(a)
			if alias == "" {
				// An empty alias would contain-match every input.
				return nil, fmt.Errorf("entry %d (%s): blank alias: %w", i, key, ErrInvalidEntry)
			}
			aliases = append(aliases, alias)
		}

		name := strings.TrimSpace(cfg.DisplayName)
		if name == "" {
			name = key
		}

		r.byKey[key] = len(r.entries)
		r.entries = append(r.entries, models.LocationEntry{
			Key:         key,
			DisplayName: name,
			Coordinates: coords,
			Aliases:     aliases,
		})
	}

	return r, nil
}

// LoadRegistry reads a JSON array of Config from a file
func LoadRegistry(filepath string) (*Registry, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading locations file: %w", err)
	}

	var configs []Config
	if err := json.Unmarshal(data, &configs); err != nil {
		return nil, fmt.Errorf("parsing locations JSON: %w", err)
	}

	return NewRegistry(configs)
}

// Lookup returns an entry by its key
func (r *Registry) Lookup(key string) (models.LocationEntry, bool) {
	i, ok := r.byKey[normalize(key)]
	if !ok {
		return models.LocationEntry{}, false
	}
	return r.entries[i], true
}

// All returns every entry in insertion order. The slice is a copy.
func (r *Registry) All() []models.LocationEntry {
	out := make([]models.LocationEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of entries
func (r *Registry) Len() int {
	return len(r.entries)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func coord(v float64) *float64 {
	return &v
}
