package facility

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/campusparking/lotfinder/internal/models"
)

// FileSource reads lots from a JSON file on every call
type FileSource struct {
	path string
}

// NewFileSource creates a source backed by a JSON file
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// lotRecord is the on-disk shape. Coordinates stay raw so one malformed
// lot does not fail the whole file.
type lotRecord struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Lat         json.RawMessage `json:"lat"`
	Lng         json.RawMessage `json:"lng"`
	Capacity    int             `json:"capacity"`
	Available   int             `json:"available"`
	HourlyRate  float64         `json:"hourly_rate"`
	PermitTypes []string        `json:"permit_types"`
	Active      bool            `json:"active"`
	Attributes  map[string]any  `json:"attributes"`
}

// List returns the active lots in file order
func (s *FileSource) List(ctx context.Context) ([]models.Facility, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading lots file: %w", err)
	}

	return ParseLots(data)
}

// ParseLots decodes a JSON array of lots, keeping only active ones
func ParseLots(data []byte) ([]models.Facility, error) {
	var records []lotRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing lots JSON: %w", err)
	}

	facilities := make([]models.Facility, 0, len(records))
	for _, rec := range records {
		if !rec.Active {
			continue
		}

		f := models.Facility{
			ID:          rec.ID,
			Name:        rec.Name,
			Capacity:    rec.Capacity,
			Available:   rec.Available,
			HourlyRate:  rec.HourlyRate,
			PermitTypes: rec.PermitTypes,
			Active:      rec.Active,
			Attributes:  rec.Attributes,
		}

		lat, latOK := parseCoord(rec.Lat)
		lng, lngOK := parseCoord(rec.Lng)
		if latOK && lngOK {
			f.Location = &models.Coordinates{Lat: lat, Lng: lng}
		}

		facilities = append(facilities, f)
	}

	return facilities, nil
}

// parseCoord accepts a JSON number or a numeric string
func parseCoord(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
