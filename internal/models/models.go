// Package models defines shared data types
package models

import "math"

// Coordinates is a WGS84 latitude/longitude pair in degrees
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether both components are finite numbers
func (c Coordinates) Valid() bool {
	return !math.IsNaN(c.Lat) && !math.IsNaN(c.Lng) &&
		!math.IsInf(c.Lat, 0) && !math.IsInf(c.Lng, 0)
}

// LocationEntry is a canonical campus location
type LocationEntry struct {
	Key         string      `json:"key"`
	DisplayName string      `json:"display_name"`
	Coordinates Coordinates `json:"coordinates"`
	Aliases     []string    `json:"aliases"`
}

// Facility is a parking lot as supplied by storage. Only ID and Location
// are interpreted by the ranker; everything else is carried through.
type Facility struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Location    *Coordinates   `json:"location"`
	Capacity    int            `json:"capacity"`
	Available   int            `json:"available"`
	HourlyRate  float64        `json:"hourly_rate"`
	PermitTypes []string       `json:"permit_types,omitempty"`
	Active      bool           `json:"active"`
	Attributes  map[string]any `json:"attributes,omitempty"`
}

// HasLocation reports whether the facility can be ranked by distance
func (f Facility) HasLocation() bool {
	return f.Location != nil && f.Location.Valid()
}

// RankedFacility is a Facility with distance from a reference point
type RankedFacility struct {
	Facility       Facility `json:"facility"`
	DistanceMeters float64  `json:"distance_meters"`
	WalkingMinutes int      `json:"walking_minutes"`
}
