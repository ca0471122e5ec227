// Package recommend combines location resolution with proximity ranking
package recommend

import (
	"github.com/campusparking/lotfinder/internal/location"
	"github.com/campusparking/lotfinder/internal/models"
)

// DefaultLimit is the number of lots returned to the conversational flow
const DefaultLimit = 3

// Recommendation is the set of lots ranked relative to a resolved location
type Recommendation struct {
	Location models.LocationEntry    `json:"location"`
	Ranked   []models.RankedFacility `json:"ranked"`
	Skipped  int                     `json:"skipped"`
}

// Recommender resolves a mention and ranks facilities around it
type Recommender struct {
	resolver *location.Resolver
}

// New creates a recommender over a resolver
func New(resolver *location.Resolver) *Recommender {
	return &Recommender{resolver: resolver}
}

// Resolver returns the resolver backing this recommender
func (r *Recommender) Resolver() *location.Resolver {
	return r.resolver
}

// Locate finds the location named in text. Sentence extraction is tried
// first, then the whole text is resolved as a name.
func (r *Recommender) Locate(text string) (models.LocationEntry, bool) {
	if key, ok := r.resolver.ExtractMention(text); ok {
		if entry, found := r.resolver.Registry().Lookup(key); found {
			return entry, true
		}
	}
	return r.resolver.Resolve(text)
}

// Recommend ranks facilities relative to the location mentioned in text.
// It returns false when no location can be resolved; the caller should ask
// the user to name one.
func (r *Recommender) Recommend(text string, facilities []models.Facility, limit int) (Recommendation, bool) {
	entry, ok := r.Locate(text)
	if !ok {
		return Recommendation{}, false
	}

	return Recommendation{
		Location: entry,
		Ranked:   location.RankByProximity(entry.Coordinates, facilities, limit),
		Skipped:  location.Skipped(facilities),
	}, true
}

// RecommendAt ranks facilities around a point chosen on the map. It bypasses
// mention extraction entirely.
func (r *Recommender) RecommendAt(point models.Coordinates, facilities []models.Facility, radiusMeters float64, limit int) []models.RankedFacility {
	return location.RankWithin(point, facilities, radiusMeters, limit)
}
