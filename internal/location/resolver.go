package location

import (
	"strings"

	"github.com/campusparking/lotfinder/internal/models"
)

// Resolver maps free text to a registry entry
type Resolver struct {
	registry *Registry
}

// NewResolver creates a resolver over a registry
func NewResolver(registry *Registry) *Resolver {
	return &Resolver{registry: registry}
}

// Registry returns the underlying registry
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// Resolve returns the best entry for a name or phrase. An exact key match
// wins; otherwise the first entry in registry order whose alias contains the
// text, or is contained by it, is returned. Matching is binary.
func (r *Resolver) Resolve(text string) (models.LocationEntry, bool) {
	q := normalize(text)
	if q == "" {
		return models.LocationEntry{}, false
	}

	if entry, ok := r.registry.Lookup(q); ok {
		return entry, true
	}

	for _, entry := range r.registry.entries {
		for _, alias := range entry.Aliases {
			if strings.Contains(q, alias) || strings.Contains(alias, q) {
				return entry, true
			}
		}
	}

	return models.LocationEntry{}, false
}
