// Package facility supplies parking lot records to the ranking core
package facility

import (
	"context"
	"time"

	"github.com/campusparking/lotfinder/internal/cache"
	"github.com/campusparking/lotfinder/internal/models"
)

// Source lists the currently active parking facilities
type Source interface {
	List(ctx context.Context) ([]models.Facility, error)
}

const snapshotKey = "active"

// CachedSource keeps a short-lived snapshot of another Source's facilities.
// Only the raw facility list is cached; rankings are always recomputed.
type CachedSource struct {
	source Source
	cache  *cache.Cache[[]models.Facility]
}

// NewCachedSource wraps source with a TTL snapshot cache
func NewCachedSource(source Source, ttl time.Duration) *CachedSource {
	return &CachedSource{
		source: source,
		cache:  cache.New[[]models.Facility](ttl),
	}
}

// List returns the cached snapshot, reloading it when expired
func (s *CachedSource) List(ctx context.Context) ([]models.Facility, error) {
	return s.cache.GetOrLoad(ctx, snapshotKey, s.source.List)
}

// Invalidate drops the snapshot so the next List reloads
func (s *CachedSource) Invalidate() {
	s.cache.Delete(snapshotKey)
}

// Close stops the cache's cleanup goroutine
func (s *CachedSource) Close() {
	s.cache.Close()
}
