package location

import (
	"math"
	"sort"

	"github.com/campusparking/lotfinder/internal/models"
)

// WalkingSpeedMetersPerMinute is the assumed walking pace
const WalkingSpeedMetersPerMinute = 80

// WalkingMinutes converts a distance to whole minutes, rounding up
func WalkingMinutes(distanceMeters float64) int {
	return int(math.Ceil(distanceMeters / WalkingSpeedMetersPerMinute))
}

// RankByProximity returns facilities sorted by distance from origin, closest
// first. Facilities without usable coordinates are skipped. Equal distances
// keep input order. A limit <= 0 returns every ranked facility.
func RankByProximity(origin models.Coordinates, facilities []models.Facility, limit int) []models.RankedFacility {
	return RankWithin(origin, facilities, 0, limit)
}

// RankWithin ranks like RankByProximity and then keeps only facilities within
// radiusMeters of origin. A radius <= 0 disables the filter.
func RankWithin(origin models.Coordinates, facilities []models.Facility, radiusMeters float64, limit int) []models.RankedFacility {
	results := make([]models.RankedFacility, 0, len(facilities))

	for _, f := range facilities {
		if !f.HasLocation() {
			continue
		}

		dist := DistanceMeters(origin, *f.Location)
		if radiusMeters > 0 && dist > radiusMeters {
			continue
		}

		results = append(results, models.RankedFacility{
			Facility:       f,
			DistanceMeters: dist,
			WalkingMinutes: WalkingMinutes(dist),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceMeters < results[j].DistanceMeters
	})

	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}

	return results
}

// Skipped counts facilities the ranker would ignore for lack of coordinates
func Skipped(facilities []models.Facility) int {
	n := 0
	for _, f := range facilities {
		if !f.HasLocation() {
			n++
		}
	}
	return n
}
