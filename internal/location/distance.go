package location

import (
	"math"

	"github.com/campusparking/lotfinder/internal/models"
)

// earthRadiusMeters is the mean radius used for all great-circle distances
const earthRadiusMeters = 6371000

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// DistanceMeters is the haversine great-circle distance between a and b.
// Coordinate ranges are not validated; callers filter non-finite points.
func DistanceMeters(a, b models.Coordinates) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*sinLng*sinLng
	// rounding can push h just outside [0, 1] near antipodes
	h = math.Min(1, math.Max(0, h))

	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
