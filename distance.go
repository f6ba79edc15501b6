package interpolate

import (
	"math"

	vec2d "github.com/flywave/go3d/float64/vec2"
)

// DistanceFunc measures the separation of two (lon, lat) positions.
type DistanceFunc func(a, b vec2d.T) float64

const earthRadiusKm = 6371.0088

// Planar is the Euclidean distance on raw (lon, lat) degrees. It is only
// meaningful over small extents.
func Planar(a, b vec2d.T) float64 {
	d := vec2d.Sub(&a, &b)
	return math.Hypot(d[0], d[1])
}

// Haversine is the great-circle distance in kilometres.
func Haversine(a, b vec2d.T) float64 {
	lat1, lat2 := degToRad(a[1]), degToRad(b[1])
	dLat := lat2 - lat1
	dLon := degToRad(b[0] - a[0])
	h := pow2(math.Sin(dLat/2)) + math.Cos(lat1)*math.Cos(lat2)*pow2(math.Sin(dLon/2))
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

func distanceOrDefault(f DistanceFunc) DistanceFunc {
	if f == nil {
		return Planar
	}
	return f
}
