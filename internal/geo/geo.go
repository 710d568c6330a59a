package geo

import (
	"math"
	"strconv"
	"strings"
)

// Coarse rectangle around the United Kingdom. It also covers parts of Ireland, France
// and the surrounding seas, so a hit is weak evidence only.
const (
	UKLatMin = 49.8
	UKLatMax = 60.9
	UKLonMin = -8.5
	UKLonMax = 2.5
)

const earthRadiusMeters = 6371008.8

// ParseCoordinate parses a raw coordinate string. Empty or malformed input yields ok=false.
func ParseCoordinate(raw string) (value float64, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// InUKBoundingBox reports whether lat/lon fall inside the UK rectangle, edges included.
func InUKBoundingBox(lat, lon float64) bool {
	return lat >= UKLatMin && lat <= UKLatMax && lon >= UKLonMin && lon <= UKLonMax
}

// DistanceMeters is the haversine great-circle distance between two points.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(d float64) float64 { return d * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(a))
}
