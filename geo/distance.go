package geo

import "math"

const degToRad = math.Pi / 180

// Distance returns the approximate great-circle distance between two
// coordinates using the spherical law of cosines, scaled by the
// nautical-mile-derived constant 60 * 1.1515. That constant yields
// statute-mile-scale units, not kilometers: the value is a ranking key
// kept numerically identical to the historical data, not a geodesic
// measurement.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	radLat1 := lat1 * degToRad
	radLat2 := lat2 * degToRad
	radTheta := (lon1 - lon2) * degToRad

	dist := math.Sin(radLat1)*math.Sin(radLat2) + math.Cos(radLat1)*math.Cos(radLat2)*math.Cos(radTheta)
	// floating-point error can push the cosine past 1, which would make
	// Acos return NaN
	if dist > 1 {
		dist = 1
	}

	dist = math.Acos(dist) / degToRad
	return dist * 60 * 1.1515
}
