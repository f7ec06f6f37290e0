package geo

import (
	"math"
	"sort"

	"github.com/vitalpoint/callhub-api/schema"
)

// Searcher is the geo-radius lookup the ranker runs against. The mongo
// store implements it; tests substitute a mock.
type Searcher interface {
	NearbyLocations(center schema.Coordinates, radiusMeters int, limit int64) ([]schema.Location, error)
}

// RankCandidates fetches canonical locations near center and returns them
// as candidates sorted ascending by distance. Equal-distance entries keep
// the store's return order so results stay deterministic. Candidate
// coordinates are reduced to 4 decimals for display, after sorting, so
// the distance annotation is computed from full-precision positions.
// Lookup failures propagate to the caller untouched.
func RankCandidates(s Searcher, center schema.Coordinates, radiusMeters int, limit int64) ([]schema.Candidate, error) {
	locations, err := s.NearbyLocations(center, radiusMeters, limit)
	if err != nil {
		return nil, err
	}

	candidates := make([]schema.Candidate, 0, len(locations))
	for _, loc := range locations {
		d := Distance(center.Latitude, center.Longitude, loc.Latitude(), loc.Longitude())
		candidates = append(candidates, schema.Candidate{
			Location: loc,
			Distance: RoundTo(d, 2),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Distance < candidates[j].Distance
	})

	for i := range candidates {
		if p := candidates[i].Position; p != nil && len(p.Coordinates) >= 2 {
			p.Coordinates[0] = RoundTo(p.Coordinates[0], 4)
			p.Coordinates[1] = RoundTo(p.Coordinates[1], 4)
		}
	}

	return candidates, nil
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
