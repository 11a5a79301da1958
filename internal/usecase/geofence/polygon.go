package geofence

import (
	"encoding/json"
	"math"

	"github.com/paulmach/orb"
)

// ParseBoundary turns a stored boundary encoding into a closed ring with
// x=longitude, y=latitude. The encoding is either a JSON array of
// two-element numeric pairs (string or raw bytes) or an already-decoded
// [][]float64.
//
// Stored pairs may be [lat, lon] or [lon, lat]. Only the first pair is
// inspected to disambiguate: if its first component has magnitude greater
// than 90 while the second is at most 90, the whole list is taken as
// (lon, lat); otherwise every pair is swapped from (lat, lon). A polygon
// whose first vertex is atypical, e.g. near the equator and prime
// meridian, can therefore be misclassified; the stored format carries no
// order tag so the ambiguity is inherent.
//
// Returns ok=false for fewer than 3 points, short pairs, non-finite
// numbers or undecodable input. A bad boundary is a non-matching region,
// never an error.
func ParseBoundary(raw any) (orb.Ring, bool) {
	pairs, ok := decodePairs(raw)
	if !ok || len(pairs) < 3 {
		return nil, false
	}

	for _, p := range pairs {
		if len(p) < 2 {
			return nil, false
		}
		if !isFinite(p[0]) || !isFinite(p[1]) {
			return nil, false
		}
	}

	first := pairs[0]
	lonLat := math.Abs(first[0]) > 90 && math.Abs(first[1]) <= 90

	ring := make(orb.Ring, 0, len(pairs)+1)
	for _, p := range pairs {
		if lonLat {
			ring = append(ring, orb.Point{p[0], p[1]})
		} else {
			ring = append(ring, orb.Point{p[1], p[0]})
		}
	}

	if ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}

	return ring, true
}

func decodePairs(raw any) ([][]float64, bool) {
	switch v := raw.(type) {
	case [][]float64:
		return v, true
	case string:
		return unmarshalPairs([]byte(v))
	case []byte:
		return unmarshalPairs(v)
	case json.RawMessage:
		return unmarshalPairs(v)
	default:
		return nil, false
	}
}

func unmarshalPairs(data []byte) ([][]float64, bool) {
	var pairs [][]float64
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, false
	}
	return pairs, true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
