package geofence

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestParseBoundary_LatLonPairsAreSwapped(t *testing.T) {
	// All magnitudes are below 90, so the list is taken as (lat, lon) and
	// swapped into the internal (lon, lat) representation.
	raw := `[[13.75,100.50],[13.76,100.50],[13.76,100.51],[13.75,100.51]]`

	ring, ok := ParseBoundary(raw)
	assert.True(t, ok)
	assert.Equal(t, orb.Point{100.50, 13.75}, ring[0])
	assert.Equal(t, orb.Point{100.50, 13.76}, ring[1])

	// The ring is closed for polygon use.
	assert.Equal(t, ring[0], ring[len(ring)-1])
}

func TestParseBoundary_LonLatPairsAreKept(t *testing.T) {
	// First component above 90 in magnitude: already (lon, lat), used as-is.
	raw := `[[100.50,13.75],[100.51,13.75],[100.51,13.76],[100.50,13.76]]`

	ring, ok := ParseBoundary(raw)
	assert.True(t, ok)
	assert.Equal(t, orb.Point{100.50, 13.75}, ring[0])
	assert.Equal(t, orb.Point{100.51, 13.75}, ring[1])
}

func TestParseBoundary_StructuredInput(t *testing.T) {
	pairs := [][]float64{{13.75, 100.50}, {13.76, 100.50}, {13.76, 100.51}}

	ring, ok := ParseBoundary(pairs)
	assert.True(t, ok)
	assert.Equal(t, orb.Point{100.50, 13.75}, ring[0])
}

func TestParseBoundary_Rejections(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{name: "fewer than three points", raw: `[[13.75,100.50],[13.76,100.50]]`},
		{name: "empty list", raw: `[]`},
		{name: "short pair", raw: `[[13.75,100.50],[13.76],[13.76,100.51]]`},
		{name: "not json", raw: `polygon((...))`},
		{name: "not a pair list", raw: `{"lat":13.75}`},
		{name: "unsupported type", raw: 42},
		{name: "structured short pair", raw: [][]float64{{13.75, 100.50}, {13.76}, {13.76, 100.51}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ring, ok := ParseBoundary(tt.raw)
			assert.False(t, ok)
			assert.Nil(t, ring)
		})
	}
}

func TestParseBoundary_AlreadyClosedRingIsNotDoubled(t *testing.T) {
	raw := `[[13.75,100.50],[13.76,100.50],[13.76,100.51],[13.75,100.50]]`

	ring, ok := ParseBoundary(raw)
	assert.True(t, ok)
	assert.Len(t, ring, 4)
	assert.Equal(t, ring[0], ring[len(ring)-1])
}
