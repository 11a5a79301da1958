package domain

import "encoding/json"

// Geofence represents a named polygonal area.
//
// Boundary holds the stored encoding: a JSON array of two-element numeric
// pairs. Coordinate axis order is not fixed in storage; pairs may be
// [lat, lon] or [lon, lat] and are disambiguated at parse time. A boundary
// with fewer than 3 points, or one that cannot be parsed into a usable
// polygon, simply matches no point; it is never surfaced as an error.
//
// Geofences are created and edited by an administrative process elsewhere;
// this core only reads them.
type Geofence struct {
	ID       int64
	Name     string
	Boundary json.RawMessage
}
