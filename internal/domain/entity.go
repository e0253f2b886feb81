package domain

import "github.com/typhoonhub/bulletin-etl/internal/gazetteer"

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// LocationEntity is one top-level location mention extracted from a warning
// description.
//
// Invariant: IsVague implies IslandGroup == Other and no SubLocations. A
// non-vague entity may still resolve to Other when the gazetteer simply has
// no entry for it; vagueness and resolution failure are distinct conditions.
type LocationEntity struct {
	// RawText is the original comma-delimited token, untouched.
	RawText string `json:"raw_text"`

	// MainLocation is the primary place name with any trailing
	// parenthetical removed, original casing preserved.
	MainLocation string `json:"main_location"`

	// SubLocations holds the comma-separated contents of a trailing
	// parenthetical, in written order.
	SubLocations []string `json:"sub_locations,omitempty"`

	IslandGroup gazetteer.IslandGroup `json:"island_group"`
	IsVague     bool                  `json:"is_vague"`

	// Geo is filled by optional geocoding enrichment.
	Geo *Geo `json:"geo,omitempty"`
}
