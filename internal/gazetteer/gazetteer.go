// Package gazetteer loads the consolidated Philippine Standard Geographic
// Code (PSGC) location table and answers name → island group queries.
//
// # Data Source
//
// The reference table is the consolidated_locations.csv produced from the
// quarterly PSGC publication: one row per administrative division (region,
// province, city, municipality, barangay), ~43,760 rows, each tagged with
// the major island group (Luzon, Visayas, Mindanao) of its parent region.
//
// Columns:
//
//	location_name  division name as published, e.g. "Santo Tomas"
//	location_type  Region | Province | City | Municipality | Barangay
//	code           PSGC code, zero-padded text
//	parent_code    PSGC code of the parent division (empty for regions)
//	island_group   Luzon | Visayas | Mindanao
//
// # Name Collisions
//
// Division names repeat heavily (hundreds of barangays are named "San Jose").
// When several entries share a name, lookup answers with the entry of the
// highest administrative type priority:
//
//	Province > Region > City > Municipality > Barangay
//
// Same-priority collisions are resolved by load order, first row wins, so a
// given table always produces the same index.
//
// The index is built once and never mutated; it is safe for concurrent use
// by any number of goroutines without locking.
package gazetteer

import (
	"fmt"
	"strings"
)

// IslandGroup is one of the three major geographic groupings of the
// Philippine archipelago, plus Other for unmapped or vague references.
type IslandGroup string

const (
	Luzon    IslandGroup = "Luzon"
	Visayas  IslandGroup = "Visayas"
	Mindanao IslandGroup = "Mindanao"
	Other    IslandGroup = "Other"
)

// Groups lists the mappable island groups in canonical order.
var Groups = []IslandGroup{Luzon, Visayas, Mindanao}

// ParseIslandGroup validates a raw island_group column value.
func ParseIslandGroup(s string) (IslandGroup, error) {
	switch strings.TrimSpace(s) {
	case "Luzon":
		return Luzon, nil
	case "Visayas":
		return Visayas, nil
	case "Mindanao":
		return Mindanao, nil
	default:
		return "", fmt.Errorf("unknown island group %q", s)
	}
}

// DivisionType is the administrative level of a gazetteer entry.
type DivisionType string

const (
	Region       DivisionType = "Region"
	Province     DivisionType = "Province"
	City         DivisionType = "City"
	Municipality DivisionType = "Municipality"
	Barangay     DivisionType = "Barangay"
)

// typePriority orders division types for duplicate-name resolution.
// Provinces outrank regions because bulletins almost always mean the
// province when a name is ambiguous ("Cebu", "Davao").
var typePriority = map[DivisionType]int{
	Province:     5,
	Region:       4,
	City:         3,
	Municipality: 2,
	Barangay:     1,
}

// Priority returns the duplicate-resolution rank of the type, 0 if unknown.
func (t DivisionType) Priority() int {
	return typePriority[t]
}

// Entry is one row of the consolidated location table. Immutable after load.
type Entry struct {
	Name        string
	Type        DivisionType
	Code        string
	ParentCode  string
	IslandGroup IslandGroup
}

// NormalizeName canonicalizes a location name for index keys and lookups:
// trimmed, case-folded, internal whitespace collapsed to single spaces.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
