package domain

import "github.com/typhoonhub/bulletin-etl/internal/gazetteer"

// ToGroupedLocations projects entities into the legacy island-group buckets:
// every main location and sub-location name lands under its entity's group,
// in entity order, names deduplicated per group by normalized equality.
// The projection is a pure function of its input; vague entities contribute
// their main location to the Other bucket like any other entity.
func ToGroupedLocations(entities []LocationEntity) GroupedLocations {
	grouped := make(GroupedLocations)
	seen := make(map[gazetteer.IslandGroup]map[string]struct{})

	add := func(group gazetteer.IslandGroup, name string) {
		n := gazetteer.NormalizeName(name)
		if n == "" {
			return
		}
		if seen[group] == nil {
			seen[group] = make(map[string]struct{})
		}
		if _, ok := seen[group][n]; ok {
			return
		}
		seen[group][n] = struct{}{}
		grouped[group] = append(grouped[group], name)
	}

	for _, e := range entities {
		add(e.IslandGroup, e.MainLocation)
		for _, sub := range e.SubLocations {
			add(e.IslandGroup, sub)
		}
	}
	return grouped
}
