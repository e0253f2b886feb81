package domain

import "github.com/typhoonhub/bulletin-etl/internal/gazetteer"

// resolveIslandGroup assigns an island group to a mention. Vague mentions
// always land in Other. Otherwise the main location is tried first, exact
// then embedded within the phrase, and finally the sub-locations vote: the
// group with the most gazetteer hits wins, ties going to the group hit
// earliest in written order.
func (p *Parser) resolveIslandGroup(main string, subs []string, vague bool) gazetteer.IslandGroup {
	if vague {
		return gazetteer.Other
	}
	if group, ok := p.index.Lookup(main); ok {
		return group
	}
	if group, ok := p.index.LookupWithin(main); ok {
		return group
	}

	hits := make(map[gazetteer.IslandGroup]int, len(gazetteer.Groups))
	var order []gazetteer.IslandGroup
	for _, sub := range subs {
		group, ok := p.index.Lookup(sub)
		if !ok {
			group, ok = p.index.LookupWithin(sub)
		}
		if !ok {
			continue
		}
		if hits[group] == 0 {
			order = append(order, group)
		}
		hits[group]++
	}

	best := gazetteer.Other
	bestCount := 0
	for _, group := range order {
		if hits[group] > bestCount {
			best, bestCount = group, hits[group]
		}
	}
	return best
}

// dedupeEntities collapses repeated mentions of the same main location.
// Sameness is normalized-name equality within the same island group; the
// first occurrence survives and absorbs the union of the later duplicates'
// sub-locations, preserving first-seen order. Identical names in different
// island groups are distinct places and all survive.
func dedupeEntities(entities []LocationEntity) []LocationEntity {
	type key struct {
		name  string
		group gazetteer.IslandGroup
	}

	out := make([]LocationEntity, 0, len(entities))
	seen := make(map[key]int, len(entities))

	for _, e := range entities {
		k := key{name: gazetteer.NormalizeName(e.MainLocation), group: e.IslandGroup}
		i, dup := seen[k]
		if !dup {
			seen[k] = len(out)
			out = append(out, e)
			continue
		}
		out[i].SubLocations = unionSubs(out[i].SubLocations, e.SubLocations)
	}
	return out
}

// unionSubs appends the sub-locations from extra that are not already in
// base, comparing normalized names.
func unionSubs(base, extra []string) []string {
	if len(extra) == 0 {
		return base
	}
	have := make(map[string]struct{}, len(base))
	for _, s := range base {
		have[gazetteer.NormalizeName(s)] = struct{}{}
	}
	for _, s := range extra {
		n := gazetteer.NormalizeName(s)
		if _, ok := have[n]; ok {
			continue
		}
		have[n] = struct{}{}
		base = append(base, s)
	}
	return base
}
