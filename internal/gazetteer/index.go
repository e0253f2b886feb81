package gazetteer

import "strings"

// indexed is what the name map stores per normalized name.
type indexed struct {
	group    IslandGroup
	priority int
}

// Index answers island-group queries for location names. Built once from
// the loaded entries, read-only afterwards.
type Index struct {
	names        map[string]indexed
	aliases      map[string]IslandGroup
	maxNameWords int
	counts       map[IslandGroup]int
	total        int
}

// IndexOption adjusts index construction.
type IndexOption func(*Index)

// WithRegionAliases replaces the default region alias table. Keys are
// alias names as written in bulletins; matching is normalized.
func WithRegionAliases(aliases map[string]IslandGroup) IndexOption {
	return func(ix *Index) {
		ix.aliases = make(map[string]IslandGroup, len(aliases))
		for name, group := range aliases {
			ix.aliases[NormalizeName(name)] = group
		}
	}
}

// NewIndex builds the lookup index. For duplicate names the entry with the
// higher division-type priority wins; equal priority keeps the first-loaded
// entry so index construction is deterministic for a given table.
func NewIndex(entries []Entry, opts ...IndexOption) *Index {
	ix := &Index{
		names:  make(map[string]indexed, len(entries)),
		counts: make(map[IslandGroup]int, len(Groups)),
	}

	for _, e := range entries {
		key := NormalizeName(e.Name)
		if key == "" {
			continue
		}
		ix.total++
		ix.counts[e.IslandGroup]++

		if words := len(strings.Fields(key)); words > ix.maxNameWords {
			ix.maxNameWords = words
		}

		prio := e.Type.Priority()
		if cur, ok := ix.names[key]; ok && cur.priority >= prio {
			continue
		}
		ix.names[key] = indexed{group: e.IslandGroup, priority: prio}
	}

	for _, opt := range opts {
		opt(ix)
	}
	if ix.aliases == nil {
		ix.aliases = defaultRegionAliases()
	}
	return ix
}

// Lookup resolves a name to its island group by exact whole-phrase equality
// after normalization. It never falls back to substring matching, so
// "Isabela" does not hit from inside an unrelated compound phrase.
func (ix *Index) Lookup(name string) (IslandGroup, bool) {
	e, ok := ix.names[NormalizeName(name)]
	if !ok {
		return Other, false
	}
	return e.group, true
}

// LookupWithin scans text for gazetteer names occurring as whole-word
// phrases and returns the best hit: the longest matching phrase, ties
// broken by division-type priority. This resolves descriptions that wrap a
// known name in free text, like "Cagayan including Babuyan Islands".
func (ix *Index) LookupWithin(text string) (IslandGroup, bool) {
	words := strings.Fields(NormalizeName(text))
	if len(words) == 0 {
		return Other, false
	}

	max := ix.maxNameWords
	if max > len(words) {
		max = len(words)
	}

	for n := max; n >= 1; n-- {
		best, found := indexed{}, false
		for i := 0; i+n <= len(words); i++ {
			phrase := strings.Join(words[i:i+n], " ")
			e, ok := ix.names[phrase]
			if !ok {
				continue
			}
			if !found || e.priority > best.priority {
				best, found = e, true
			}
		}
		if found {
			return best.group, true
		}
	}
	return Other, false
}

// ContainsRegionAlias reports whether the normalized text is a recognized
// region-level name that is not a literal gazetteer entry ("Bicol Region",
// "Eastern Visayas"). Such names are legitimate references but too broad to
// map to a single island group entity.
func (ix *Index) ContainsRegionAlias(text string) bool {
	_, ok := ix.aliases[NormalizeName(text)]
	return ok
}

// Len returns the number of loaded rows, including duplicates folded into
// higher-priority entries.
func (ix *Index) Len() int { return ix.total }

// CountByGroup returns how many loaded rows belong to the given group.
func (ix *Index) CountByGroup(g IslandGroup) int { return ix.counts[g] }
