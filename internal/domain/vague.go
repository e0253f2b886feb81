package domain

import (
	"strings"

	"github.com/typhoonhub/bulletin-etl/internal/gazetteer"
)

// defaultVaguePhrases are coverage qualifiers that widen a mention beyond a
// nameable division. Matched anywhere in the phrase on word boundaries.
var defaultVaguePhrases = []string{
	"most of",
	"portion of",
	"portions of",
	"part of",
	"parts of",
	"rest of",
	"remainder of",
}

// defaultDirectionalWords mark a mention vague when they lead the phrase,
// as in "northeastern Mindanao". An exact gazetteer hit is checked first so
// proper names like "Northern Samar" are never caught here.
var defaultDirectionalWords = []string{
	"northern", "southern", "eastern", "western", "central",
	"northeastern", "northwestern", "southeastern", "southwestern",
	"extreme",
}

// islandGroupWords are bare island-group mentions, too broad on their own.
var islandGroupWords = map[string]struct{}{
	"luzon":    {},
	"visayas":  {},
	"mindanao": {},
}

// isVague classifies a main location as vague or anchored. The rules run in
// a fixed order and the first one that fires decides:
//
//  1. a trailing parenthetical anchors the mention, never vague
//  2. an exact gazetteer hit is a proper name, never vague
//  3. a coverage qualifier ("most of", "portions of") makes it vague
//  4. a leading directional adjective makes it vague
//  5. a region-level alias ("Eastern Visayas") or bare island-group name
//     makes it vague
//  6. otherwise the mention is specific, resolved or not
//
// Rule 2 outranking rules 3-5 is what keeps real divisions whose names carry
// directional words ("Northern Samar", "Davao Oriental") out of the vague
// bucket.
func (p *Parser) isVague(main string, hasSubs bool) bool {
	if hasSubs {
		return false
	}
	if _, ok := p.index.Lookup(main); ok {
		return false
	}

	norm := gazetteer.NormalizeName(main)
	if norm == "" {
		return true
	}

	padded := " " + norm + " "
	for _, phrase := range p.vaguePhrases {
		if strings.Contains(padded, " "+phrase+" ") {
			return true
		}
	}

	words := strings.Fields(norm)
	if words[0] == "the" && len(words) > 1 {
		words = words[1:]
	}
	if _, ok := p.directionals[words[0]]; ok {
		return true
	}

	if p.index.ContainsRegionAlias(main) {
		return true
	}
	if _, ok := islandGroupWords[norm]; ok {
		return true
	}

	return false
}
