package domain

import (
	"strings"

	"github.com/typhoonhub/bulletin-etl/internal/gazetteer"
)

// Parser turns free-form warning area descriptions into location entities.
// A Parser is immutable after construction and safe for concurrent use.
type Parser struct {
	index        *gazetteer.Index
	vaguePhrases []string
	directionals map[string]struct{}
}

// ParserOption adjusts parser construction.
type ParserOption func(*Parser)

// WithVaguePhrases replaces the default list of coverage-qualifier phrases
// ("most of", "portion of", ...). Matching is normalized and word-bounded.
func WithVaguePhrases(phrases []string) ParserOption {
	return func(p *Parser) {
		p.vaguePhrases = make([]string, 0, len(phrases))
		for _, phrase := range phrases {
			if n := gazetteer.NormalizeName(phrase); n != "" {
				p.vaguePhrases = append(p.vaguePhrases, n)
			}
		}
	}
}

// WithDirectionalWords replaces the default set of directional adjectives
// that mark a mention as vague when they lead the phrase.
func WithDirectionalWords(words []string) ParserOption {
	return func(p *Parser) {
		p.directionals = make(map[string]struct{}, len(words))
		for _, w := range words {
			if n := gazetteer.NormalizeName(w); n != "" {
				p.directionals[n] = struct{}{}
			}
		}
	}
}

// NewParser builds a parser over the given gazetteer index.
func NewParser(index *gazetteer.Index, opts ...ParserOption) *Parser {
	p := &Parser{index: index}
	for _, opt := range opts {
		opt(p)
	}
	if p.vaguePhrases == nil {
		WithVaguePhrases(defaultVaguePhrases)(p)
	}
	if p.directionals == nil {
		WithDirectionalWords(defaultDirectionalWords)(p)
	}
	return p
}

// Parse extracts location entities from a warning area description.
// Empty or whitespace-only input yields nil. Input that survives trimming
// but produces no tokens (stray punctuation) yields a single vague fallback
// entity carrying the trimmed text, so no bulletin content is silently lost.
func (p *Parser) Parse(text string) []LocationEntity {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return []LocationEntity{{
			RawText:      trimmed,
			MainLocation: trimmed,
			IslandGroup:  gazetteer.Other,
			IsVague:      true,
		}}
	}

	entities := make([]LocationEntity, 0, len(tokens))
	for _, tok := range tokens {
		main, subs := splitParenthetical(tok)
		vague := p.isVague(main, len(subs) > 0)
		if vague {
			subs = nil
		}
		entities = append(entities, LocationEntity{
			RawText:      tok,
			MainLocation: main,
			SubLocations: subs,
			IslandGroup:  p.resolveIslandGroup(main, subs, vague),
			IsVague:      vague,
		})
	}

	return dedupeEntities(entities)
}
