package domain

import "strings"

// Tokenize splits a location description into top-level mention tokens.
// Commas only delimit at parenthesis depth zero, so an enumeration inside a
// parenthetical stays attached to its parent mention. A leading "and" on a
// token is dropped ("..., and Apayao"), and empty tokens are discarded.
// Phrases like "including Babuyan Islands" stay inside their token; the
// gazetteer scan handles them later.
func Tokenize(text string) []string {
	var tokens []string
	depth := 0
	start := 0

	flush := func(end int) {
		tok := cleanToken(text[start:end])
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}

	for i, r := range text {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(len(text))

	return tokens
}

// cleanToken trims whitespace and strips a leading "and " conjunction.
func cleanToken(tok string) string {
	tok = strings.TrimSpace(tok)
	lower := strings.ToLower(tok)
	if lower == "and" {
		return ""
	}
	if strings.HasPrefix(lower, "and ") {
		tok = strings.TrimSpace(tok[4:])
	}
	return tok
}

// splitParenthetical separates a token into its main location and the
// sub-locations enumerated by a trailing parenthetical. The parenthetical is
// only significant when the token contains exactly one balanced depth-zero
// group, the group sits at the very end, and text precedes it. Anything else
// (mid-token groups, multiple groups, unbalanced parens) leaves the token
// intact as the main location. Inner parentheses are not recursed into; they
// remain literal text inside the sub-location strings.
func splitParenthetical(token string) (main string, subs []string) {
	open, closing := -1, -1
	depth := 0
	groups := 0

	for i, r := range token {
		switch r {
		case '(':
			if depth == 0 {
				open, closing = i, -1
				groups++
			}
			depth++
		case ')':
			depth--
			if depth == 0 {
				closing = i
			}
			if depth < 0 {
				return strings.TrimSpace(token), nil
			}
		}
	}

	if groups != 1 || depth != 0 || closing < 0 {
		return strings.TrimSpace(token), nil
	}
	if strings.TrimSpace(token[closing+1:]) != "" {
		return strings.TrimSpace(token), nil
	}
	main = strings.TrimSpace(token[:open])
	if main == "" {
		return strings.TrimSpace(token), nil
	}

	for _, part := range strings.Split(token[open+1:closing], ",") {
		if part = strings.TrimSpace(part); part != "" {
			subs = append(subs, part)
		}
	}
	return main, subs
}
