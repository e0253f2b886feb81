package domain

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// pst is Philippine Standard Time. Fixed UTC+8, no daylight saving.
var pst = time.FixedZone("PST", 8*60*60)

var (
	// issuedAtRe matches the bulletin header timestamp, e.g.
	// "ISSUED AT 11:00 AM, 07 September 2024".
	issuedAtRe = regexp.MustCompile(`(?i)issued\s+at\s+(\d{1,2}:\d{2}\s*[AP]\.?M\.?)[,\s]+(\d{1,2}\s+[A-Za-z]+\s+\d{4})`)

	// positionRe captures the coordinate pair from the center location
	// sentence, e.g. "... was estimated ... (16.1°N, 122.5°E)".
	positionRe = regexp.MustCompile(`(?i)\((\d{1,2}(?:\.\d+)?\s*°?\s*N\s*,\s*\d{1,3}(?:\.\d+)?\s*°?\s*E)\)`)

	// movementRe captures the movement sentence fragment, e.g.
	// "moving west northwestward at 15 km/h".
	movementRe = regexp.MustCompile(`(?i)\b(?:moving|will move)\s+([^.;\n]+)`)

	// maxWindsRe captures the intensity fragment, e.g. "maximum sustained
	// winds of 150 km/h near the center".
	maxWindsRe = regexp.MustCompile(`(?i)maximum\s+sustained\s+winds\s+of\s+([^.;\n]+)`)

	// signalSectionRe locates the start of the wind signal section.
	signalSectionRe = regexp.MustCompile(`(?i)tropical\s+cyclone\s+wind\s+signals?`)

	// signalSectionEndRe marks headings that terminate the signal section.
	signalSectionEndRe = regexp.MustCompile(`(?i)hazards\s+affecting|heavy\s+rainfall|rainfall\s+outlook|track\s+and\s+intensity|other\s+hazards`)

	// noSignalRe matches the explicit "no wind signal in effect" statement.
	noSignalRe = regexp.MustCompile(`(?i)no\s+(?:tropical\s+cyclone\s+)?wind\s+signal`)

	// signalLevelRe matches a TCWS level heading within the signal section.
	signalLevelRe = regexp.MustCompile(`(?i)(?:wind\s+)?signal\s*(?:no\.?\s*)?#?\s*([1-5])\b`)

	// islandLabelRe matches the Luzon/Visayas/Mindanao group labels that
	// precede each area list. A label is either followed by a colon or
	// dash, or stands alone at the end of its line; a bare island-group
	// word inside prose does not qualify.
	islandLabelRe = regexp.MustCompile(`(?im)\b(?:luzon|visayas|mindanao)\b[ \t]*(?:[-:][ \t]*|$)`)

	// rainfallSectionRe locates the rainfall hazard section.
	rainfallSectionRe = regexp.MustCompile(`(?i)heavy\s+rainfall(?:\s+(?:warning|outlook))?|hazards\s+affecting\s+land\s+areas`)

	// rainfallSectionEndRe marks headings that terminate it.
	rainfallSectionEndRe = regexp.MustCompile(`(?i)tropical\s+cyclone\s+wind|severe\s+winds|hazards\s+affecting\s+coastal|track\s+and\s+intensity`)

	// locationLeadRe captures the area list after a lead-in preposition,
	// e.g. "torrential rains over Catanduanes and Camarines Norte".
	locationLeadRe = regexp.MustCompile(`(?i)\b(?:over|across|affecting)\s+([^.;\n]+)`)
)

// rainfallKeywords maps level to the intensity words that signal it, checked
// in level order so "intense to torrential" classifies as level 1 before
// "heavy" can claim it.
var rainfallKeywords = []struct {
	level int
	words []string
}{
	{1, []string{"torrential", "intense"}},
	{2, []string{"heavy"}},
	{3, []string{"moderate"}},
}

// ExtractIssuedAt parses the bulletin issue timestamp. Bulletins print it in
// Philippine Standard Time; the zero time and false are returned when the
// header line is missing or malformed.
func ExtractIssuedAt(text string) (time.Time, bool) {
	m := issuedAtRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	// Normalize "11:00AM" / "11:00 a.m." variants to "11:00 AM".
	clock := strings.ToUpper(strings.ReplaceAll(m[1], ".", ""))
	clock = strings.Join(strings.Fields(clock), " ")
	if !strings.Contains(clock, " ") {
		clock = clock[:len(clock)-2] + " " + clock[len(clock)-2:]
	}
	date := strings.Join(strings.Fields(m[2]), " ")

	t, err := time.ParseInLocation("3:04 PM 2 January 2006", clock+" "+date, pst)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ExtractPosition returns the cyclone center coordinates as printed, e.g.
// "16.1°N, 122.5°E". Empty when the bulletin carries none.
func ExtractPosition(text string) string {
	if m := positionRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// ExtractMovement returns the movement description fragment, e.g.
// "west northwestward at 15 km/h". Empty when absent.
func ExtractMovement(text string) string {
	if m := movementRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// ExtractMaxWinds returns the maximum sustained winds fragment. Empty when
// absent.
func ExtractMaxWinds(text string) string {
	if m := maxWindsRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// ExtractSignals parses the Tropical Cyclone Wind Signals section into
// per-level location entities. The section is sliced at each level heading,
// and within each slice the Luzon/Visayas/Mindanao labeled area lists are
// fed through the parser. Returns nil when the bulletin has no signal
// section or states that no signal is in effect.
func ExtractSignals(text string, p *Parser) map[int][]LocationEntity {
	section, ok := extractSection(text, signalSectionRe, signalSectionEndRe)
	if !ok || noSignalRe.MatchString(section) {
		return nil
	}

	headings := signalLevelRe.FindAllStringSubmatchIndex(section, -1)
	if len(headings) == 0 {
		return nil
	}

	// Keep the first occurrence of each level, slicing the section from the
	// end of one heading to the start of the next.
	type heading struct {
		level      int
		start, end int
	}
	var order []heading
	seen := make(map[int]bool, 5)
	for _, m := range headings {
		level := int(section[m[2]] - '0')
		if seen[level] {
			continue
		}
		seen[level] = true
		order = append(order, heading{level: level, start: m[0], end: m[1]})
	}
	sort.Slice(order, func(i, j int) bool { return order[i].start < order[j].start })

	warnings := make(map[int][]LocationEntity, len(order))
	for i, h := range order {
		end := len(section)
		if i+1 < len(order) {
			end = order[i+1].start
		}
		if entities := parseAreaLists(section[h.end:end], p); len(entities) > 0 {
			warnings[h.level] = entities
		}
	}
	if len(warnings) == 0 {
		return nil
	}
	return warnings
}

// ExtractRainfall parses the rainfall hazard section into per-level location
// entities. Each sentence is classified by its strongest intensity keyword
// and its "over ..." area list is fed through the parser. Returns nil when
// the bulletin has no rainfall section.
func ExtractRainfall(text string, p *Parser) map[int][]LocationEntity {
	section, ok := extractSection(text, rainfallSectionRe, rainfallSectionEndRe)
	if !ok {
		return nil
	}

	warnings := make(map[int][]LocationEntity, 3)
	for _, sentence := range splitSentences(section) {
		level := rainfallLevel(sentence)
		if level == 0 {
			continue
		}
		for _, m := range locationLeadRe.FindAllStringSubmatch(sentence, -1) {
			warnings[level] = append(warnings[level], p.Parse(m[1])...)
		}
	}

	for level, entities := range warnings {
		warnings[level] = dedupeEntities(entities)
	}
	if len(warnings) == 0 {
		return nil
	}
	return warnings
}

// rainfallLevel classifies a sentence by its strongest intensity keyword,
// zero when none applies.
func rainfallLevel(sentence string) int {
	lower := strings.ToLower(sentence)
	if !strings.Contains(lower, "rain") {
		return 0
	}
	for _, rk := range rainfallKeywords {
		for _, w := range rk.words {
			if strings.Contains(lower, w) {
				return rk.level
			}
		}
	}
	return 0
}

// extractSection slices text from the first match of start to the first
// subsequent match of end, or to the end of the text.
func extractSection(text string, start, end *regexp.Regexp) (string, bool) {
	loc := start.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	rest := text[loc[1]:]
	if stop := end.FindStringIndex(rest); stop != nil {
		rest = rest[:stop[0]]
	}
	return rest, true
}

// parseAreaLists feeds every labeled area list in a signal slice through the
// parser. When no island-group labels are present, the first "over ..."
// lead-in is parsed instead so older single-line signal formats still yield
// entities.
func parseAreaLists(slice string, p *Parser) []LocationEntity {
	var entities []LocationEntity

	labels := islandLabelRe.FindAllStringIndex(slice, -1)
	if len(labels) == 0 {
		if m := locationLeadRe.FindStringSubmatch(slice); m != nil {
			entities = p.Parse(m[1])
		}
		return dedupeEntities(entities)
	}

	for i, label := range labels {
		end := len(slice)
		if i+1 < len(labels) {
			end = labels[i+1][0]
		}
		area := strings.TrimSpace(slice[label[1]:end])
		area = strings.Trim(area, ".;")
		area = strings.Join(strings.Fields(area), " ")
		entities = append(entities, p.Parse(area)...)
	}
	return dedupeEntities(entities)
}

// splitSentences breaks a section into rough sentences on periods and
// newlines. Good enough for keyword classification; the parser handles the
// messy interior of each piece.
func splitSentences(section string) []string {
	var sentences []string
	for _, part := range strings.FieldsFunc(section, func(r rune) bool {
		return r == '.' || r == '\n'
	}) {
		if part = strings.TrimSpace(part); part != "" {
			sentences = append(sentences, part)
		}
	}
	return sentences
}
