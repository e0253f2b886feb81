// Command validate performs integrity checks on the gazetteer table and the
// sample bulletin fixtures: column presence, referential consistency,
// duplicate-name resolution, and engine invariants over parsed bulletins.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -gazetteer data/psgc_locations.csv \
//	  -bulletins data/mock/pagasa_bulletins_sample.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/typhoonhub/bulletin-etl/internal/domain"
	"github.com/typhoonhub/bulletin-etl/internal/gazetteer"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	gazetteerPath := flag.String("gazetteer", "data/psgc_locations.csv", "path to the PSGC location CSV")
	bulletinsPath := flag.String("bulletins", "data/mock/pagasa_bulletins_sample.json", "path to the sample bulletin JSON (empty to skip)")
	flag.Parse()

	if code := run(*gazetteerPath, *bulletinsPath); code != 0 {
		os.Exit(code)
	}
}

func run(gazetteerPath, bulletinsPath string) int {
	fmt.Println("=== Bulletin ETL Data Integrity Validation ===")
	fmt.Println()

	entries, err := gazetteer.LoadFile(gazetteerPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load gazetteer: %v\n", err)
		return 1
	}
	index := gazetteer.NewIndex(entries)

	phases := []*phase{
		validateTableStructure(entries),
		validateReferentialIntegrity(entries),
		validateNameResolution(entries, index),
	}

	var bulletins []domain.RawBulletin
	if bulletinsPath != "" {
		bulletins, err = loadBulletins(bulletinsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FATAL: load bulletins: %v\n", err)
			return 1
		}
		phases = append(phases, validateEngineInvariants(bulletins, index))
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d gazetteer rows, %d sample bulletins\n", len(entries), len(bulletins))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func loadBulletins(path string) ([]domain.RawBulletin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var bulletins []domain.RawBulletin
	if err := json.Unmarshal(data, &bulletins); err != nil {
		return nil, err
	}
	return bulletins, nil
}

// ── Phase 1: Table Structure ──
// Validates individual gazetteer rows: known division types, usable codes.

func validateTableStructure(entries []gazetteer.Entry) *phase {
	p := &phase{name: "Phase 1: Table Structure (gazetteer rows)"}

	validTypes := map[gazetteer.DivisionType]bool{
		gazetteer.Region:       true,
		gazetteer.Province:     true,
		gazetteer.City:         true,
		gazetteer.Municipality: true,
		gazetteer.Barangay:     true,
	}

	seenCodes := map[string]string{}
	for i, e := range entries {
		if !validTypes[e.Type] {
			p.errorf("row %d (%s): unknown location_type %q", i, e.Name, e.Type)
		}
		if e.Code == "" {
			p.errorf("row %d (%s): empty code", i, e.Name)
			continue
		}
		if prev, ok := seenCodes[e.Code]; ok {
			p.errorf("row %d (%s): code %s already used by %s", i, e.Name, e.Code, prev)
		}
		seenCodes[e.Code] = e.Name
	}
	return p
}

// ── Phase 2: Referential Integrity ──
// Validates parent links: every non-region parent_code must resolve to a row,
// and children must share their parent's island group.

func validateReferentialIntegrity(entries []gazetteer.Entry) *phase {
	p := &phase{name: "Phase 2: Referential Integrity (parent codes)"}

	byCode := map[string]gazetteer.Entry{}
	for _, e := range entries {
		byCode[e.Code] = e
	}

	for i, e := range entries {
		if e.ParentCode == "" {
			if e.Type != gazetteer.Region {
				p.errorf("row %d (%s): non-region with empty parent_code", i, e.Name)
			}
			continue
		}
		parent, ok := byCode[e.ParentCode]
		if !ok {
			p.errorf("row %d (%s): parent_code %s not found", i, e.Name, e.ParentCode)
			continue
		}
		if parent.IslandGroup != e.IslandGroup {
			p.errorf("row %d (%s): island_group %s differs from parent %s (%s)",
				i, e.Name, e.IslandGroup, parent.Name, parent.IslandGroup)
		}
	}
	return p
}

// ── Phase 3: Name Resolution ──
// Recomputes the expected duplicate-name winner per normalized name and
// checks the built index agrees.

func validateNameResolution(entries []gazetteer.Entry, index *gazetteer.Index) *phase {
	p := &phase{name: "Phase 3: Name Resolution (index behavior)"}

	type winner struct {
		group    gazetteer.IslandGroup
		priority int
	}
	expected := map[string]winner{}
	for _, e := range entries {
		key := gazetteer.NormalizeName(e.Name)
		if key == "" {
			continue
		}
		prio := e.Type.Priority()
		if cur, ok := expected[key]; ok && cur.priority >= prio {
			continue
		}
		expected[key] = winner{group: e.IslandGroup, priority: prio}
	}

	for key, want := range expected {
		got, ok := index.Lookup(key)
		if !ok {
			p.errorf("name %q: not found in index", key)
			continue
		}
		if got != want.group {
			p.errorf("name %q: index resolves to %s, expected %s", key, got, want.group)
		}
	}

	for _, g := range gazetteer.Groups {
		if index.CountByGroup(g) == 0 {
			p.errorf("island group %s has no gazetteer rows", g)
		}
	}
	return p
}

// ── Phase 4: Engine Invariants ──
// Runs the sample bulletins through the engine and checks every extracted
// entity honors the classification invariants.

func validateEngineInvariants(bulletins []domain.RawBulletin, index *gazetteer.Index) *phase {
	p := &phase{name: "Phase 4: Engine Invariants (sample bulletins)"}

	parser := domain.NewParser(index)
	validGroups := map[gazetteer.IslandGroup]bool{
		gazetteer.Luzon:    true,
		gazetteer.Visayas:  true,
		gazetteer.Mindanao: true,
		gazetteer.Other:    true,
	}

	for _, b := range bulletins {
		label := fmt.Sprintf("%s #%d", b.CycloneName, b.BulletinNo)
		if b.Text == "" {
			p.errorf("%s: empty bulletin text", label)
			continue
		}

		checkWarnings := func(kind string, warnings map[int][]domain.LocationEntity) {
			for level, entities := range warnings {
				for _, e := range entities {
					id := fmt.Sprintf("%s %s %d entity %q", label, kind, level, e.RawText)
					if e.MainLocation == "" {
						p.errorf("%s: empty main location", id)
					}
					if !validGroups[e.IslandGroup] {
						p.errorf("%s: invalid island group %q", id, e.IslandGroup)
					}
					if e.IsVague && e.IslandGroup != gazetteer.Other {
						p.errorf("%s: vague entity mapped to %s", id, e.IslandGroup)
					}
					if e.IsVague && len(e.SubLocations) > 0 {
						p.errorf("%s: vague entity carries sub-locations", id)
					}
				}
			}
		}

		checkWarnings("signal", domain.ExtractSignals(b.Text, parser))
		checkWarnings("rainfall", domain.ExtractRainfall(b.Text, parser))

		if _, ok := domain.ExtractIssuedAt(b.Text); !ok {
			p.errorf("%s: no parseable ISSUED AT timestamp", label)
		}
	}
	return p
}
