package gazetteer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrMalformedGazetteer indicates the source table cannot back a usable
// index: required columns are missing or an island_group value is outside
// {Luzon, Visayas, Mindanao}. The engine cannot operate without a valid
// gazetteer, so this is the one hard failure in the package.
var ErrMalformedGazetteer = errors.New("malformed gazetteer")

// requiredColumns must all be present in the CSV header.
var requiredColumns = []string{"location_name", "location_type", "code", "parent_code", "island_group"}

// LoadCSV reads consolidated location rows from r. Column order is taken
// from the header, extra columns are ignored. Rows with an empty name are
// skipped; an invalid island_group fails the whole load.
func LoadCSV(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrMalformedGazetteer, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformedGazetteer, name)
		}
	}

	var entries []Entry
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedGazetteer, line, err)
		}

		field := func(name string) string {
			i := cols[name]
			if i >= len(rec) {
				return ""
			}
			return rec[i]
		}

		name := field("location_name")
		if name == "" {
			continue
		}

		group, err := ParseIslandGroup(field("island_group"))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedGazetteer, line, err)
		}

		entries = append(entries, Entry{
			Name:        name,
			Type:        DivisionType(field("location_type")),
			Code:        field("code"),
			ParentCode:  field("parent_code"),
			IslandGroup: group,
		})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no location rows", ErrMalformedGazetteer)
	}
	return entries, nil
}

// LoadFile loads entries from a CSV file on disk.
func LoadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gazetteer: %w", err)
	}
	defer f.Close()
	return LoadCSV(f)
}

// LoadIndex is the common load-and-build path used by the binaries.
func LoadIndex(path string, opts ...IndexOption) (*Index, error) {
	entries, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return NewIndex(entries, opts...), nil
}
