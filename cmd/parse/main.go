// Command parse runs the location engine against ad-hoc input without Kafka.
// It reads a location description (or, with -bulletin, a full bulletin text)
// from -text, -file, or stdin and prints the parsed result as JSON.
//
// Usage:
//
//	go run ./cmd/parse -text "Catanduanes, the northern portion of Aurora (Dilasag)"
//	go run ./cmd/parse -bulletin -file bulletin.txt
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/typhoonhub/bulletin-etl/internal/domain"
	"github.com/typhoonhub/bulletin-etl/internal/gazetteer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "parse: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	gazetteerPath := flag.String("gazetteer", "data/psgc_locations.csv", "path to the PSGC location CSV")
	text := flag.String("text", "", "location description to parse")
	file := flag.String("file", "", "file containing the text to parse (stdin when neither -text nor -file is set)")
	bulletin := flag.Bool("bulletin", false, "treat input as a full bulletin and extract signal and rainfall warnings")
	flag.Parse()

	input, err := readInput(*text, *file)
	if err != nil {
		return err
	}

	index, err := gazetteer.LoadIndex(*gazetteerPath)
	if err != nil {
		return fmt.Errorf("load gazetteer: %w", err)
	}
	parser := domain.NewParser(index)

	var out any
	if *bulletin {
		out = parseBulletin(parser, input)
	} else {
		entities := parser.Parse(input)
		out = map[string]any{
			"entities": entities,
			"grouped":  domain.ToGroupedLocations(entities),
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func readInput(text, file string) (string, error) {
	switch {
	case text != "":
		return text, nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
}

func parseBulletin(parser *domain.Parser, text string) any {
	signals := domain.ExtractSignals(text, parser)
	rainfall := domain.ExtractRainfall(text, parser)

	out := map[string]any{
		"signal_warnings":   signals,
		"rainfall_warnings": rainfall,
	}
	if issuedAt, ok := domain.ExtractIssuedAt(text); ok {
		out["issued_at"] = issuedAt
	}
	if pos := domain.ExtractPosition(text); pos != "" {
		out["position"] = pos
	}
	if mov := domain.ExtractMovement(text); mov != "" {
		out["movement"] = mov
	}
	if winds := domain.ExtractMaxWinds(text); winds != "" {
		out["max_winds"] = winds
	}
	return out
}
