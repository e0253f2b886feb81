package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ParseRawEvent deserializes a RawEvent's value into a BulletinReport shell.
// It expects the JSON envelope produced by the collector service. A message
// with no bulletin text is rejected here so the pipeline can count it as a
// parse failure instead of emitting an empty report.
func ParseRawEvent(raw RawEvent) (BulletinReport, error) {
	var rec RawBulletin
	if err := json.Unmarshal(raw.Value, &rec); err != nil {
		return BulletinReport{}, fmt.Errorf("parse raw event: %w", err)
	}
	if strings.TrimSpace(rec.Text) == "" {
		return BulletinReport{}, fmt.Errorf("parse raw event: empty bulletin text")
	}

	return BulletinReport{
		CycloneName:       rec.CycloneName,
		InternationalName: rec.InternationalName,
		BulletinNo:        rec.BulletinNo,
		SourceURL:         rec.SourceURL,
		BulletinText:      rec.Text,

		RawPayload: raw.Value,
	}, nil
}

// EnrichBulletinReport runs the extraction and parsing stages over the raw
// bulletin text: issue time, storm position, movement and intensity
// fragments, wind signal and rainfall warnings, and the legacy grouped
// projections of both warning sets.
func EnrichBulletinReport(report BulletinReport, parser *Parser) BulletinReport {
	text := report.BulletinText

	if issued, ok := ExtractIssuedAt(text); ok {
		report.IssuedAt = issued
	}
	report.PositionText = ExtractPosition(text)
	report.MovementText = ExtractMovement(text)
	report.MaxWindsText = ExtractMaxWinds(text)

	report.SignalWarnings = ExtractSignals(text, parser)
	report.RainfallWarnings = ExtractRainfall(text, parser)
	report.SignalTags = projectTags(report.SignalWarnings)
	report.RainfallTags = projectTags(report.RainfallWarnings)

	report.ID = generateID(report.CycloneName, report.BulletinNo, report.IssuedAt.Unix())
	report.ProcessedAt = clock.Now()
	return report
}

// projectTags builds the legacy grouped projection for each warning level.
func projectTags(warnings map[int][]LocationEntity) map[int]GroupedLocations {
	if len(warnings) == 0 {
		return nil
	}
	tags := make(map[int]GroupedLocations, len(warnings))
	for level, entities := range warnings {
		tags[level] = ToGroupedLocations(entities)
	}
	return tags
}

// SerializeBulletinReport marshals a report into its sink-topic form. The
// deterministic report ID becomes the message key, so replayed bulletins
// compact to a single record on log-compacted sink topics.
func SerializeBulletinReport(report BulletinReport) (OutputEvent, error) {
	value, err := json.Marshal(report)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize report: %w", err)
	}

	headers := map[string]string{
		"processed_at": report.ProcessedAt.UTC().Format(time.RFC3339),
	}
	if report.CycloneName != "" {
		headers["cyclone"] = report.CycloneName
	}

	return OutputEvent{
		Key:     []byte(report.ID),
		Value:   value,
		Headers: headers,
	}, nil
}

// generateID produces a deterministic ID from the report's key fields.
// Reprocessing the same bulletin yields the same ID, which keeps downstream
// upserts idempotent and topic replays safe.
func generateID(cyclone string, bulletinNo int, issuedUnix int64) string {
	input := fmt.Sprintf("%s|%d|%d", strings.ToLower(strings.TrimSpace(cyclone)), bulletinNo, issuedUnix)
	hash := sha256.Sum256([]byte(input))
	short := hex.EncodeToString(hash[:8])
	if cyclone == "" {
		return short
	}
	return strings.ToLower(strings.TrimSpace(cyclone)) + "-" + short
}
