package domain

import (
	"context"
	"time"

	"github.com/typhoonhub/bulletin-etl/internal/gazetteer"
)

// RawBulletin represents the JSON structure produced by the collector: one
// message per issued bulletin, carrying the extracted plain text.
type RawBulletin struct {
	CycloneName       string `json:"cyclone_name"`
	InternationalName string `json:"international_name,omitempty"`
	BulletinNo        int    `json:"bulletin_no"`
	Text              string `json:"text"`
	SourceURL         string `json:"source_url,omitempty"`
}

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// GroupedLocations is the legacy projection of a warning's entities: every
// location name bucketed under its island group. Downstream consumers that
// predate structured entities read this shape.
type GroupedLocations map[gazetteer.IslandGroup][]string

// BulletinReport is the domain-rich representation after parsing.
type BulletinReport struct {
	ID                string    `json:"id"`
	CycloneName       string    `json:"cyclone_name"`
	InternationalName string    `json:"international_name,omitempty"`
	BulletinNo        int       `json:"bulletin_no"`
	IssuedAt          time.Time `json:"issued_at,omitempty"`

	PositionText string `json:"position,omitempty"`
	MovementText string `json:"movement,omitempty"`
	MaxWindsText string `json:"max_winds,omitempty"`

	// SignalWarnings maps TCWS level (1-5) to the parsed location
	// entities under that signal. Levels absent from the bulletin are
	// absent from the map.
	SignalWarnings map[int][]LocationEntity `json:"signal_warnings,omitempty"`

	// RainfallWarnings maps rainfall warning level (1-3) to parsed
	// entities, level 1 being the most intense.
	RainfallWarnings map[int][]LocationEntity `json:"rainfall_warnings,omitempty"`

	// SignalTags and RainfallTags are the legacy grouped projections of
	// the warnings above, kept for consumers of the old feed format.
	SignalTags   map[int]GroupedLocations `json:"signal_tags,omitempty"`
	RainfallTags map[int]GroupedLocations `json:"rainfall_tags,omitempty"`

	SourceURL string `json:"source_url,omitempty"`

	// BulletinText is the extracted plain text the warnings were parsed
	// from. Carried for enrichment, not serialized to the sink.
	BulletinText string `json:"-"`

	RawPayload  []byte    `json:"-"`
	ProcessedAt time.Time `json:"processed_at"`
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
