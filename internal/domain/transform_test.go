package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typhoonhub/bulletin-etl/internal/gazetteer"
)

func rawBulletinJSON(t *testing.T, rec RawBulletin) []byte {
	t.Helper()
	data, err := json.Marshal(rec)
	require.NoError(t, err)
	return data
}

func TestParseRawEvent(t *testing.T) {
	t.Run("valid envelope", func(t *testing.T) {
		data := rawBulletinJSON(t, RawBulletin{
			CycloneName:       "Pepito",
			InternationalName: "Man-yi",
			BulletinNo:        14,
			Text:              testBulletinText,
			SourceURL:         "https://bagong.pagasa.dost.gov.ph/tropical-cyclone-bulletin",
		})

		report, err := ParseRawEvent(RawEvent{Value: data})

		require.NoError(t, err)
		assert.Equal(t, "Pepito", report.CycloneName)
		assert.Equal(t, "Man-yi", report.InternationalName)
		assert.Equal(t, 14, report.BulletinNo)
		assert.Equal(t, testBulletinText, report.BulletinText)
		assert.Equal(t, data, report.RawPayload)
		assert.Empty(t, report.ID, "ID is assigned during enrichment")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := ParseRawEvent(RawEvent{Value: []byte("{invalid json")})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse raw event")
	})

	t.Run("empty bulletin text rejected", func(t *testing.T) {
		data := rawBulletinJSON(t, RawBulletin{CycloneName: "Pepito", BulletinNo: 1})

		_, err := ParseRawEvent(RawEvent{Value: data})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty bulletin text")
	})
}

func TestEnrichBulletinReport(t *testing.T) {
	fixedTime := time.Date(2024, 11, 16, 12, 30, 45, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixedTime))
	defer SetClock(nil)

	data := rawBulletinJSON(t, RawBulletin{
		CycloneName: "Pepito",
		BulletinNo:  14,
		Text:        testBulletinText,
	})
	report, err := ParseRawEvent(RawEvent{Value: data})
	require.NoError(t, err)

	result := EnrichBulletinReport(report, testParser())

	assert.True(t, strings.HasPrefix(result.ID, "pepito-"))
	assert.True(t, time.Date(2024, 11, 16, 11, 0, 0, 0, pst).Equal(result.IssuedAt))
	assert.Equal(t, "13.6°N, 125.3°E", result.PositionText)
	assert.Contains(t, result.MovementText, "20 km/h")
	assert.Contains(t, result.MaxWindsText, "185 km/h")
	assert.Equal(t, fixedTime, result.ProcessedAt)

	require.Len(t, result.SignalWarnings, 3)
	require.Len(t, result.SignalTags, 3)
	assert.Equal(t, []string{"Catanduanes"}, result.SignalTags[5][gazetteer.Luzon])
	assert.Contains(t, result.SignalTags[3][gazetteer.Luzon], "Santo Tomas")
	assert.Equal(t, []string{"Northern Samar"}, result.SignalTags[3][gazetteer.Visayas])

	require.NotEmpty(t, result.RainfallWarnings)
	assert.Equal(t, []string{"Catanduanes"}, result.RainfallTags[1][gazetteer.Luzon])
}

func TestEnrichBulletinReport_Deterministic(t *testing.T) {
	data := rawBulletinJSON(t, RawBulletin{CycloneName: "Pepito", BulletinNo: 14, Text: testBulletinText})
	report, err := ParseRawEvent(RawEvent{Value: data})
	require.NoError(t, err)

	first := EnrichBulletinReport(report, testParser())
	second := EnrichBulletinReport(report, testParser())

	assert.Equal(t, first.ID, second.ID)
}

func TestGenerateID(t *testing.T) {
	issued := time.Date(2024, 11, 16, 11, 0, 0, 0, pst).Unix()

	t.Run("includes cyclone prefix", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(generateID("Pepito", 14, issued), "pepito-"))
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, generateID("Pepito", 14, issued), generateID("Pepito", 14, issued))
	})

	t.Run("different inputs produce different IDs", func(t *testing.T) {
		assert.NotEqual(t, generateID("Pepito", 14, issued), generateID("Pepito", 15, issued))
	})

	t.Run("empty cyclone name", func(t *testing.T) {
		id := generateID("", 14, issued)
		assert.NotEmpty(t, id)
		assert.False(t, strings.Contains(id, "-"))
	})
}

func TestSerializeBulletinReport(t *testing.T) {
	fixedTime := time.Date(2024, 11, 16, 12, 0, 0, 0, time.UTC)

	t.Run("successful serialization", func(t *testing.T) {
		report := BulletinReport{
			ID:          "pepito-abc123",
			CycloneName: "Pepito",
			BulletinNo:  14,
			SignalWarnings: map[int][]LocationEntity{
				1: {{RawText: "Batanes", MainLocation: "Batanes", IslandGroup: gazetteer.Luzon}},
			},
			ProcessedAt: fixedTime,
		}

		result, err := SerializeBulletinReport(report)

		require.NoError(t, err)
		assert.Equal(t, []byte("pepito-abc123"), result.Key)
		assert.Equal(t, "Pepito", result.Headers["cyclone"])
		assert.Equal(t, "2024-11-16T12:00:00Z", result.Headers["processed_at"])

		var unmarshaled BulletinReport
		require.NoError(t, json.Unmarshal(result.Value, &unmarshaled))
		assert.Equal(t, "pepito-abc123", unmarshaled.ID)
		require.Len(t, unmarshaled.SignalWarnings[1], 1)
		assert.Equal(t, gazetteer.Luzon, unmarshaled.SignalWarnings[1][0].IslandGroup)
	})

	t.Run("empty report ID", func(t *testing.T) {
		result, err := SerializeBulletinReport(BulletinReport{ProcessedAt: fixedTime})

		require.NoError(t, err)
		assert.Empty(t, result.Key)
		assert.NotContains(t, result.Headers, "cyclone")
	})
}

func TestSetClock(t *testing.T) {
	t.Run("set custom clock", func(t *testing.T) {
		fixedTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		SetClock(clockwork.NewFakeClockAt(fixedTime))
		assert.Equal(t, fixedTime, clock.Now())

		SetClock(nil) // reset
	})

	t.Run("reset to real clock", func(t *testing.T) {
		SetClock(clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
		SetClock(nil)

		now := clock.Now()
		assert.True(t, time.Since(now) < time.Second)
	})
}
