package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typhoonhub/bulletin-etl/internal/gazetteer"
)

const testBulletinText = `TROPICAL CYCLONE BULLETIN NR. 14
Typhoon "PEPITO" (MAN-YI)
Issued at 11:00 AM, 16 November 2024

The center of the eye of Typhoon PEPITO was estimated based on all available
data at 125 km East of Virac, Catanduanes (13.6°N, 125.3°E).

Moving West Northwestward at 20 km/h.

Maximum sustained winds of 185 km/h near the center, with gustiness of up to
230 km/h.

TROPICAL CYCLONE WIND SIGNALS
Wind Signal No. 5
Luzon: Catanduanes
Wind Signal No. 3
Luzon: Camarines Norte, the northwestern portion of Isabela (Santo Tomas, Santa Maria, Quezon)
Visayas: Northern Samar
Wind Signal No. 1
Luzon: Batanes, Cagayan including Babuyan Islands, Apayao
Visayas: Eastern Samar, Leyte

HEAVY RAINFALL OUTLOOK
Today: Intense to torrential rains over Catanduanes.
Tomorrow: Heavy rains over Northern Samar.
Moderate rains over Leyte.

TRACK AND INTENSITY OUTLOOK
The typhoon will continue moving west northwestward over the next 24 hours.
`

func TestExtractIssuedAt(t *testing.T) {
	t.Run("standard header", func(t *testing.T) {
		issued, ok := ExtractIssuedAt(testBulletinText)

		require.True(t, ok)
		expected := time.Date(2024, 11, 16, 11, 0, 0, 0, pst)
		assert.True(t, expected.Equal(issued), "got %v", issued)
	})

	t.Run("format variants", func(t *testing.T) {
		variants := []string{
			"ISSUED AT 5:00 PM, 7 September 2024",
			"Issued at 5:00PM, 07 September 2024",
			"issued at 5:00 P.M. 07 September 2024",
		}
		expected := time.Date(2024, 9, 7, 17, 0, 0, 0, pst)

		for _, v := range variants {
			issued, ok := ExtractIssuedAt(v)
			require.True(t, ok, "variant %q", v)
			assert.True(t, expected.Equal(issued), "variant %q got %v", v, issued)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		_, ok := ExtractIssuedAt("no timestamp in this text")
		assert.False(t, ok)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, ok := ExtractIssuedAt("ISSUED AT 11:00 AM, 45 Nonsense 2024")
		assert.False(t, ok)
	})
}

func TestExtractStormFragments(t *testing.T) {
	assert.Equal(t, "13.6°N, 125.3°E", ExtractPosition(testBulletinText))
	assert.Equal(t, "West Northwestward at 20 km/h", ExtractMovement(testBulletinText))
	assert.Contains(t, ExtractMaxWinds(testBulletinText), "185 km/h")

	assert.Empty(t, ExtractPosition("no coordinates here"))
	assert.Empty(t, ExtractMovement("stationary text"))
	assert.Empty(t, ExtractMaxWinds("calm text"))
}

func TestExtractSignals(t *testing.T) {
	warnings := ExtractSignals(testBulletinText, testParser())

	require.NotNil(t, warnings)
	require.Len(t, warnings, 3)

	require.Len(t, warnings[5], 1)
	assert.Equal(t, "Catanduanes", warnings[5][0].MainLocation)
	assert.Equal(t, gazetteer.Luzon, warnings[5][0].IslandGroup)

	require.Len(t, warnings[3], 3)
	assert.Equal(t, "Camarines Norte", warnings[3][0].MainLocation)
	assert.Equal(t, []string{"Santo Tomas", "Santa Maria", "Quezon"}, warnings[3][1].SubLocations)
	assert.Equal(t, gazetteer.Visayas, warnings[3][2].IslandGroup)

	require.Len(t, warnings[1], 5)
	assert.Equal(t, "Cagayan including Babuyan Islands", warnings[1][1].MainLocation)
	assert.Equal(t, gazetteer.Luzon, warnings[1][1].IslandGroup)
	assert.Equal(t, gazetteer.Visayas, warnings[1][4].IslandGroup)
}

func TestExtractSignals_NoSection(t *testing.T) {
	assert.Nil(t, ExtractSignals("bulletin without a signal section", testParser()))
}

func TestExtractSignals_NoSignalInEffect(t *testing.T) {
	text := `TROPICAL CYCLONE WIND SIGNALS
No Tropical Cyclone Wind Signal is currently in effect.`

	assert.Nil(t, ExtractSignals(text, testParser()))
}

func TestExtractSignals_UnlabeledFallback(t *testing.T) {
	text := `TROPICAL CYCLONE WIND SIGNALS
Signal No. 1 is hoisted over Batanes, Apayao due to strong winds.`

	warnings := ExtractSignals(text, testParser())

	require.Len(t, warnings, 1)
	require.Len(t, warnings[1], 2)
	assert.Equal(t, "Batanes", warnings[1][0].MainLocation)
	assert.Equal(t, "Apayao due to strong winds", warnings[1][1].MainLocation)
}

func TestExtractRainfall(t *testing.T) {
	warnings := ExtractRainfall(testBulletinText, testParser())

	require.NotNil(t, warnings)
	require.Len(t, warnings, 3)

	require.Len(t, warnings[1], 1)
	assert.Equal(t, "Catanduanes", warnings[1][0].MainLocation)

	require.Len(t, warnings[2], 1)
	assert.Equal(t, "Northern Samar", warnings[2][0].MainLocation)
	assert.Equal(t, gazetteer.Visayas, warnings[2][0].IslandGroup)

	require.Len(t, warnings[3], 1)
	assert.Equal(t, "Leyte", warnings[3][0].MainLocation)
}

func TestExtractRainfall_NoSection(t *testing.T) {
	assert.Nil(t, ExtractRainfall("bulletin without rainfall hazards", testParser()))
}
