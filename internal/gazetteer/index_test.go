package gazetteer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() []Entry {
	return []Entry{
		{Name: "Batanes", Type: Province, Code: "209", IslandGroup: Luzon},
		{Name: "Cagayan", Type: Province, Code: "215", IslandGroup: Luzon},
		{Name: "Apayao", Type: Province, Code: "1481", IslandGroup: Luzon},
		{Name: "Isabela", Type: Province, Code: "231", IslandGroup: Luzon},
		{Name: "Northern Samar", Type: Province, Code: "848", IslandGroup: Visayas},
		{Name: "Cebu", Type: Province, Code: "722", IslandGroup: Visayas},
		{Name: "Davao del Sur", Type: Province, Code: "1124", IslandGroup: Mindanao},
		// A Mindanao barangay sharing a Luzon province's name: the
		// province must win the lookup.
		{Name: "Isabela", Type: Barangay, Code: "97301001", IslandGroup: Mindanao},
		{Name: "Santo Tomas", Type: Municipality, Code: "3122", IslandGroup: Luzon},
		{Name: "Santa Maria", Type: Municipality, Code: "3120", IslandGroup: Luzon},
		{Name: "Quezon", Type: Municipality, Code: "3118", IslandGroup: Luzon},
		{Name: "Surigao del Norte", Type: Province, Code: "1667", IslandGroup: Mindanao},
	}
}

func TestLookup_ExactMatch(t *testing.T) {
	ix := NewIndex(testEntries())

	group, ok := ix.Lookup("Batanes")
	require.True(t, ok)
	assert.Equal(t, Luzon, group)

	group, ok = ix.Lookup("Cebu")
	require.True(t, ok)
	assert.Equal(t, Visayas, group)
}

func TestLookup_NormalizesInput(t *testing.T) {
	ix := NewIndex(testEntries())

	for _, name := range []string{"batanes", "  Batanes ", "BATANES", "davao   del  sur"} {
		_, ok := ix.Lookup(name)
		assert.True(t, ok, "expected hit for %q", name)
	}
}

func TestLookup_NoSubstringMatch(t *testing.T) {
	ix := NewIndex(testEntries())

	_, ok := ix.Lookup("Isabela City proper")
	assert.False(t, ok, "exact lookup must not match inside a longer phrase")
}

func TestLookup_TypePriorityWinsDuplicates(t *testing.T) {
	ix := NewIndex(testEntries())

	// "Isabela" exists as a Luzon province and a Mindanao barangay;
	// province priority must win regardless of load order.
	group, ok := ix.Lookup("Isabela")
	require.True(t, ok)
	assert.Equal(t, Luzon, group)
}

func TestLookup_SamePriorityFirstLoadedWins(t *testing.T) {
	entries := []Entry{
		{Name: "San Jose", Type: Barangay, IslandGroup: Visayas},
		{Name: "San Jose", Type: Barangay, IslandGroup: Mindanao},
	}
	ix := NewIndex(entries)

	group, ok := ix.Lookup("San Jose")
	require.True(t, ok)
	assert.Equal(t, Visayas, group)
}

func TestLookupWithin_FindsEmbeddedName(t *testing.T) {
	ix := NewIndex(testEntries())

	group, ok := ix.LookupWithin("Cagayan including Babuyan Islands")
	require.True(t, ok)
	assert.Equal(t, Luzon, group)
}

func TestLookupWithin_PrefersLongerPhrase(t *testing.T) {
	ix := NewIndex(testEntries())

	// "Northern Samar" (Visayas) must beat any shorter hit inside it.
	group, ok := ix.LookupWithin("the coast of Northern Samar")
	require.True(t, ok)
	assert.Equal(t, Visayas, group)
}

func TestLookupWithin_WordBoundariesOnly(t *testing.T) {
	ix := NewIndex([]Entry{{Name: "Cebu", Type: Province, IslandGroup: Visayas}})

	_, ok := ix.LookupWithin("Cebuville outskirts")
	assert.False(t, ok, "partial-word containment must not match")
}

func TestLookupWithin_Miss(t *testing.T) {
	ix := NewIndex(testEntries())

	_, ok := ix.LookupWithin("somewhere entirely unknown")
	assert.False(t, ok)
}

func TestContainsRegionAlias_Defaults(t *testing.T) {
	ix := NewIndex(testEntries())

	assert.True(t, ix.ContainsRegionAlias("Eastern Visayas"))
	assert.True(t, ix.ContainsRegionAlias("bicol region"))
	assert.True(t, ix.ContainsRegionAlias("Zamboanga Peninsula"))
	assert.True(t, ix.ContainsRegionAlias("Bangsamoro"))
	assert.False(t, ix.ContainsRegionAlias("Batanes"))
	assert.False(t, ix.ContainsRegionAlias("some unknown region"))
}

func TestContainsRegionAlias_CustomList(t *testing.T) {
	ix := NewIndex(testEntries(), WithRegionAliases(map[string]IslandGroup{
		"Test Region": Luzon,
	}))

	assert.True(t, ix.ContainsRegionAlias("test region"))
	assert.False(t, ix.ContainsRegionAlias("Eastern Visayas"), "default list replaced")
}

func TestCounts(t *testing.T) {
	ix := NewIndex(testEntries())

	assert.Equal(t, len(testEntries()), ix.Len())
	assert.Equal(t, 7, ix.CountByGroup(Luzon))
	assert.Equal(t, 2, ix.CountByGroup(Visayas))
	assert.Equal(t, 3, ix.CountByGroup(Mindanao))
}
