package gazetteer

// defaultRegionAliases maps region-level names as they appear in PAGASA
// bulletin prose to their island group. The PSGC table publishes regions
// under their numbered labels ("Region VIII (Eastern Visayas)"), so the
// prose forms never hit the name index and are handled as aliases instead.
func defaultRegionAliases() map[string]IslandGroup {
	aliases := map[string]IslandGroup{
		"Ilocos Region":                    Luzon,
		"Cagayan Valley":                   Luzon,
		"Central Luzon":                    Luzon,
		"CALABARZON":                       Luzon,
		"MIMAROPA":                         Luzon,
		"Bicol Region":                     Luzon,
		"National Capital Region":          Luzon,
		"NCR":                              Luzon,
		"Metro Manila":                     Luzon,
		"Cordillera Administrative Region": Luzon,
		"CAR":                              Luzon,
		"Western Visayas":                  Visayas,
		"Central Visayas":                  Visayas,
		"Eastern Visayas":                  Visayas,
		"Zamboanga Peninsula":              Mindanao,
		"Northern Mindanao":                Mindanao,
		"Davao Region":                     Mindanao,
		"SOCCSKSARGEN":                     Mindanao,
		"Caraga":                           Mindanao,
		"Bangsamoro":                       Mindanao,
		"BARMM":                            Mindanao,
	}

	normalized := make(map[string]IslandGroup, len(aliases))
	for name, group := range aliases {
		normalized[NormalizeName(name)] = group
	}
	return normalized
}
