// Package domain models PAGASA tropical cyclone bulletin data and implements
// the location parsing and classification engine.
//
// # Data Source
//
// Bulletins are issued by PAGASA (the Philippine Atmospheric, Geophysical and
// Astronomical Services Administration) every few hours while a tropical
// cyclone is inside the Philippine Area of Responsibility. The upstream
// collector extracts the plain text of each bulletin and publishes it as
// JSON to the Kafka source topic; this service never touches the PDF or
// HTML layer.
//
// # Location Description Conventions
//
// Warning sections list affected areas as free-form comma-separated prose:
//
//	"Batanes, Cagayan including Babuyan Islands, Apayao"
//
// A parenthetical group directly after a place name enumerates the covered
// sub-divisions of that place:
//
//	"the northwestern portion of Isabela (Santo Tomas, Santa Maria, Quezon)"
//
// Commas inside parentheses separate sub-locations, not top-level mentions.
// Descriptions may also be deliberately broad ("northeastern Mindanao",
// "Eastern Visayas", "most of Palawan"); such mentions cannot be pinned to
// a single gazetteer entry and are classified as vague. The parser degrades
// instead of failing: any non-empty text produces at least one entity, with
// unresolvable mentions landing in the Other island group.
//
// # Wind Signal and Rainfall Conventions
//
// Tropical Cyclone Wind Signals run 1 (strong winds) through 5 (super
// typhoon winds) under a "Tropical Cyclone Wind Signals" heading, each level
// followed by the affected areas grouped under Luzon / Visayas / Mindanao
// labels. Rainfall warnings use three levels: 1 torrential/intense,
// 2 heavy, 3 moderate with occasional heavy rains.
//
// Issue times are printed as "ISSUED AT 11:00 AM, 07 September 2024" in
// Philippine Standard Time (UTC+8).
//
// # ID Generation
//
// Report IDs are deterministic SHA-256 hashes of cyclone|bulletin|issued.
// Reprocessing the same bulletin yields the same ID, so downstream upserts
// are idempotent and topic replays are safe. See [generateID].
package domain
