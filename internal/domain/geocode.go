package domain

import (
	"context"
	"log/slog"

	"github.com/typhoonhub/bulletin-etl/internal/gazetteer"
)

// EnrichWithGeocoding attaches coordinates to the report's warning entities.
// Only anchored main locations are geocoded: vague or unresolved mentions
// have no coordinates worth looking up. A nil geocoder or a provider error
// leaves the entity without coordinates (graceful degradation); the same
// name appearing under several warning levels is looked up once.
func EnrichWithGeocoding(ctx context.Context, report BulletinReport, geocoder Geocoder, logger *slog.Logger) BulletinReport {
	if geocoder == nil {
		return report
	}

	resolved := make(map[string]*Geo)
	geocodeAll(ctx, report.SignalWarnings, geocoder, logger, report.ID, resolved)
	geocodeAll(ctx, report.RainfallWarnings, geocoder, logger, report.ID, resolved)
	return report
}

func geocodeAll(ctx context.Context, warnings map[int][]LocationEntity, geocoder Geocoder, logger *slog.Logger, reportID string, resolved map[string]*Geo) {
	for level := range warnings {
		entities := warnings[level]
		for i := range entities {
			e := &entities[i]
			if e.Geo != nil || e.IsVague || e.IslandGroup == gazetteer.Other {
				continue
			}

			key := gazetteer.NormalizeName(e.MainLocation)
			if geo, done := resolved[key]; done {
				e.Geo = geo
				continue
			}

			result, err := geocoder.ForwardGeocode(ctx, e.MainLocation)
			if err != nil {
				logger.Warn("forward geocoding failed",
					"report_id", reportID,
					"location", e.MainLocation,
					"error", err,
				)
				resolved[key] = nil
				continue
			}
			if result.Lat == 0 && result.Lon == 0 {
				resolved[key] = nil
				continue
			}
			geo := &Geo{Lat: result.Lat, Lon: result.Lon}
			resolved[key] = geo
			e.Geo = geo
		}
	}
}
