package pipeline

import (
	"context"
	"log/slog"

	"github.com/typhoonhub/bulletin-etl/internal/domain"
	"github.com/typhoonhub/bulletin-etl/internal/observability"
)

// BulletinTransformer implements Transformer: it parses the raw collector
// envelope, runs the bulletin text through the location engine, optionally
// geocodes the anchored entities, and serializes the report for the sink.
type BulletinTransformer struct {
	parser   *domain.Parser
	geocoder domain.Geocoder
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewTransformer creates a BulletinTransformer. Pass a nil geocoder to
// disable geocoding enrichment.
func NewTransformer(parser *domain.Parser, geocoder domain.Geocoder, logger *slog.Logger, metrics *observability.Metrics) *BulletinTransformer {
	return &BulletinTransformer{
		parser:   parser,
		geocoder: geocoder,
		logger:   logger,
		metrics:  metrics,
	}
}

func (t *BulletinTransformer) Transform(ctx context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	report, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	report = domain.EnrichBulletinReport(report, t.parser)
	report = domain.EnrichWithGeocoding(ctx, report, t.geocoder, t.logger)
	t.observeReport(report)

	return domain.SerializeBulletinReport(report)
}

// observeReport feeds the engine metrics from one enriched report.
func (t *BulletinTransformer) observeReport(report domain.BulletinReport) {
	total, vague := 0, 0
	for _, warnings := range []map[int][]domain.LocationEntity{report.SignalWarnings, report.RainfallWarnings} {
		for _, entities := range warnings {
			total += len(entities)
			for _, e := range entities {
				if e.IsVague {
					vague++
				}
			}
		}
	}

	t.metrics.EntitiesParsed.Add(float64(total))
	t.metrics.VagueEntities.Add(float64(vague))
	t.metrics.SignalLevels.Observe(float64(len(report.SignalWarnings)))
}
