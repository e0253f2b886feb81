// Package kafka adapts segmentio/kafka-go readers and writers to the
// pipeline's extractor and loader interfaces.
package kafka

import (
	"context"
	"errors"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/typhoonhub/bulletin-etl/internal/config"
	"github.com/typhoonhub/bulletin-etl/internal/domain"
)

// Reader consumes raw bulletin messages from the source topic.
// It implements pipeline.BatchExtractor.
type Reader struct {
	reader        *kafkago.Reader
	logger        *slog.Logger
	flushInterval time.Duration
}

// NewReader creates a Kafka consumer for the configured source topic.
func NewReader(cfg *config.Config, logger *slog.Logger) *Reader {
	r := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.KafkaBrokers,
		Topic:    cfg.KafkaSourceTopic,
		GroupID:  cfg.KafkaGroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return &Reader{reader: r, logger: logger, flushInterval: cfg.BatchFlushInterval}
}

// ExtractBatch fetches up to batchSize messages, returning whatever has
// accumulated once the flush interval elapses so a slow trickle of bulletins
// still flows through the pipeline. Offsets are committed per message via
// the RawEvent commit callback, only after the pipeline has loaded the
// transformed result.
func (r *Reader) ExtractBatch(ctx context.Context, batchSize int) ([]domain.RawEvent, error) {
	batchCtx, cancel := context.WithTimeout(ctx, r.flushInterval)
	defer cancel()

	events := make([]domain.RawEvent, 0, batchSize)
	for len(events) < batchSize {
		msg, err := r.reader.FetchMessage(batchCtx)
		if err != nil {
			// Flush a partial batch when only the batch window expired.
			if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
				return events, nil
			}
			if len(events) > 0 && ctx.Err() == nil {
				r.logger.Warn("fetch failed mid-batch, flushing partial batch", "error", err, "batch_len", len(events))
				return events, nil
			}
			return nil, err
		}

		raw := mapMessageToRawEvent(msg)
		raw.Commit = func(ctx context.Context) error {
			return r.reader.CommitMessages(ctx, msg)
		}
		events = append(events, raw)
	}
	return events, nil
}

func (r *Reader) Close() error {
	return r.reader.Close()
}

// mapMessageToRawEvent converts a Kafka message into the domain raw event.
// The commit callback is attached by the caller.
func mapMessageToRawEvent(msg kafkago.Message) domain.RawEvent {
	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	return domain.RawEvent{
		Key:       msg.Key,
		Value:     msg.Value,
		Headers:   headers,
		Topic:     msg.Topic,
		Partition: msg.Partition,
		Offset:    msg.Offset,
		Timestamp: msg.Time,
	}
}
