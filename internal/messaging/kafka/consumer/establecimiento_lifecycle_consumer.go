package consumer

import (
	"context"
	"encoding/json"

	"mi-ciec/internal/establecimiento"
	"mi-ciec/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEstablecimientoLifecycle keeps the read-side options cache in step
// with establishment creations and deletions: invalidate, then rebuild so
// the next picker load is warm.
func ConsumeEstablecimientoLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	establecimientoService establecimiento.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.establecimiento_lifecycle")
	log.Info("establecimiento lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("establecimiento lifecycle consumer stopped")
				return
			}
			log.Error("fetch establecimiento lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EstablecimientoLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode establecimiento lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		establecimientoService.InvalidateOptions(ctx)
		if _, err := establecimientoService.GetOptions(ctx); err != nil {
			log.Error("rebuild options cache failed",
				zap.String("id_establecimiento", event.IDEstablecimiento),
				zap.String("event_type", event.EventType),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit establecimiento lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("options cache refreshed from lifecycle event",
			zap.String("id_establecimiento", event.IDEstablecimiento),
			zap.String("event_type", event.EventType),
		)
	}
}
