package services

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/snackops/snackledger/internal/logger"
	"github.com/snackops/snackledger/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishEvent publishes a stock event to Kafka. Publishing is best-effort:
// a nil writer skips, and failures are logged but never fail the mutation
// that already committed.
func publishEvent(ctx context.Context, w KafkaWriter, ev models.StockEvent) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", ev.EventID)
		return
	}

	data, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Errorw("Failed to marshal stock event for Kafka", "event_id", ev.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(ev.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish stock event to Kafka", "event_id", ev.EventID, "error", err)
	} else {
		logger.Log.Infow("Stock event published to Kafka", "event_id", ev.EventID, "action", ev.Action)
	}
}
