package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/drought-dashboard/internal/config"
	"github.com/couchcryptid/drought-dashboard/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafkago.Writer the event writer needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// EventWriter produces selection events to a Kafka topic.
// It implements dashboard.EventPublisher.
type EventWriter struct {
	writer messageWriter
	logger *slog.Logger
}

// NewEventWriter creates a Kafka producer for the configured events topic.
func NewEventWriter(cfg *config.Config, logger *slog.Logger) *EventWriter {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaEventsTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
		Async:        false,
	}
	return &EventWriter{writer: w, logger: logger}
}

// Publish serializes and writes one selection event. Events are keyed by
// session so one session's changes stay ordered within a partition.
func (w *EventWriter) Publish(ctx context.Context, event domain.SelectionEvent) error {
	msg, err := serializeToMessage(event)
	if err != nil {
		return err
	}
	if err := w.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write selection event: %w", err)
	}
	return nil
}

func (w *EventWriter) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a SelectionEvent into a Kafka message.
func serializeToMessage(event domain.SelectionEvent) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize selection event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(event.SessionID),
		Value: data,
		Time:  event.OccurredAt,
		Headers: []kafkago.Header{
			{Key: "action", Value: []byte(event.Action)},
			{Key: "occurred_at", Value: []byte(event.OccurredAt.Format(time.RFC3339))},
		},
	}, nil
}
