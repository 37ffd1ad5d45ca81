// Package kafka publishes domain events to a Kafka topic.
//
// Each event becomes one message: the key is the aggregate id, so all events of
// an order land on the same partition in the order they were raised, and the
// value is the event's JSON form. The event name is repeated in a header so
// consumers can route without decoding the payload.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"fooddelivery/internal/pkg/ddd"

	kafkago "github.com/segmentio/kafka-go"
)

const (
	EventNameHeader = "event-name"
	EventIDHeader   = "event-id"
)

// MessageWriter is the part of *kafkago.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

type EventPublisher struct {
	writer MessageWriter
	logger *slog.Logger
}

// NewWriter returns a writer for topic that hashes keys onto partitions.
func NewWriter(host string, topic string) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:                   kafkago.TCP(host),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

func NewEventPublisher(writer MessageWriter, logger *slog.Logger) *EventPublisher {
	return &EventPublisher{
		writer: writer,
		logger: logger.With("component", "kafka-publisher"),
	}
}

// Publish writes all events in one batch. Either the whole batch is
// acknowledged or an error is returned.
func (p *EventPublisher) Publish(ctx context.Context, events ...ddd.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafkago.Message, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("marshal %s event: %w", event.EventName(), err)
		}

		msgs = append(msgs, kafkago.Message{
			Key:   []byte(event.AggregateID()),
			Value: payload,
			Time:  event.OccurredAt(),
			Headers: []kafkago.Header{
				{Key: EventNameHeader, Value: []byte(event.EventName())},
				{Key: EventIDHeader, Value: []byte(event.EventID().String())},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d events: %w", len(msgs), err)
	}

	p.logger.DebugContext(ctx, "published domain events", "count", len(msgs))
	return nil
}

func (p *EventPublisher) Close() error {
	return p.writer.Close()
}
