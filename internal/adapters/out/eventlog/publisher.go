// Package eventlog is the publisher used when no broker is configured: domain
// events are written to the structured log.
package eventlog

import (
	"context"
	"encoding/json"
	"log/slog"

	"fooddelivery/internal/pkg/ddd"
)

type Publisher struct {
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger.With("component", "event-log")}
}

func (p *Publisher) Publish(ctx context.Context, events ...ddd.DomainEvent) error {
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		p.logger.InfoContext(ctx, "domain event",
			"event", event.EventName(),
			"eventId", event.EventID().String(),
			"aggregateId", event.AggregateID(),
			"payload", json.RawMessage(payload),
		)
	}
	return nil
}
