package ports

import (
	"context"

	"fooddelivery/internal/pkg/ddd"
)

// EventPublisher delivers committed domain events to the outside world.
type EventPublisher interface {
	Publish(ctx context.Context, events ...ddd.DomainEvent) error
}
