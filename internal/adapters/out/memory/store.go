// Package memory keeps the whole food-delivery state in process memory.
//
// A Store holds the committed state behind a read-write mutex. Units of work
// take the write lock on Begin and work on a private copy that replaces the
// committed state on Commit, so write use cases are serialized and a failed one
// leaves no trace. Reads outside a unit of work take the read lock.
package memory

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/ddd"
)

type Store struct {
	mu        sync.RWMutex
	state     *state
	lastID    atomic.Int64
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewStore creates an empty store. publisher may be nil, in which case domain
// events are dropped.
func NewStore(publisher ports.EventPublisher, logger *slog.Logger) *Store {
	return &Store{
		state:     newState(),
		publisher: publisher,
		logger:    logger.With("component", "memory-store"),
	}
}

func (s *Store) read(_ context.Context, fn func(st *state) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.state)
}

// write applies fn to a copy of the state and keeps the copy only when fn succeeds.
func (s *Store) write(_ context.Context, fn func(st *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.state.clone()
	if err := fn(draft); err != nil {
		return err
	}
	s.state = draft
	return nil
}

func (s *Store) nextOrderID() order.ID {
	return order.ID(s.lastID.Add(1))
}

// publish hands the recorded events of committed aggregates to the publisher.
// Failures are logged; the state change they describe already happened.
func (s *Store) publish(ctx context.Context, aggregates []ddd.AggregateRoot) {
	var events []ddd.DomainEvent
	for _, aggregate := range aggregates {
		events = append(events, aggregate.DomainEvents()...)
		aggregate.ClearDomainEvents()
	}

	if s.publisher == nil || len(events) == 0 {
		return
	}

	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish domain events", "count", len(events), "error", err)
	}
}
