// Package ddd holds the building blocks shared by aggregates: domain events and the
// recorder aggregates embed to collect them until a unit of work publishes them.
package ddd

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is an immutable fact about an aggregate.
type DomainEvent interface {
	EventID() uuid.UUID
	EventName() string
	AggregateID() string
	OccurredAt() time.Time
}

// AggregateRoot is implemented by aggregates that record domain events.
type AggregateRoot interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseEvent carries the envelope fields common to every event. Concrete events embed it
// so the envelope is flattened into their JSON representation.
type BaseEvent struct {
	ID        uuid.UUID `json:"eventId"`
	Name      string    `json:"eventName"`
	Aggregate string    `json:"aggregateId"`
	At        time.Time `json:"occurredAt"`
}

func NewBaseEvent(name string, aggregateID string) BaseEvent {
	return BaseEvent{
		ID:        uuid.New(),
		Name:      name,
		Aggregate: aggregateID,
		At:        time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() uuid.UUID {
	return e.ID
}

func (e BaseEvent) EventName() string {
	return e.Name
}

func (e BaseEvent) AggregateID() string {
	return e.Aggregate
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.At
}

// EventRecorder collects events raised by an aggregate. Embed it by value.
type EventRecorder struct {
	events []DomainEvent
}

func (r *EventRecorder) RaiseDomainEvent(event DomainEvent) {
	r.events = append(r.events, event)
}

// DomainEvents returns a copy of the recorded events in the order they were raised.
func (r *EventRecorder) DomainEvents() []DomainEvent {
	events := make([]DomainEvent, len(r.events))
	copy(events, r.events)
	return events
}

func (r *EventRecorder) ClearDomainEvents() {
	r.events = nil
}
