package order

import (
	"fooddelivery/internal/pkg/ddd"
)

const (
	CreatedEventName  = "order.created"
	AssignedEventName = "order.assigned"
)

// CreatedEvent is raised when an order enters the order book.
type CreatedEvent struct {
	ddd.BaseEvent
	OrderID          ID     `json:"orderId"`
	Customer         string `json:"customer"`
	Restaurant       string `json:"restaurant"`
	DeliveryTime     int    `json:"deliveryTime"`
	DeliveryDistance int    `json:"deliveryDistance"`
}

// AssignedEvent is raised when a scheduling call claims an order.
type AssignedEvent struct {
	ddd.BaseEvent
	OrderID      ID  `json:"orderId"`
	DeliveryTime int `json:"deliveryTime"`
}

func newCreatedEvent(o *Order) CreatedEvent {
	return CreatedEvent{
		BaseEvent:        ddd.NewBaseEvent(CreatedEventName, o.id.String()),
		OrderID:          o.id,
		Customer:         o.customer,
		Restaurant:       o.restaurant,
		DeliveryTime:     o.deliveryTime,
		DeliveryDistance: o.deliveryDistance,
	}
}

func newAssignedEvent(o *Order) AssignedEvent {
	return AssignedEvent{
		BaseEvent:    ddd.NewBaseEvent(AssignedEventName, o.id.String()),
		OrderID:      o.id,
		DeliveryTime: o.deliveryTime,
	}
}
