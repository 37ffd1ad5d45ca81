package order

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/ddd"
	"fooddelivery/internal/pkg/errs"
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// ID identifies an order. Ids are positive and strictly increasing in creation order.
type ID int64

func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

// String renders the id the way it appears in event keys and logs.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Order is the aggregate root of the order book.
//
// Everything but the status is fixed at creation. The delivery hour is kept as
// given; the accepted window is enforced where orders are placed.
type Order struct {
	id               ID
	lines            []Line
	customer         string
	restaurant       string
	deliveryTime     int
	deliveryDistance int
	status           Status
	isConstructed    bool

	ddd.EventRecorder
}

// NewOrder builds a pending order and records an order.created event.
func NewOrder(
	id ID,
	lines []Line,
	customer string,
	restaurant string,
	deliveryTime int,
	deliveryDistance int,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setLines(lines),
		o.setCustomer(customer),
		o.setRestaurant(restaurant),
		o.setDeliveryDistance(deliveryDistance),
	); err != nil {
		return nil, err
	}
	o.deliveryTime = deliveryTime

	o.RaiseDomainEvent(newCreatedEvent(o))
	return o, nil
}

// RestoreOrder rebuilds an order read from storage. No events are recorded.
func RestoreOrder(
	id ID,
	lines []Line,
	customer string,
	restaurant string,
	deliveryTime int,
	deliveryDistance int,
	status Status,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setLines(lines),
		o.setCustomer(customer),
		o.setRestaurant(restaurant),
		o.setDeliveryDistance(deliveryDistance),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.deliveryTime = deliveryTime
	o.status = status

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

func (o *Order) ID() ID {
	return o.id
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	return slices.Clone(o.lines)
}

func (o *Order) Customer() string {
	return o.customer
}

func (o *Order) Restaurant() string {
	return o.restaurant
}

func (o *Order) DeliveryTime() int {
	return o.deliveryTime
}

func (o *Order) DeliveryDistance() int {
	return o.deliveryDistance
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) IsPending() bool {
	return o.status == Pending
}

// MatchesDelivery reports whether a pending order can ride on a delivery
// leaving at hour and reaching at most maxDistance.
func (o *Order) MatchesDelivery(hour int, maxDistance int) bool {
	return o.IsPending() && o.deliveryTime == hour && o.deliveryDistance <= maxDistance
}

// Assign claims the order for a delivery and records an order.assigned event.
func (o *Order) Assign() error {
	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.RaiseDomainEvent(newAssignedEvent(o))
	return nil
}

func (o *Order) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setLines(lines []Line) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = slices.Clone(lines)
	return nil
}

func (o *Order) setCustomer(customer string) error {
	if err := kernel.ValidateName("customer", customer); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setRestaurant(restaurant string) error {
	if err := kernel.ValidateName("restaurant", restaurant); err != nil {
		return err
	}
	o.restaurant = restaurant
	return nil
}

func (o *Order) setDeliveryDistance(distance int) error {
	if distance < 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery distance is invalid", fmt.Errorf("%d is negative", distance))
	}
	o.deliveryDistance = distance
	return nil
}
