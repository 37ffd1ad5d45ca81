package commands

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

const (
	EarliestDeliveryHour = 8
	LatestDeliveryHour   = 23
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places an order. Dish names and quantities are paired by
// position. The delivery hour must lie within the service window
// [EarliestDeliveryHour, LatestDeliveryHour].
//
// Example:
//
//	cmd, err := NewCreateOrderCommand([]string{"Margherita"}, []int{1}, "Ann", "Luigi's", 12, 3)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	id, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	lines            []order.Line
	customer         string
	restaurant       string
	deliveryTime     int
	deliveryDistance int

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	dishNames []string,
	quantities []int,
	customer string,
	restaurant string,
	deliveryTime int,
	deliveryDistance int,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLines(dishNames, quantities),
		cmd.setCustomer(customer),
		cmd.setRestaurant(restaurant),
		cmd.setDeliveryTime(deliveryTime),
		cmd.setDeliveryDistance(deliveryDistance),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Lines() []order.Line {
	return c.lines
}

func (c CreateOrderCommand) Customer() string {
	return c.customer
}

func (c CreateOrderCommand) Restaurant() string {
	return c.restaurant
}

func (c CreateOrderCommand) DeliveryTime() int {
	return c.deliveryTime
}

func (c CreateOrderCommand) DeliveryDistance() int {
	return c.deliveryDistance
}

func (c *CreateOrderCommand) setLines(dishNames []string, quantities []int) error {
	lines, err := order.NewLines(dishNames, quantities)
	if err != nil {
		return err
	}

	c.lines = lines
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer string) error {
	if err := kernel.ValidateName("customer name", customer); err != nil {
		return err
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setRestaurant(restaurant string) error {
	if err := kernel.ValidateName("restaurant name", restaurant); err != nil {
		return err
	}

	c.restaurant = restaurant
	return nil
}

func (c *CreateOrderCommand) setDeliveryTime(deliveryTime int) error {
	if deliveryTime < EarliestDeliveryHour || deliveryTime > LatestDeliveryHour {
		return errs.NewValueIsOutOfRangeError("delivery time", deliveryTime, EarliestDeliveryHour, LatestDeliveryHour)
	}

	c.deliveryTime = deliveryTime
	return nil
}

func (c *CreateOrderCommand) setDeliveryDistance(deliveryDistance int) error {
	if deliveryDistance < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery distance is invalid",
			fmt.Errorf("%d is negative", deliveryDistance),
		)
	}

	c.deliveryDistance = deliveryDistance
	return nil
}
