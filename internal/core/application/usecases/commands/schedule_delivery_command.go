package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrScheduleDeliveryCommandIsNotConstructed = errors.New(
	"ScheduleDeliveryCommand must be created via NewScheduleDeliveryCommand constructor",
)

// ScheduleDeliveryCommand asks for up to maxOrders pending orders due at
// deliveryTime within maxDistance. Any values are accepted; constraints that
// nothing satisfies just produce an empty result.
type ScheduleDeliveryCommand struct {
	deliveryTime int
	maxDistance  int
	maxOrders    int

	guard guard.ConstructorGuard
}

func NewScheduleDeliveryCommand(deliveryTime int, maxDistance int, maxOrders int) ScheduleDeliveryCommand {
	return ScheduleDeliveryCommand{
		deliveryTime: deliveryTime,
		maxDistance:  maxDistance,
		maxOrders:    maxOrders,
		guard:        guard.NewConstructorGuard(),
	}
}

func (c ScheduleDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrScheduleDeliveryCommandIsNotConstructed)
}

func (c ScheduleDeliveryCommand) DeliveryTime() int {
	return c.deliveryTime
}

func (c ScheduleDeliveryCommand) MaxDistance() int {
	return c.maxDistance
}

func (c ScheduleDeliveryCommand) MaxOrders() int {
	return c.maxOrders
}
