package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrAddRatingCommandIsNotConstructed = errors.New(
	"AddRatingCommand must be created via NewAddRatingCommand constructor",
)

// AddRatingCommand submits a score for a restaurant. The value is not checked
// here: out-of-range scores are dropped by the handler, not rejected.
type AddRatingCommand struct { //nolint:recvcheck //using for validation
	restaurant string
	value      int

	guard guard.ConstructorGuard
}

func NewAddRatingCommand(restaurant string, value int) (AddRatingCommand, error) {
	cmd := AddRatingCommand{
		value: value,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRestaurant(restaurant); err != nil {
		return AddRatingCommand{}, err
	}

	return cmd, nil
}

func (c AddRatingCommand) Validate() error {
	return c.guard.Validate(ErrAddRatingCommandIsNotConstructed)
}

func (c AddRatingCommand) Restaurant() string {
	return c.restaurant
}

func (c AddRatingCommand) Value() int {
	return c.value
}

func (c *AddRatingCommand) setRestaurant(restaurant string) error {
	if err := kernel.ValidateName("restaurant name", restaurant); err != nil {
		return err
	}

	c.restaurant = restaurant
	return nil
}
