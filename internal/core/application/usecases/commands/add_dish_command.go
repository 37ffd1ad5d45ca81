package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrAddDishCommandIsNotConstructed = errors.New(
	"AddDishCommand must be created via NewAddDishCommand constructor",
)

// AddDishCommand adds a dish to a restaurant's menu. The price is checked by
// the catalog.Dish constructor.
type AddDishCommand struct { //nolint:recvcheck //using for validation
	name       string
	restaurant string
	price      float64

	guard guard.ConstructorGuard
}

func NewAddDishCommand(name string, restaurant string, price float64) (AddDishCommand, error) {
	cmd := AddDishCommand{
		price: price,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setRestaurant(restaurant),
	); err != nil {
		return AddDishCommand{}, err
	}

	return cmd, nil
}

func (c AddDishCommand) Validate() error {
	return c.guard.Validate(ErrAddDishCommandIsNotConstructed)
}

func (c AddDishCommand) Name() string {
	return c.name
}

func (c AddDishCommand) Restaurant() string {
	return c.restaurant
}

func (c AddDishCommand) Price() float64 {
	return c.price
}

func (c *AddDishCommand) setName(name string) error {
	if err := kernel.ValidateName("dish name", name); err != nil {
		return err
	}

	c.name = name
	return nil
}

func (c *AddDishCommand) setRestaurant(restaurant string) error {
	if err := kernel.ValidateName("restaurant name", restaurant); err != nil {
		return err
	}

	c.restaurant = restaurant
	return nil
}
