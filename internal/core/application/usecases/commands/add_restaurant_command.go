package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrAddRestaurantCommandIsNotConstructed = errors.New(
	"AddRestaurantCommand must be created via NewAddRestaurantCommand constructor",
)

// AddRestaurantCommand registers a restaurant under an existing category.
type AddRestaurantCommand struct { //nolint:recvcheck //using for validation
	name     string
	category string

	guard guard.ConstructorGuard
}

func NewAddRestaurantCommand(name string, category string) (AddRestaurantCommand, error) {
	cmd := AddRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setCategory(category),
	); err != nil {
		return AddRestaurantCommand{}, err
	}

	return cmd, nil
}

func (c AddRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrAddRestaurantCommandIsNotConstructed)
}

func (c AddRestaurantCommand) Name() string {
	return c.name
}

func (c AddRestaurantCommand) Category() string {
	return c.category
}

func (c *AddRestaurantCommand) setName(name string) error {
	if err := kernel.ValidateName("restaurant name", name); err != nil {
		return err
	}

	c.name = name
	return nil
}

func (c *AddRestaurantCommand) setCategory(category string) error {
	if err := kernel.ValidateName("category name", category); err != nil {
		return err
	}

	c.category = category
	return nil
}
