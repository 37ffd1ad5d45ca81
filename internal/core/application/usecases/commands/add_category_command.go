package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrAddCategoryCommandIsNotConstructed = errors.New(
	"AddCategoryCommand must be created via NewAddCategoryCommand constructor",
)

// AddCategoryCommand registers a new catalog category.
type AddCategoryCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

func NewAddCategoryCommand(name string) (AddCategoryCommand, error) {
	cmd := AddCategoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setName(name); err != nil {
		return AddCategoryCommand{}, err
	}

	return cmd, nil
}

func (c AddCategoryCommand) Validate() error {
	return c.guard.Validate(ErrAddCategoryCommandIsNotConstructed)
}

func (c AddCategoryCommand) Name() string {
	return c.name
}

func (c *AddCategoryCommand) setName(name string) error {
	if err := kernel.ValidateName("category name", name); err != nil {
		return err
	}

	c.name = name
	return nil
}
