package catalog

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// Category is a named grouping restaurants belong to.
type Category struct {
	name  string
	guard guard.ConstructorGuard
}

func NewCategory(name string) (Category, error) {
	if err := kernel.ValidateName("category name", name); err != nil {
		return Category{}, err
	}

	return Category{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c Category) Validate() error {
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

func (c Category) Name() string {
	return c.name
}
