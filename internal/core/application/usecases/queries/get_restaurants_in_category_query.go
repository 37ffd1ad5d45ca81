package queries

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrGetRestaurantsInCategoryQueryIsNotConstructed = errors.New(
	"GetRestaurantsInCategoryQuery must be created via NewGetRestaurantsInCategoryQuery constructor",
)

// GetRestaurantsInCategoryQuery lists the restaurants registered under one
// category. An unknown category is not an error; it just has no restaurants.
type GetRestaurantsInCategoryQuery struct {
	category string

	guard guard.ConstructorGuard
}

func NewGetRestaurantsInCategoryQuery(category string) GetRestaurantsInCategoryQuery {
	return GetRestaurantsInCategoryQuery{
		category: category,
		guard:    guard.NewConstructorGuard(),
	}
}

func (q GetRestaurantsInCategoryQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantsInCategoryQueryIsNotConstructed)
}

func (q GetRestaurantsInCategoryQuery) Category() string {
	return q.category
}
