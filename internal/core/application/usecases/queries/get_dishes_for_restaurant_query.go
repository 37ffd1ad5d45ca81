package queries

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrGetDishesForRestaurantQueryIsNotConstructed = errors.New(
	"GetDishesForRestaurantQuery must be created via NewGetDishesForRestaurantQuery constructor",
)

// GetDishesForRestaurantQuery lists one restaurant's menu.
type GetDishesForRestaurantQuery struct {
	restaurant string

	guard guard.ConstructorGuard
}

func NewGetDishesForRestaurantQuery(restaurant string) GetDishesForRestaurantQuery {
	return GetDishesForRestaurantQuery{
		restaurant: restaurant,
		guard:      guard.NewConstructorGuard(),
	}
}

func (q GetDishesForRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetDishesForRestaurantQueryIsNotConstructed)
}

func (q GetDishesForRestaurantQuery) Restaurant() string {
	return q.restaurant
}
