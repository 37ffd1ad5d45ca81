package catalog

import (
	"errors"
	"fmt"
	"math"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")

// Dish is sold by one restaurant at a fixed price. Its name is unique across the
// whole catalog, not only within the restaurant.
type Dish struct { //nolint:recvcheck //using for validation
	name       string
	restaurant string
	price      float64
	guard      guard.ConstructorGuard
}

func NewDish(name string, restaurant string, price float64) (Dish, error) {
	d := Dish{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setName(name),
		d.setRestaurant(restaurant),
		d.setPrice(price),
	); err != nil {
		return Dish{}, err
	}

	return d, nil
}

func (d Dish) Validate() error {
	return d.guard.Validate(ErrDishIsNotConstructed)
}

func (d Dish) Name() string {
	return d.name
}

func (d Dish) Restaurant() string {
	return d.restaurant
}

func (d Dish) Price() float64 {
	return d.price
}

// PricedWithin reports whether the price lies in [minPrice, maxPrice], both limits included.
func (d Dish) PricedWithin(minPrice float64, maxPrice float64) bool {
	return d.price >= minPrice && d.price <= maxPrice
}

func (d *Dish) setName(name string) error {
	if err := kernel.ValidateName("dish name", name); err != nil {
		return err
	}
	d.name = name
	return nil
}

func (d *Dish) setRestaurant(restaurant string) error {
	if err := kernel.ValidateName("restaurant name", restaurant); err != nil {
		return err
	}
	d.restaurant = restaurant
	return nil
}

func (d *Dish) setPrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%v is not a non-negative amount", price))
	}
	d.price = price
	return nil
}
