package catalog

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is keyed by name and belongs to one category.
type Restaurant struct { //nolint:recvcheck //using for validation
	name     string
	category string
	guard    guard.ConstructorGuard
}

// NewRestaurant validates the fields of a restaurant. Whether category exists is
// checked by the caller against the catalog.
func NewRestaurant(name string, category string) (Restaurant, error) {
	r := Restaurant{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setName(name),
		r.setCategory(category),
	); err != nil {
		return Restaurant{}, err
	}

	return r, nil
}

func (r Restaurant) Validate() error {
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

func (r Restaurant) Name() string {
	return r.name
}

func (r Restaurant) Category() string {
	return r.category
}

// BelongsTo reports whether the restaurant is registered under exactly this category.
func (r Restaurant) BelongsTo(category string) bool {
	return r.category == category
}

func (r *Restaurant) setName(name string) error {
	if err := kernel.ValidateName("restaurant name", name); err != nil {
		return err
	}
	r.name = name
	return nil
}

func (r *Restaurant) setCategory(category string) error {
	if err := kernel.ValidateName("category name", category); err != nil {
		return err
	}
	r.category = category
	return nil
}
