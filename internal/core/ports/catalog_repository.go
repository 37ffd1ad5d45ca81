// Package ports defines the contracts between the food-delivery core and its
// adapters: repositories, the unit of work, event publication and caching.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/catalog"
)

// CatalogRepository stores categories, restaurants and dishes.
// Listings come back in insertion order unless stated otherwise.
type CatalogRepository interface {
	// AddCategory stores a new category. The caller checks for duplicates first;
	// storage may still report errs.ErrObjectAlreadyExists on a race.
	AddCategory(ctx context.Context, category catalog.Category) error

	CategoryExists(ctx context.Context, name string) (bool, error)

	GetAllCategories(ctx context.Context) ([]catalog.Category, error)

	// SaveRestaurant inserts or overwrites the restaurant with the same name.
	SaveRestaurant(ctx context.Context, restaurant catalog.Restaurant) error

	GetAllRestaurants(ctx context.Context) ([]catalog.Restaurant, error)

	// GetRestaurantsByCategory returns the restaurants whose category equals category exactly.
	GetRestaurantsByCategory(ctx context.Context, category string) ([]catalog.Restaurant, error)

	AddDish(ctx context.Context, dish catalog.Dish) error

	DishExists(ctx context.Context, name string) (bool, error)

	GetAllDishes(ctx context.Context) ([]catalog.Dish, error)

	GetDishesByRestaurant(ctx context.Context, restaurant string) ([]catalog.Dish, error)
}
