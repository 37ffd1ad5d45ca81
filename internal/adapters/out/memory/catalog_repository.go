package memory

import (
	"context"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/ddd"
	"fooddelivery/internal/pkg/errs"
)

// accessor is implemented by UnitOfWork: it decides whether repositories see
// the committed state or a transaction's draft.
type accessor interface {
	read(ctx context.Context, fn func(st *state) error) error
	write(ctx context.Context, fn func(st *state) error) error
	track(ctx context.Context, aggregate ddd.AggregateRoot)
	nextOrderID() order.ID
}

type CatalogRepository struct {
	access accessor
}

func newCatalogRepository(access accessor) *CatalogRepository {
	return &CatalogRepository{access: access}
}

func (r *CatalogRepository) AddCategory(ctx context.Context, category catalog.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	return r.access.write(ctx, func(st *state) error {
		if st.hasCategory(category.Name()) {
			return errs.NewObjectAlreadyExistsError("category", category.Name())
		}
		st.categories = append(st.categories, categoryRecord{name: category.Name()})
		return nil
	})
}

func (r *CatalogRepository) CategoryExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.access.read(ctx, func(st *state) error {
		exists = st.hasCategory(name)
		return nil
	})
	return exists, err
}

func (r *CatalogRepository) GetAllCategories(ctx context.Context) ([]catalog.Category, error) {
	var categories []catalog.Category
	err := r.access.read(ctx, func(st *state) error {
		categories = make([]catalog.Category, 0, len(st.categories))
		for _, rec := range st.categories {
			c, err := catalog.NewCategory(rec.name)
			if err != nil {
				return err
			}
			categories = append(categories, c)
		}
		return nil
	})
	return categories, err
}

// SaveRestaurant overwrites an existing registration in place, so the
// restaurant keeps its original position in listings.
func (r *CatalogRepository) SaveRestaurant(ctx context.Context, restaurant catalog.Restaurant) error {
	if err := restaurant.Validate(); err != nil {
		return err
	}

	rec := restaurantRecord{name: restaurant.Name(), category: restaurant.Category()}
	return r.access.write(ctx, func(st *state) error {
		if i, ok := st.restaurantIndex[rec.name]; ok {
			st.restaurants[i] = rec
			return nil
		}
		st.restaurantIndex[rec.name] = len(st.restaurants)
		st.restaurants = append(st.restaurants, rec)
		return nil
	})
}

func (r *CatalogRepository) GetAllRestaurants(ctx context.Context) ([]catalog.Restaurant, error) {
	return r.restaurants(ctx, func(restaurantRecord) bool { return true })
}

func (r *CatalogRepository) GetRestaurantsByCategory(
	ctx context.Context,
	category string,
) ([]catalog.Restaurant, error) {
	return r.restaurants(ctx, func(rec restaurantRecord) bool { return rec.category == category })
}

func (r *CatalogRepository) restaurants(
	ctx context.Context,
	keep func(rec restaurantRecord) bool,
) ([]catalog.Restaurant, error) {
	var restaurants []catalog.Restaurant
	err := r.access.read(ctx, func(st *state) error {
		restaurants = make([]catalog.Restaurant, 0)
		for _, rec := range st.restaurants {
			if !keep(rec) {
				continue
			}
			restaurant, err := catalog.NewRestaurant(rec.name, rec.category)
			if err != nil {
				return err
			}
			restaurants = append(restaurants, restaurant)
		}
		return nil
	})
	return restaurants, err
}

func (r *CatalogRepository) AddDish(ctx context.Context, dish catalog.Dish) error {
	if err := dish.Validate(); err != nil {
		return err
	}

	return r.access.write(ctx, func(st *state) error {
		if st.hasDish(dish.Name()) {
			return errs.NewObjectAlreadyExistsError("dish", dish.Name())
		}
		st.dishes = append(st.dishes, dishRecord{
			name:       dish.Name(),
			restaurant: dish.Restaurant(),
			price:      dish.Price(),
		})
		return nil
	})
}

func (r *CatalogRepository) DishExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.access.read(ctx, func(st *state) error {
		exists = st.hasDish(name)
		return nil
	})
	return exists, err
}

func (r *CatalogRepository) GetAllDishes(ctx context.Context) ([]catalog.Dish, error) {
	return r.dishes(ctx, func(dishRecord) bool { return true })
}

func (r *CatalogRepository) GetDishesByRestaurant(ctx context.Context, restaurant string) ([]catalog.Dish, error) {
	return r.dishes(ctx, func(rec dishRecord) bool { return rec.restaurant == restaurant })
}

func (r *CatalogRepository) dishes(ctx context.Context, keep func(rec dishRecord) bool) ([]catalog.Dish, error) {
	var dishes []catalog.Dish
	err := r.access.read(ctx, func(st *state) error {
		dishes = make([]catalog.Dish, 0)
		for _, rec := range st.dishes {
			if !keep(rec) {
				continue
			}
			dish, err := catalog.NewDish(rec.name, rec.restaurant, rec.price)
			if err != nil {
				return err
			}
			dishes = append(dishes, dish)
		}
		return nil
	})
	return dishes, err
}
