package queries

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// GetDishesByPriceRangeQueryHandler groups matching dishes by restaurant.
//
// Example:
//
//	query, _ := NewGetDishesByPriceRangeQuery(5, 10)
//	byRestaurant, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for restaurant, dishes := range byRestaurant {
//	    fmt.Printf("%s: %v\n", restaurant, dishes)
//	}
type GetDishesByPriceRangeQueryHandler struct {
	catalogRepo ports.CatalogRepository
}

func NewGetDishesByPriceRangeQueryHandler(catalogRepo ports.CatalogRepository) GetDishesByPriceRangeQueryHandler {
	return GetDishesByPriceRangeQueryHandler{catalogRepo: catalogRepo}
}

// Handle builds a fresh map on every call. Dish names keep their insertion
// order; restaurants without a matching dish are left out.
func (h GetDishesByPriceRangeQueryHandler) Handle(
	ctx context.Context,
	query GetDishesByPriceRangeQuery,
) (map[string][]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dishes, err := h.catalogRepo.GetAllDishes(ctx)
	if err != nil {
		return nil, err
	}

	byRestaurant := make(map[string][]string)
	for _, d := range dishes {
		if !d.PricedWithin(query.MinPrice(), query.MaxPrice()) {
			continue
		}
		byRestaurant[d.Restaurant()] = append(byRestaurant[d.Restaurant()], d.Name())
	}
	return byRestaurant, nil
}
