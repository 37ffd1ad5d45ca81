package queries

import (
	"context"
	"slices"

	"fooddelivery/internal/core/ports"
)

type GetDishesForRestaurantQueryHandler struct {
	catalogRepo ports.CatalogRepository
}

func NewGetDishesForRestaurantQueryHandler(catalogRepo ports.CatalogRepository) GetDishesForRestaurantQueryHandler {
	return GetDishesForRestaurantQueryHandler{catalogRepo: catalogRepo}
}

// Handle returns dish names sorted ascending, or an empty slice for a
// restaurant without dishes.
func (h GetDishesForRestaurantQueryHandler) Handle(
	ctx context.Context,
	query GetDishesForRestaurantQuery,
) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dishes, err := h.catalogRepo.GetDishesByRestaurant(ctx, query.Restaurant())
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(dishes))
	for _, d := range dishes {
		names = append(names, d.Name())
	}
	slices.Sort(names)
	return names, nil
}
