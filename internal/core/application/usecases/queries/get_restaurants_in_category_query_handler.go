package queries

import (
	"context"
	"slices"

	"fooddelivery/internal/core/ports"
)

type GetRestaurantsInCategoryQueryHandler struct {
	catalogRepo ports.CatalogRepository
}

func NewGetRestaurantsInCategoryQueryHandler(catalogRepo ports.CatalogRepository) GetRestaurantsInCategoryQueryHandler {
	return GetRestaurantsInCategoryQueryHandler{catalogRepo: catalogRepo}
}

// Handle returns restaurant names sorted ascending.
func (h GetRestaurantsInCategoryQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantsInCategoryQuery,
) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	restaurants, err := h.catalogRepo.GetRestaurantsByCategory(ctx, query.Category())
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		if r.BelongsTo(query.Category()) {
			names = append(names, r.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}
