package queries

import (
	"context"

	"fooddelivery/internal/core/ports"
)

type GetDishesByCategoryQueryHandler struct {
	catalogRepo ports.CatalogRepository
}

func NewGetDishesByCategoryQueryHandler(catalogRepo ports.CatalogRepository) GetDishesByCategoryQueryHandler {
	return GetDishesByCategoryQueryHandler{catalogRepo: catalogRepo}
}

// Handle returns dish names in insertion order.
func (h GetDishesByCategoryQueryHandler) Handle(
	ctx context.Context,
	query GetDishesByCategoryQuery,
) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	restaurants, err := h.catalogRepo.GetRestaurantsByCategory(ctx, query.Category())
	if err != nil {
		return nil, err
	}
	if len(restaurants) == 0 {
		return []string{}, nil
	}

	inCategory := make(map[string]struct{}, len(restaurants))
	for _, r := range restaurants {
		if r.BelongsTo(query.Category()) {
			inCategory[r.Name()] = struct{}{}
		}
	}

	dishes, err := h.catalogRepo.GetAllDishes(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0)
	for _, d := range dishes {
		if _, ok := inCategory[d.Restaurant()]; ok {
			names = append(names, d.Name())
		}
	}
	return names, nil
}
