package queries

import (
	"context"

	"fooddelivery/internal/core/ports"
)

type ListCategoriesQueryHandler struct {
	catalogRepo ports.CatalogRepository
}

func NewListCategoriesQueryHandler(catalogRepo ports.CatalogRepository) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{catalogRepo: catalogRepo}
}

func (h ListCategoriesQueryHandler) Handle(ctx context.Context, query ListCategoriesQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	categories, err := h.catalogRepo.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name())
	}
	return names, nil
}
