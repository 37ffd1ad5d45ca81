package queries

import (
	"context"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// GetOrdersPerCategoryQueryHandler counts orders of every status through the
// category of the ordering restaurant. Every category is reported, in insertion
// order, even with zero orders.
type GetOrdersPerCategoryQueryHandler struct {
	catalogRepo ports.CatalogRepository
	orderRepo   ports.OrderRepository
	report      services.CategoryReport
}

func NewGetOrdersPerCategoryQueryHandler(
	catalogRepo ports.CatalogRepository,
	orderRepo ports.OrderRepository,
) GetOrdersPerCategoryQueryHandler {
	return GetOrdersPerCategoryQueryHandler{
		catalogRepo: catalogRepo,
		orderRepo:   orderRepo,
		report:      services.NewCategoryReport(),
	}
}

func (h GetOrdersPerCategoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersPerCategoryQuery,
) ([]GetOrdersPerCategoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	categories, err := h.catalogRepo.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}

	restaurants, err := h.catalogRepo.GetAllRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := h.orderRepo.CountByRestaurant(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := h.report.OrdersPerCategory(categories, restaurants, counts)
	if err != nil {
		return nil, err
	}

	response := make([]GetOrdersPerCategoryQueryResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, GetOrdersPerCategoryQueryResponse{
			Category: row.Category,
			Orders:   row.Orders,
		})
	}
	return response, nil
}
