package queries

import (
	"context"

	"fooddelivery/internal/core/ports"
)

type GetPendingOrderCountQueryHandler struct {
	orderRepo ports.OrderRepository
}

func NewGetPendingOrderCountQueryHandler(orderRepo ports.OrderRepository) GetPendingOrderCountQueryHandler {
	return GetPendingOrderCountQueryHandler{orderRepo: orderRepo}
}

func (h GetPendingOrderCountQueryHandler) Handle(ctx context.Context, query GetPendingOrderCountQuery) (int, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	return h.orderRepo.CountPending(ctx)
}
