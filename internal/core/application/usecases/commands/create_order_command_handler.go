package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// CreateOrderCommandHandler appends a pending order to the order book and
// returns its id. Dish and restaurant names are not checked against the catalog.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (order.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	id, err := orderRepo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	o, err := order.NewOrder(
		id,
		cmd.Lines(),
		cmd.Customer(),
		cmd.Restaurant(),
		cmd.DeliveryTime(),
		cmd.DeliveryDistance(),
	)
	if err != nil {
		return 0, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return o.ID(), nil
}
