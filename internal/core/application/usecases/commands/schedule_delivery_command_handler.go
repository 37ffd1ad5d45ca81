package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
)

// ScheduleDeliveryCommandHandler claims pending orders for one delivery run.
//
// Reading the pending orders, selecting and assigning them happens in one unit
// of work, so two concurrent runs never claim the same order.
//
// Example:
//
//	cmd := NewScheduleDeliveryCommand(12, 5, 10)
//	ids, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	log.Printf("claimed %d orders", len(ids))
type ScheduleDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	scheduler  services.DeliveryScheduler
}

func NewScheduleDeliveryCommandHandler(uowFactory OrderUoWFactory) ScheduleDeliveryCommandHandler {
	return ScheduleDeliveryCommandHandler{
		uowFactory: uowFactory,
		scheduler:  services.NewDeliveryScheduler(),
	}
}

// Handle returns the claimed order ids in creation order. The result is empty,
// never nil, when nothing qualifies.
func (h ScheduleDeliveryCommandHandler) Handle(ctx context.Context, cmd ScheduleDeliveryCommand) ([]order.ID, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.MaxOrders() <= 0 {
		return []order.ID{}, nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	pending, err := orderRepo.GetAllPending(ctx)
	if err != nil {
		return nil, err
	}

	selected, err := h.scheduler.Schedule(pending, cmd.DeliveryTime(), cmd.MaxDistance(), cmd.MaxOrders())
	if err != nil {
		return nil, err
	}

	ids := make([]order.ID, 0, len(selected))
	for _, o := range selected {
		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
		ids = append(ids, o.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ids, nil
}
