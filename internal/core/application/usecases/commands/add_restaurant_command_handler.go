package commands

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/catalog"
)

// AddRestaurantCommandHandler registers a restaurant. The category must have
// been added before; re-registering a restaurant name overwrites it.
type AddRestaurantCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewAddRestaurantCommandHandler(uowFactory CatalogUoWFactory) AddRestaurantCommandHandler {
	return AddRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AddRestaurantCommandHandler) Handle(ctx context.Context, cmd AddRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	restaurant, err := catalog.NewRestaurant(cmd.Name(), cmd.Category())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogRepo := uow.CatalogRepository()

	known, err := catalogRepo.CategoryExists(ctx, restaurant.Category())
	if err != nil {
		return err
	}
	if !known {
		return fmt.Errorf("%w: %s", catalog.ErrUnknownCategory, restaurant.Category())
	}

	if err = catalogRepo.SaveRestaurant(ctx, restaurant); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
