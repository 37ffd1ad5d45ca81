package commands

import (
	"context"
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/pkg/errs"
)

// AddDishCommandHandler adds a dish. Dish names are unique across all
// restaurants; the restaurant itself is not looked up.
type AddDishCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewAddDishCommandHandler(uowFactory CatalogUoWFactory) AddDishCommandHandler {
	return AddDishCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AddDishCommandHandler) Handle(ctx context.Context, cmd AddDishCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	dish, err := catalog.NewDish(cmd.Name(), cmd.Restaurant(), cmd.Price())
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

	exists, err := catalogRepo.DishExists(ctx, dish.Name())
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", catalog.ErrDuplicateDish, dish.Name())
	}

	if err = catalogRepo.AddDish(ctx, dish); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return fmt.Errorf("%w: %s", catalog.ErrDuplicateDish, dish.Name())
		}
		return err
	}

	return uow.Commit(ctx)
}
