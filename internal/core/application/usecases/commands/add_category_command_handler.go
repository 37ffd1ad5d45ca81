package commands

import (
	"context"
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/pkg/errs"
)

// AddCategoryCommandHandler appends a category to the catalog.
// Adding a name that already exists fails with catalog.ErrDuplicateCategory.
type AddCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewAddCategoryCommandHandler(uowFactory CatalogUoWFactory) AddCategoryCommandHandler {
	return AddCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AddCategoryCommandHandler) Handle(ctx context.Context, cmd AddCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	category, err := catalog.NewCategory(cmd.Name())
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

	exists, err := catalogRepo.CategoryExists(ctx, category.Name())
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", catalog.ErrDuplicateCategory, category.Name())
	}

	if err = catalogRepo.AddCategory(ctx, category); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return fmt.Errorf("%w: %s", catalog.ErrDuplicateCategory, category.Name())
		}
		return err
	}

	return uow.Commit(ctx)
}
