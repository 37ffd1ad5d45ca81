package catalog

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrDuplicateCategory is returned when a category name is registered twice.
	ErrDuplicateCategory = fmt.Errorf("duplicate category: %w", errs.ErrObjectAlreadyExists)

	// ErrUnknownCategory is returned when a restaurant references a category that was never added.
	ErrUnknownCategory = fmt.Errorf("unknown category: %w", errs.ErrObjectNotFound)

	// ErrDuplicateDish is returned when a dish name already exists under any restaurant.
	ErrDuplicateDish = fmt.Errorf("duplicate dish: %w", errs.ErrObjectAlreadyExists)
)
