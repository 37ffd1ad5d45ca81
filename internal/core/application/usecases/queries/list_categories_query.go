// Package queries contains read-only use cases over the catalog, the order
// book and the ratings. Handlers never open a unit of work; they read through
// the repositories directly.
package queries

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrListCategoriesQueryIsNotConstructed = errors.New(
	"ListCategoriesQuery must be created via NewListCategoriesQuery constructor",
)

// ListCategoriesQuery lists category names in the order they were added.
type ListCategoriesQuery struct {
	guard guard.ConstructorGuard
}

func NewListCategoriesQuery() ListCategoriesQuery {
	return ListCategoriesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrListCategoriesQueryIsNotConstructed)
}
