package queries

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrGetPendingOrderCountQueryIsNotConstructed = errors.New(
	"GetPendingOrderCountQuery must be created via NewGetPendingOrderCountQuery constructor",
)

// GetPendingOrderCountQuery counts orders not yet claimed by a delivery run.
type GetPendingOrderCountQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPendingOrderCountQuery() GetPendingOrderCountQuery {
	return GetPendingOrderCountQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPendingOrderCountQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrderCountQueryIsNotConstructed)
}
