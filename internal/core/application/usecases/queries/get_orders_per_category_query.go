package queries

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrdersPerCategoryQueryIsNotConstructed = errors.New(
	"GetOrdersPerCategoryQuery must be created via NewGetOrdersPerCategoryQuery constructor",
)

// GetOrdersPerCategoryQuery reports how many orders each category received.
type GetOrdersPerCategoryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrdersPerCategoryQuery() GetOrdersPerCategoryQuery {
	return GetOrdersPerCategoryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrdersPerCategoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersPerCategoryQueryIsNotConstructed)
}

type GetOrdersPerCategoryQueryResponse struct {
	Category string
	Orders   int
}
