package queries

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrGetDishesByCategoryQueryIsNotConstructed = errors.New(
	"GetDishesByCategoryQuery must be created via NewGetDishesByCategoryQuery constructor",
)

// GetDishesByCategoryQuery lists every dish sold by a restaurant of one category.
type GetDishesByCategoryQuery struct {
	category string

	guard guard.ConstructorGuard
}

func NewGetDishesByCategoryQuery(category string) GetDishesByCategoryQuery {
	return GetDishesByCategoryQuery{
		category: category,
		guard:    guard.NewConstructorGuard(),
	}
}

func (q GetDishesByCategoryQuery) Validate() error {
	return q.guard.Validate(ErrGetDishesByCategoryQueryIsNotConstructed)
}

func (q GetDishesByCategoryQuery) Category() string {
	return q.category
}
