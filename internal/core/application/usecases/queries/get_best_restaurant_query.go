package queries

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrGetBestRestaurantQueryIsNotConstructed = errors.New(
	"GetBestRestaurantQuery must be created via NewGetBestRestaurantQuery constructor",
)

// GetBestRestaurantQuery asks for the head of the ranking.
type GetBestRestaurantQuery struct {
	guard guard.ConstructorGuard
}

func NewGetBestRestaurantQuery() GetBestRestaurantQuery {
	return GetBestRestaurantQuery{guard: guard.NewConstructorGuard()}
}

func (q GetBestRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetBestRestaurantQueryIsNotConstructed)
}

// GetBestRestaurantQueryResponse has Found == false when nothing was rated yet.
type GetBestRestaurantQueryResponse struct {
	Found      bool
	Restaurant string
	Average    float64
}
