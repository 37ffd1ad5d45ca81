package queries

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrGetRankedRestaurantsQueryIsNotConstructed = errors.New(
	"GetRankedRestaurantsQuery must be created via NewGetRankedRestaurantsQuery constructor",
)

// GetRankedRestaurantsQuery ranks rated restaurants by average score.
type GetRankedRestaurantsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetRankedRestaurantsQuery() GetRankedRestaurantsQuery {
	return GetRankedRestaurantsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetRankedRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetRankedRestaurantsQueryIsNotConstructed)
}

// GetRankedRestaurantsQueryResponse is one ranking row.
type GetRankedRestaurantsQueryResponse struct {
	Restaurant string
	Average    float64
	Count      int
}
