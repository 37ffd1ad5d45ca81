package queries

import (
	"errors"
	"fmt"
	"math"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetDishesByPriceRangeQueryIsNotConstructed = errors.New(
	"GetDishesByPriceRangeQuery must be created via NewGetDishesByPriceRangeQuery constructor",
)

// GetDishesByPriceRangeQuery finds dishes priced within [minPrice, maxPrice].
// A range with minPrice above maxPrice is valid and matches nothing.
type GetDishesByPriceRangeQuery struct { //nolint:recvcheck //using for validation
	minPrice float64
	maxPrice float64

	guard guard.ConstructorGuard
}

func NewGetDishesByPriceRangeQuery(minPrice float64, maxPrice float64) (GetDishesByPriceRangeQuery, error) {
	q := GetDishesByPriceRangeQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setMinPrice(minPrice),
		q.setMaxPrice(maxPrice),
	); err != nil {
		return GetDishesByPriceRangeQuery{}, err
	}

	return q, nil
}

func (q GetDishesByPriceRangeQuery) Validate() error {
	return q.guard.Validate(ErrGetDishesByPriceRangeQueryIsNotConstructed)
}

func (q GetDishesByPriceRangeQuery) MinPrice() float64 {
	return q.minPrice
}

func (q GetDishesByPriceRangeQuery) MaxPrice() float64 {
	return q.maxPrice
}

func (q *GetDishesByPriceRangeQuery) setMinPrice(price float64) error {
	if math.IsNaN(price) {
		return errs.NewValueIsInvalidErrorWithCause("min price", fmt.Errorf("%v is not a number", price))
	}
	q.minPrice = price
	return nil
}

func (q *GetDishesByPriceRangeQuery) setMaxPrice(price float64) error {
	if math.IsNaN(price) {
		return errs.NewValueIsInvalidErrorWithCause("max price", fmt.Errorf("%v is not a number", price))
	}
	q.maxPrice = price
	return nil
}
