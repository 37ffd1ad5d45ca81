package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/rating"
)

// RatingRepository is an append-only store of accepted ratings.
type RatingRepository interface {
	Add(ctx context.Context, aggregate *rating.Rating) error

	GetAll(ctx context.Context) ([]*rating.Rating, error)
}
