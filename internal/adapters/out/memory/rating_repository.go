package memory

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rating"
)

type RatingRepository struct {
	access accessor
}

func newRatingRepository(access accessor) *RatingRepository {
	return &RatingRepository{access: access}
}

func (r *RatingRepository) Add(ctx context.Context, aggregate *rating.Rating) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	rec := ratingRecord{
		id:         aggregate.ID().Bytes(),
		restaurant: aggregate.Restaurant(),
		value:      aggregate.Value(),
	}
	if err := r.access.write(ctx, func(st *state) error {
		st.ratings = append(st.ratings, rec)
		return nil
	}); err != nil {
		return err
	}

	r.access.track(ctx, aggregate)
	return nil
}

func (r *RatingRepository) GetAll(ctx context.Context) ([]*rating.Rating, error) {
	var ratings []*rating.Rating
	err := r.access.read(ctx, func(st *state) error {
		ratings = make([]*rating.Rating, 0, len(st.ratings))
		for _, rec := range st.ratings {
			id, err := kernel.UUIDFromBytes(rec.id[:])
			if err != nil {
				return err
			}
			rt, err := rating.RestoreRating(id, rec.restaurant, rec.value)
			if err != nil {
				return err
			}
			ratings = append(ratings, rt)
		}
		return nil
	})
	return ratings, err
}
