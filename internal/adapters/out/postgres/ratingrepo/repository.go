package ratingrepo

import (
	"context"

	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/pkg/ddd"

	"gorm.io/gorm"
)

// GormRatingRepository implements ports.RatingRepository using GORM.
type GormRatingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(ctx context.Context, aggregate ddd.AggregateRoot)
}

func NewGormRatingRepository(db *gorm.DB, tracker aggregateTracker) *GormRatingRepository {
	return &GormRatingRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormRatingRepository) Add(ctx context.Context, aggregate *rating.Rating) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(ctx, aggregate)
	return nil
}

func (r *GormRatingRepository) GetAll(ctx context.Context) ([]*rating.Rating, error) {
	var dtos []RatingDTO
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	ratings := make([]*rating.Rating, 0, len(dtos))
	for _, dto := range dtos {
		restored, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, restored)
	}

	return ratings, nil
}
