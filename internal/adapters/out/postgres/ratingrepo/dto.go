// Package ratingrepo persists accepted ratings with GORM.
package ratingrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rating"

	"github.com/google/uuid"
)

type RatingDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Restaurant string    `gorm:"index;not null"`
	Value      int       `gorm:"type:smallint;not null"`
	CreatedAt  time.Time
}

func (RatingDTO) TableName() string {
	return "ratings"
}

func fromDomain(r *rating.Rating) RatingDTO {
	return RatingDTO{
		ID:         r.ID().Bytes(),
		Restaurant: r.Restaurant(),
		Value:      r.Value(),
	}
}

func toDomain(dto RatingDTO) (*rating.Rating, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return rating.RestoreRating(id, dto.Restaurant, dto.Value)
}
