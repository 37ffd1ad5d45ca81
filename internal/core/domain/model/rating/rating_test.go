package rating_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateValue(t *testing.T) {
	t.Run("should accept bounds inclusively", func(t *testing.T) {
		for v := rating.MinValue; v <= rating.MaxValue; v++ {
			require.NoError(t, rating.ValidateValue(v))
		}
	})

	t.Run("should reject values outside the bounds", func(t *testing.T) {
		for _, v := range []int{-1, 6, -100, 100} {
			err := rating.ValidateValue(v)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should describe the range", func(t *testing.T) {
		err := rating.ValidateValue(7)
		assert.Contains(t, err.Error(), "min value is 0")
		assert.Contains(t, err.Error(), "max value is 5")
	})
}

func TestNewRating(t *testing.T) {
	t.Run("should create rating with fresh id and event", func(t *testing.T) {
		r, err := rating.NewRating("Luigi's", 4)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		require.NoError(t, r.ID().Validate())
		assert.Equal(t, "Luigi's", r.Restaurant())
		assert.Equal(t, 4, r.Value())

		events := r.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, rating.AddedEventName, events[0].EventName())
		assert.Equal(t, r.ID().String(), events[0].AggregateID())
	})

	t.Run("should give every rating its own id", func(t *testing.T) {
		first, err := rating.NewRating("Luigi's", 4)
		require.NoError(t, err)
		second, err := rating.NewRating("Luigi's", 4)
		require.NoError(t, err)

		assert.False(t, first.ID().IsEqual(second.ID()))
	})

	t.Run("should reject out of range value", func(t *testing.T) {
		r, err := rating.NewRating("Luigi's", 6)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Nil(t, r)
	})

	t.Run("should reject blank restaurant", func(t *testing.T) {
		_, err := rating.NewRating("", 3)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreRating(t *testing.T) {
	t.Run("should restore without events", func(t *testing.T) {
		id := kernel.NewUUID()

		r, err := rating.RestoreRating(id, "Luigi's", 0)

		require.NoError(t, err)
		assert.True(t, r.ID().IsEqual(id))
		assert.Equal(t, 0, r.Value())
		assert.Empty(t, r.DomainEvents())
	})

	t.Run("should fail with zero id", func(t *testing.T) {
		_, err := rating.RestoreRating(kernel.UUID{}, "Luigi's", 3)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestRating_Validate(t *testing.T) {
	t.Run("should fail validation for nil rating", func(t *testing.T) {
		var r *rating.Rating
		require.ErrorIs(t, r.Validate(), rating.ErrRatingIsNotConstructed)
	})
}
