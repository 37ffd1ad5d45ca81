package commands_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestNewAddRatingCommand(t *testing.T) {
	t.Run("should keep out of range values for the handler to drop", func(t *testing.T) {
		cmd, err := commands.NewAddRatingCommand("Luigi's", 9)

		require.NoError(t, err)
		assert.Equal(t, "Luigi's", cmd.Restaurant())
		assert.Equal(t, 9, cmd.Value())
	})

	t.Run("should reject blank restaurant", func(t *testing.T) {
		_, err := commands.NewAddRatingCommand("", 3)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAddRatingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddRatingCommand("Luigi's", 4)

	repo := new(MockRatingRepository)
	uow := new(MockRatingUoW)
	cache := new(MockRankingCache)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RatingRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(r *rating.Rating) bool {
			return r.Restaurant() == "Luigi's" && r.Value() == 4
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		cache.On("Invalidate", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddRatingCommandHandler(factory, cache, discardLogger())
	accepted, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, accepted)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestAddRatingCommandHandler_Handle_WithoutCache(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddRatingCommand("Luigi's", 0)

	repo := new(MockRatingRepository)
	uow := new(MockRatingUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RatingRepository").Return(repo).Once()
	repo.On("Add", ctx, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddRatingCommandHandler(factory, nil, discardLogger())
	accepted, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, accepted)
}

func TestAddRatingCommandHandler_Handle_DiscardsOutOfRange(t *testing.T) {
	ctx := t.Context()
	factory := new(MockRatingUoWFactory)
	cache := new(MockRankingCache)
	h := commands.NewAddRatingCommandHandler(factory, cache, discardLogger())

	for _, value := range []int{-1, 6, 100} {
		cmd, err := commands.NewAddRatingCommand("Luigi's", value)
		require.NoError(t, err)

		accepted, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.False(t, accepted, "value %d", value)
	}

	factory.AssertNotCalled(t, "Create")
	cache.AssertNotCalled(t, "Invalidate", mock.Anything)
}

func TestAddRatingCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddRatingCommand("Luigi's", 5)

	repo := new(MockRatingRepository)
	uow := new(MockRatingUoW)
	cache := new(MockRankingCache)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RatingRepository").Return(repo).Once()
	repo.On("Add", ctx, mock.Anything).Return(errors.New("add error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddRatingCommandHandler(factory, cache, discardLogger())
	accepted, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "add error")
	assert.False(t, accepted)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything)
}

func TestAddRatingCommandHandler_Handle_InvalidateError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddRatingCommand("Luigi's", 5)

	repo := new(MockRatingRepository)
	uow := new(MockRatingUoW)
	cache := new(MockRankingCache)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RatingRepository").Return(repo).Once()
	repo.On("Add", ctx, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	cache.On("Invalidate", ctx).Return(errors.New("redis down")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	var logs bytes.Buffer
	h := commands.NewAddRatingCommandHandler(factory, cache, slog.New(slog.NewJSONHandler(&logs, nil)))
	accepted, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, accepted)
	assert.Contains(t, logs.String(), "ranking cache invalidation failed")
	assert.Contains(t, logs.String(), "redis down")
	uow.AssertExpectations(t)
	cache.AssertExpectations(t)
}
