package commands

import (
	"context"
	"errors"
	"log/slog"

	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// AddRatingCommandHandler stores a rating. Scores outside
// [rating.MinValue, rating.MaxValue] are discarded without an error.
// When a ranking cache is configured it is invalidated after every accepted
// rating. A failed invalidation is logged; the rating stays accepted.
type AddRatingCommandHandler struct {
	uowFactory RatingUoWFactory
	cache      ports.RankingCache
	logger     *slog.Logger
}

// NewAddRatingCommandHandler builds the handler. cache may be nil.
func NewAddRatingCommandHandler(
	uowFactory RatingUoWFactory,
	cache ports.RankingCache,
	logger *slog.Logger,
) AddRatingCommandHandler {
	return AddRatingCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "add-rating"),
	}
}

// Handle reports whether the rating was accepted.
func (h AddRatingCommandHandler) Handle(ctx context.Context, cmd AddRatingCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	r, err := rating.NewRating(cmd.Restaurant(), cmd.Value())
	if errors.Is(err, errs.ErrValueIsOutOfRange) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RatingRepository().Add(ctx, r); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	if h.cache != nil {
		if err = h.cache.Invalidate(ctx); err != nil {
			h.logger.ErrorContext(ctx, "ranking cache invalidation failed",
				"restaurant", r.Restaurant(), "error", err)
		}
	}

	return true, nil
}
