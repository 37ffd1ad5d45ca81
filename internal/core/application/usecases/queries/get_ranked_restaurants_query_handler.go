package queries

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// GetRankedRestaurantsQueryHandler computes the ranking from all stored
// ratings, reading through an optional cache. Cache failures are logged and
// the ranking is computed from storage instead. A ranking is only written back
// under the cache generation observed before the ratings were read, so a
// rating committed meanwhile is never hidden by it.
type GetRankedRestaurantsQueryHandler struct {
	ratingRepo ports.RatingRepository
	cache      ports.RankingCache
	ranker     services.RatingRanker
	logger     *slog.Logger
}

// NewGetRankedRestaurantsQueryHandler builds the handler. cache may be nil.
func NewGetRankedRestaurantsQueryHandler(
	ratingRepo ports.RatingRepository,
	cache ports.RankingCache,
	logger *slog.Logger,
) GetRankedRestaurantsQueryHandler {
	return GetRankedRestaurantsQueryHandler{
		ratingRepo: ratingRepo,
		cache:      cache,
		ranker:     services.NewRatingRanker(),
		logger:     logger.With("component", "ranking-query"),
	}
}

func (h GetRankedRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query GetRankedRestaurantsQuery,
) ([]GetRankedRestaurantsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ranking, err := h.ranking(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]GetRankedRestaurantsQueryResponse, 0, len(ranking))
	for _, row := range ranking {
		response = append(response, GetRankedRestaurantsQueryResponse{
			Restaurant: row.Restaurant,
			Average:    row.Average,
			Count:      row.Count,
		})
	}
	return response, nil
}

func (h GetRankedRestaurantsQueryHandler) ranking(ctx context.Context) ([]services.RestaurantRating, error) {
	cacheable := false
	var generation int64
	if h.cache != nil {
		cached, gen, ok, err := h.cache.Get(ctx)
		if err != nil {
			h.logger.WarnContext(ctx, "ranking cache read failed", "error", err)
		}
		if err == nil && ok {
			return cached, nil
		}
		cacheable, generation = err == nil, gen
	}

	ratings, err := h.ratingRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	ranking, err := h.ranker.Rank(ratings)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err = h.cache.Set(ctx, generation, ranking); err != nil {
			h.logger.WarnContext(ctx, "ranking cache write failed", "error", err)
		}
	}
	return ranking, nil
}
