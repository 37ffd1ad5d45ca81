package queries

import (
	"context"
)

// GetBestRestaurantQueryHandler reuses the ranking handler so both answers come
// from the same cached ranking.
type GetBestRestaurantQueryHandler struct {
	ranking GetRankedRestaurantsQueryHandler
}

func NewGetBestRestaurantQueryHandler(ranking GetRankedRestaurantsQueryHandler) GetBestRestaurantQueryHandler {
	return GetBestRestaurantQueryHandler{ranking: ranking}
}

func (h GetBestRestaurantQueryHandler) Handle(
	ctx context.Context,
	query GetBestRestaurantQuery,
) (GetBestRestaurantQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBestRestaurantQueryResponse{}, err
	}

	ranking, err := h.ranking.Handle(ctx, NewGetRankedRestaurantsQuery())
	if err != nil {
		return GetBestRestaurantQueryResponse{}, err
	}
	if len(ranking) == 0 {
		return GetBestRestaurantQueryResponse{Found: false}, nil
	}

	return GetBestRestaurantQueryResponse{
		Found:      true,
		Restaurant: ranking[0].Restaurant,
		Average:    ranking[0].Average,
	}, nil
}
