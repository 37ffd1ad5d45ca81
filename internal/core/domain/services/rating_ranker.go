package services

import (
	"cmp"
	"slices"

	"fooddelivery/internal/core/domain/model/rating"
)

// RestaurantRating is the average score of one restaurant.
type RestaurantRating struct {
	Restaurant string
	Average    float64
	Count      int
}

// RatingRanker turns individual ratings into a per-restaurant ranking.
// Restaurants with no ratings do not appear.
type RatingRanker struct{}

func NewRatingRanker() RatingRanker {
	return RatingRanker{}
}

// Rank orders restaurants by descending average. Equal averages are ordered by
// restaurant name ascending so the ranking is deterministic.
func (r RatingRanker) Rank(ratings []*rating.Rating) ([]RestaurantRating, error) {
	type total struct {
		sum   int
		count int
	}

	totals := make(map[string]*total)
	for _, rt := range ratings {
		if err := rt.Validate(); err != nil {
			return nil, err
		}

		t, ok := totals[rt.Restaurant()]
		if !ok {
			t = &total{}
			totals[rt.Restaurant()] = t
		}
		t.sum += rt.Value()
		t.count++
	}

	ranking := make([]RestaurantRating, 0, len(totals))
	for restaurant, t := range totals {
		ranking = append(ranking, RestaurantRating{
			Restaurant: restaurant,
			Average:    float64(t.sum) / float64(t.count),
			Count:      t.count,
		})
	}

	slices.SortFunc(ranking, func(a, b RestaurantRating) int {
		if c := cmp.Compare(b.Average, a.Average); c != 0 {
			return c
		}
		return cmp.Compare(a.Restaurant, b.Restaurant)
	})
	return ranking, nil
}
