// Package rating holds the Rating aggregate: one customer score for a restaurant.
//
// Ratings are appended and never changed. Values outside [MinValue, MaxValue]
// are refused by NewRating; the add-rating use case turns that refusal into a
// silent discard.
package rating
