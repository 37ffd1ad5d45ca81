// Package services provides domain services whose rules span more than one
// aggregate of the food-delivery domain.
//
// The package includes:
//   - DeliveryScheduler: claims pending orders for one delivery run
//   - RatingRanker: averages ratings per restaurant and orders them
//   - CategoryReport: counts orders per catalog category
//
// Services are stateless. They work on aggregates already loaded by a unit of
// work and leave persistence to the caller.
package services
