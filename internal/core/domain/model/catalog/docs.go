// Package catalog provides the entities of the restaurant catalog: categories,
// restaurants and dishes.
//
// Key business rules:
//   - Category names are unique and categories are listed in insertion order
//   - A restaurant belongs to exactly one category that must exist when it is registered
//   - Registering a restaurant name again replaces the previous registration
//   - Dish names form a single namespace across all restaurants
//   - Dish prices are non-negative
//
// Uniqueness and existence rules need the whole catalog and are enforced by the
// application commands; the entities here validate their own fields.
package catalog
