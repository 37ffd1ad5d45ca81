// Package kernel provides the primitives shared by every aggregate of the food delivery
// domain: the UUID value object used for entities without a natural key, and name
// validation for the entities that are keyed by name (categories, restaurants, dishes).
package kernel
