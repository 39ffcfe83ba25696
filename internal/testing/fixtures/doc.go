// Package fixtures provides test data builders for the Motion API.
//
// Builders return fully populated models with sensible defaults and accept
// option functions for customization:
//
//	adv := fixtures.Adventure(fixtures.WithTitle("Harbor walk"))
//	review := fixtures.Review("community-1", fixtures.WithRating(5))
package fixtures
