// Package kernel contains shared value objects used across the domain model.
// These are the building blocks that aggregates and entities are composed of.
//
// The package currently provides the UUID value object, which wraps
// github.com/google/uuid with validation and immutability guarantees so that
// entity identifiers are always well-formed.
package kernel
