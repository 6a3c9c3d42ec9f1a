// Package services contains stateless domain services that operate on
// aggregates without owning state of their own.
//
// CoffeeShop renders descriptive strings for brewing and serving actions.
// It depends on the order model in one direction only: the service reads
// order attributes but never drives order lifecycle transitions.
package services
