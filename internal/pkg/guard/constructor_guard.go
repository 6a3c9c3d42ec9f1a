// Package guard implements a defensive construction pattern for value objects,
// commands, and queries. By embedding a ConstructorGuard, a struct can detect
// whether it was created through its designated constructor or as a zero value,
// which keeps domain invariants enforceable even when callers bypass factories.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// constructor. The zero value fails validation, so any struct embedding a
// guard cannot be used before proper construction.
//
// Example:
//
//	type PlaceOrderCommand struct {
//	    drink string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewPlaceOrderCommand(drink string) PlaceOrderCommand {
//	    return PlaceOrderCommand{drink: drink, guard: guard.NewConstructorGuard()}
//	}
//
//	func (c PlaceOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as properly
// constructed. Call it inside the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the owning object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
