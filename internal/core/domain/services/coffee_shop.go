package services

import (
	"fmt"

	"coffeeshop/internal/core/domain/model/order"
)

// CoffeeShop is a stateless domain service that renders human-readable
// descriptions of brewing and serving actions.
//
// Key properties:
//   - Holds no state: every operation is a pure function of its arguments
//   - Never mutates an Order; marking an order served is the caller's job
//     via order.Serve(), in whichever sequence the workflow requires
//
// Example usage:
//
//	shop := services.NewCoffeeShop()
//	o, _ := order.NewOrder(kernel.NewUUID(), "Latte", "medium")
//
//	fmt.Println(shop.Brew(o.Drink()))  // "Brewing Latte..."
//	o.Serve()
//	fmt.Println(shop.Serve(o))         // "Serving Latte (medium)"
type CoffeeShop struct{}

// NewCoffeeShop creates a new CoffeeShop instance.
func NewCoffeeShop() CoffeeShop {
	return CoffeeShop{}
}

// IsOpen reports whether the shop accepts orders. There is no schedule
// model; the shop is always open. Included for interface completeness.
func (c CoffeeShop) IsOpen() bool {
	return true
}

// Brew returns a description of brewing the given drink, in the form
// "Brewing {drink}...". Pure formatting function; it does not reference
// or mutate any Order.
func (c CoffeeShop) Brew(drink string) string {
	return fmt.Sprintf("Brewing %s...", drink)
}

// Serve returns a description of serving the given order, in the form
// "Serving {drink} ({size})". It reads the drink and size off the order
// and leaves the order's status untouched: rendering a serving description
// is orthogonal to transitioning the order's lifecycle state.
func (c CoffeeShop) Serve(o *order.Order) string {
	return fmt.Sprintf("Serving %s (%s)", o.Drink(), o.Size())
}
