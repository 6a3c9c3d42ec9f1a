// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order is placed for a drink and a size, both free-form text labels that
// never change after construction. Its status advances through a fixed
// sequence:
//
//	Ordered --(Prepare)--> Prepared --(Serve)--> Served
//
// Transitions are total: Prepare and Serve overwrite the status
// unconditionally and never return errors. There is no cancelled or failed
// state, and no guard rejecting out-of-order calls. Callers that need strict
// sequencing enforce it themselves.
package order
