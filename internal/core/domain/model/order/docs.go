// Package order contains the order aggregate and its status state machine.
//
// The aggregate owns every mutation of an order's lifecycle: status
// transitions, shipper assignment, cancellation, and COD payment
// confirmation. Transitions are validated against a single adjacency table
// annotated with per-edge guard predicates; callers receive a
// TransitionResult describing whether the change is allowed and whether it
// carries an informational note or a warning that must be acknowledged
// before the change is applied.
package order
