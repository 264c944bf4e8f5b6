// Package order contains the Order aggregate: a customer order moving through
// the rail delivery lifecycle from pending to delivered.
//
// The aggregate owns the order's line items and its lifecycle status. Status
// changes go through an explicit transition table (see Status); placement onto
// a train trip is additionally restricted to unplaced orders.
package order
