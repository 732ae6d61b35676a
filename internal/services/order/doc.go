// Package order places, cancels and advances delivery orders.
//
// Clients place and cancel their own orders. Volunteers and admins see every
// order and move it along pending, accepted, delivering, delivered. The
// backend owns the status; the checks here only save a round trip.
package order
