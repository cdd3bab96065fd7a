// Package cart contains the in-progress order aggregate.
//
// A cart is the uncommitted, session-scoped staging area for a customer's
// order. It lives only in memory; completing the order converts it into
// durable order records through the persistence gateway and discards it.
package cart
