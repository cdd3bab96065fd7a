// Package kernel contains shared value objects used across the domain model.
//
// The package holds primitives that carry no business behavior of their own
// but enforce construction invariants, currently the SessionKey identifying
// a conversation session.
package kernel
