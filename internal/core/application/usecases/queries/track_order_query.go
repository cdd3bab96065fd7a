// Package queries contains read-only operations served outside the
// command/unit-of-work path, following the CQRS split: queries read the
// database directly and never touch the cart store.
package queries

import (
	"errors"

	"dinebot/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// TrackOrderQuery looks up the tracking status of a previously placed order
// by its integer id. The id comes from the customer's utterance; whether it
// exists is part of the answer, not a validation concern.
//
// Example:
//
//	query, err := NewTrackOrderQuery(41)
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
type TrackOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query for an order's tracking status.
func NewTrackOrderQuery(orderID int64) (TrackOrderQuery, error) {
	return TrackOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// OrderID returns the order id being tracked.
func (q TrackOrderQuery) OrderID() int64 {
	return q.orderID
}

// TrackOrderQueryResponse reports the lookup outcome. Found distinguishes
// "no such order" from a present status.
type TrackOrderQueryResponse struct {
	OrderID int64
	Status  string
	Found   bool
}
