package ports

import (
	"context"
)

// OrderStatusInProgress is the tracking status written when an order is
// first persisted.
const OrderStatusInProgress = "in progress"

// OrderRepository is the persistence gateway for completed orders. It
// allocates order ids, writes line items and tracking status, and reads back
// the computed totals the confirmation message reports.
//
// Orders are identified by an integer id allocated at completion time; the
// application treats it as an opaque token echoed back to the customer.
type OrderRepository interface {
	// NextOrderID allocates the id for a new order.
	NextOrderID(ctx context.Context) (int64, error)

	// AddItem writes one line item for the order. The item must exist on
	// the menu; unknown items fail the insert.
	AddItem(ctx context.Context, orderID int64, item string, quantity float64) error

	// AddTracking writes the tracking record for the order.
	AddTracking(ctx context.Context, orderID int64, status string) error

	// TotalPrice computes the order total from its line items and menu
	// prices.
	TotalPrice(ctx context.Context, orderID int64) (float64, error)

	// Status returns the tracking status for the order.
	// Returns an errs.ObjectNotFoundError when no such order exists.
	Status(ctx context.Context, orderID int64) (string, error)
}
