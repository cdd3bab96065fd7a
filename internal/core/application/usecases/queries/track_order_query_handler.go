package queries

import (
	"context"

	"gorm.io/gorm"
)

// TrackOrderQueryHandler reads an order's tracking status straight from the
// database. Absence of a tracking row is reported through Found, never as an
// error.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for order tracking lookups.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the status lookup.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	response := TrackOrderQueryResponse{OrderID: query.OrderID()}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM order_tracking
		WHERE order_id = ?
	`, query.OrderID()).Rows()
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}
	defer rows.Close()

	if rows.Next() {
		if err = rows.Scan(&response.Status); err != nil {
			return TrackOrderQueryResponse{}, err
		}
		response.Found = true
	}

	if err = rows.Err(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	return response, nil
}
