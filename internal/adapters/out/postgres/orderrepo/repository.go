package orderrepo

import (
	"context"
	"errors"
	"strconv"

	"dinebot/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// NextOrderID allocates the next order id as max(order_id)+1 over the
// existing line items. Two completion transactions running at the same time
// can read the same maximum and allocate the same id; completions are rare
// enough that no cross-transaction coordination is done here.
func (r *GormOrderRepository) NextOrderID(ctx context.Context) (int64, error) {
	var next int64
	row := r.db.WithContext(ctx).Raw(
		`SELECT COALESCE(MAX(order_id), 0) + 1 FROM order_items`,
	).Row()
	if err := row.Scan(&next); err != nil {
		return 0, err
	}

	return next, nil
}

// AddItem writes one line item, resolving the item name against the menu.
// Returns an errs.ObjectNotFoundError for items not on the menu.
func (r *GormOrderRepository) AddItem(ctx context.Context, orderID int64, item string, quantity float64) error {
	var menuItem MenuItemDTO
	if err := r.db.WithContext(ctx).First(&menuItem, "name = ?", item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("menu item", item)
		}
		return err
	}

	dto := OrderItemDTO{
		OrderID:    orderID,
		MenuItemID: menuItem.ID,
		Quantity:   quantity,
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddTracking writes the tracking record for an order.
func (r *GormOrderRepository) AddTracking(ctx context.Context, orderID int64, status string) error {
	dto := OrderTrackingDTO{
		OrderID: orderID,
		Status:  status,
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// TotalPrice computes the order total by joining line items with menu prices.
func (r *GormOrderRepository) TotalPrice(ctx context.Context, orderID int64) (float64, error) {
	var total float64
	row := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(oi.quantity * mi.price), 0)
		FROM order_items oi
		JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE oi.order_id = ?
	`, orderID).Row()
	if err := row.Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

// Status returns the tracking status for an order.
func (r *GormOrderRepository) Status(ctx context.Context, orderID int64) (string, error) {
	var dto OrderTrackingDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("order", strconv.FormatInt(orderID, 10))
		}
		return "", err
	}

	return dto.Status, nil
}
