// Package orderrepo provides the GORM-backed persistence gateway for
// completed orders: menu lookups, line items, and tracking status.
package orderrepo

// MenuItemDTO is one priced item on the menu. Line-item inserts resolve the
// spoken food-item name against this table; names not on the menu fail the
// insert.
type MenuItemDTO struct {
	ID    int64   `gorm:"primaryKey"`
	Name  string  `gorm:"uniqueIndex;size:255"`
	Price float64 `gorm:"type:numeric(10,2)"`
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// OrderItemDTO is one line item of a completed order.
type OrderItemDTO struct {
	ID         int64   `gorm:"primaryKey"`
	OrderID    int64   `gorm:"index"`
	MenuItemID int64   `gorm:"index"`
	Quantity   float64 `gorm:"type:numeric(10,2)"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderTrackingDTO is the tracking status of a completed order.
type OrderTrackingDTO struct {
	OrderID int64  `gorm:"primaryKey"`
	Status  string `gorm:"size:64"`
}

// TableName specifies the database table name for order tracking records.
func (OrderTrackingDTO) TableName() string {
	return "order_tracking"
}
