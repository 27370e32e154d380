package entity

import "time"

// Order represents a placed order. BillID stays null until the order is
// billed; one order maps to at most one bill.
type Order struct {
	OrderID   int       `gorm:"primaryKey;autoIncrement" json:"order_id"`
	MemberID  string    `gorm:"size:12;not null;index" json:"member_id"`
	OrderDate time.Time `gorm:"type:date;not null" json:"order_date"`
	BillID    *int      `gorm:"index" json:"bill_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Member    Member          `gorm:"foreignKey:MemberID" json:"-"`
	Bill      *Bill           `gorm:"foreignKey:BillID" json:"-"`
	LineItems []OrderLineItem `gorm:"foreignKey:OrderID" json:"line_items,omitempty"`
}

// IsBilled reports whether the order has already been linked to a bill
func (o *Order) IsBilled() bool {
	return o.BillID != nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderLineItem represents one dish entry in an order. Line items are owned
// by their order and deleted together with it.
type OrderLineItem struct {
	OrderID  int `gorm:"primaryKey" json:"order_id"`
	DishID   int `gorm:"primaryKey" json:"dish_id"`
	Quantity int `gorm:"not null" json:"quantity"`

	// Relationships
	Dish Dish `gorm:"foreignKey:DishID" json:"dish,omitempty"`
}

// TableName returns the table name for the OrderLineItem model
func (OrderLineItem) TableName() string {
	return "order_line_items"
}
