package entity

import (
	"encoding/json"
	"time"
)

// Bill is the priced summary of one order. Total is computed once at
// generation time and never changes; OutstandingBalance starts equal to
// Total, only ever decreases, and is floored at zero.
type Bill struct {
	BillID             int       `gorm:"primaryKey;autoIncrement" json:"bill_id"`
	DiscountID         *int      `gorm:"index" json:"discount_id,omitempty"`
	TaxRate            float64   `gorm:"not null" json:"tax_rate"`
	ServiceFeeRate     float64   `gorm:"not null" json:"service_fee_rate"`
	Total              int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	OutstandingBalance int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt          time.Time `json:"created_at"`

	// Relationships
	Discount *Discount `gorm:"foreignKey:DiscountID" json:"-"`
	Payments []Payment `gorm:"foreignKey:BillID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (b Bill) MarshalJSON() ([]byte, error) {
	type Alias Bill
	return json.Marshal(&struct {
		Alias
		Total              float64 `json:"total"`
		OutstandingBalance float64 `json:"outstanding_balance"`
	}{
		Alias:              Alias(b),
		Total:              float64(b.Total) / 100,
		OutstandingBalance: float64(b.OutstandingBalance) / 100,
	})
}

// IsSettled reports whether the bill has been fully paid
func (b *Bill) IsSettled() bool {
	return b.OutstandingBalance == 0
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}
