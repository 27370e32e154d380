package entity

import (
	"encoding/json"
	"time"

	"github.com/avillarama/resto-api/internal/domain/enum"
)

// Payment records one payment applied to a bill. OutstandingBalance is the
// bill balance immediately after this payment was applied (a snapshot, not a
// reference to the bill's own field). Payments are immutable once written.
type Payment struct {
	PaymentID          int                `gorm:"primaryKey;autoIncrement" json:"payment_id"`
	MemberID           string             `gorm:"size:12;not null;index" json:"member_id"`
	BillID             int                `gorm:"not null;index" json:"bill_id"`
	Method             enum.PaymentMethod `gorm:"size:20;not null" json:"method"`
	PaymentDate        time.Time          `gorm:"type:date;not null" json:"payment_date"`
	PaidAmount         int64              `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Status             enum.PaymentStatus `gorm:"size:10;not null" json:"status"`
	OutstandingBalance int64              `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt          time.Time          `json:"created_at"`

	// Relationships
	Member Member `gorm:"foreignKey:MemberID" json:"-"`
	Bill   Bill   `gorm:"foreignKey:BillID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Payment) MarshalJSON() ([]byte, error) {
	type Alias Payment
	return json.Marshal(&struct {
		Alias
		PaidAmount         float64 `json:"paid_amount"`
		OutstandingBalance float64 `json:"outstanding_balance"`
	}{
		Alias:              Alias(p),
		PaidAmount:         float64(p.PaidAmount) / 100,
		OutstandingBalance: float64(p.OutstandingBalance) / 100,
	})
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
