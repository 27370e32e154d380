package entity

import (
	"time"

	"github.com/avillarama/resto-api/internal/domain/enum"
)

// HistoryEntry is one row of the append-only member activity journal.
// OrderID is set iff EventType is order; PaymentID is set iff EventType is
// payment. Entries are never updated or deleted once written.
type HistoryEntry struct {
	HistoryID int               `gorm:"primaryKey;autoIncrement" json:"history_id"`
	MemberID  string            `gorm:"size:12;not null;index" json:"member_id"`
	EventType enum.HistoryEvent `gorm:"size:10;not null" json:"event_type"`
	OrderID   *int              `json:"order_id,omitempty"`
	PaymentID *int              `json:"payment_id,omitempty"`
	EventDate time.Time         `gorm:"not null;index" json:"event_date"`
}

// TableName returns the table name for the HistoryEntry model
func (HistoryEntry) TableName() string {
	return "member_histories"
}
