package entity

import "time"

// Member represents a registered restaurant member. The 12-digit numeric
// identifier is generated at creation time and treated as opaque afterwards.
type Member struct {
	MemberID  string    `gorm:"primaryKey;size:12" json:"member_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	ContactNo string    `gorm:"size:50;not null" json:"contact_no"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Orders   []Order        `gorm:"foreignKey:MemberID" json:"-"`
	Payments []Payment      `gorm:"foreignKey:MemberID" json:"-"`
	History  []HistoryEntry `gorm:"foreignKey:MemberID" json:"-"`
}

// TableName returns the table name for the Member model
func (Member) TableName() string {
	return "members"
}
