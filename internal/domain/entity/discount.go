package entity

import (
	"time"

	"github.com/avillarama/resto-api/internal/domain/enum"
)

// Discount is the base record shared by in-house and special-ID discounts.
// Exactly one of the InHouse/SpecialID sub-records exists per discount, and
// a discount is immutable once created.
type Discount struct {
	DiscountID int               `gorm:"primaryKey;autoIncrement" json:"discount_id"`
	Type       enum.DiscountType `gorm:"size:1;not null" json:"type"`
	CreatedAt  time.Time         `json:"created_at"`

	// Relationships
	InHouse   *InHouseDiscount   `gorm:"foreignKey:DiscountID" json:"in_house,omitempty"`
	SpecialID *SpecialIDDiscount `gorm:"foreignKey:DiscountID" json:"special_id,omitempty"`
}

// TableName returns the table name for the Discount model
func (Discount) TableName() string {
	return "discounts"
}

// InHouseDiscount carries the description and flat rate of an in-house
// discount. Rate is a fraction in [0,1].
type InHouseDiscount struct {
	DiscountID  int     `gorm:"primaryKey" json:"discount_id"`
	Description string  `gorm:"size:255;not null" json:"description"`
	Rate        float64 `gorm:"not null" json:"rate"`
}

// TableName returns the table name for the InHouseDiscount model
func (InHouseDiscount) TableName() string {
	return "inhouse_discounts"
}

// SpecialIDRate is the fixed rate applied to every special-ID discount
// regardless of subtype.
const SpecialIDRate = 0.12

// SpecialIDDiscount carries the member and subtype of a special-ID discount.
type SpecialIDDiscount struct {
	DiscountID int                `gorm:"primaryKey" json:"discount_id"`
	MemberID   string             `gorm:"size:12;not null;index" json:"member_id"`
	Rate       float64            `gorm:"not null" json:"rate"`
	Subtype    enum.SpecialIDType `gorm:"size:1;not null" json:"subtype"`

	// Relationships
	Senior *SeniorDetail `gorm:"foreignKey:DiscountID" json:"senior,omitempty"`
	PWD    *PWDDetail    `gorm:"foreignKey:DiscountID" json:"pwd,omitempty"`
}

// TableName returns the table name for the SpecialIDDiscount model
func (SpecialIDDiscount) TableName() string {
	return "specialid_discounts"
}

// SeniorDetail is the government-ID evidence for a senior special-ID discount.
type SeniorDetail struct {
	DiscountID int       `gorm:"primaryKey" json:"discount_id"`
	IDNumber   string    `gorm:"size:12;not null" json:"id_number"`
	Birthdate  time.Time `gorm:"type:date;not null" json:"birthdate"`
}

// TableName returns the table name for the SeniorDetail model
func (SeniorDetail) TableName() string {
	return "senior_details"
}

// PWDDetail is the government-ID evidence for a PWD special-ID discount.
type PWDDetail struct {
	DiscountID int    `gorm:"primaryKey" json:"discount_id"`
	IDNumber   string `gorm:"size:12;not null" json:"id_number"`
	Disability string `gorm:"size:255;not null" json:"disability"`
}

// TableName returns the table name for the PWDDetail model
func (PWDDetail) TableName() string {
	return "pwd_details"
}
