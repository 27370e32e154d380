package entity

import (
	"encoding/json"
	"time"
)

// Dish represents a menu item
type Dish struct {
	DishID    int       `gorm:"primaryKey;autoIncrement" json:"dish_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Price     int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (d Dish) MarshalJSON() ([]byte, error) {
	type Alias Dish
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(d),
		Price: float64(d.Price) / 100,
	})
}

// TableName returns the table name for the Dish model
func (Dish) TableName() string {
	return "dishes"
}
