package request

import "time"

// Monetary amounts arrive as decimals (e.g. 25.00) and are converted to
// cents at the handler boundary.

// CreateMemberRequest is the payload for registering a member
type CreateMemberRequest struct {
	Name      string `json:"name" binding:"required"`
	ContactNo string `json:"contact_no" binding:"required"`
}

// UpdateMemberRequest is the payload for updating a member
type UpdateMemberRequest struct {
	Name      *string `json:"name"`
	ContactNo *string `json:"contact_no"`
}

// CreateDishRequest is the payload for adding a dish
type CreateDishRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required"`
}

// UpdateDishRequest is the payload for updating a dish
type UpdateDishRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

// OrderItemRequest is one dish line of an order
type OrderItemRequest struct {
	DishID   int `json:"dish_id" binding:"required"`
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// PlaceOrderRequest is the payload for placing an order
type PlaceOrderRequest struct {
	MemberID  string             `json:"member_id" binding:"required"`
	OrderDate *time.Time         `json:"order_date"`
	Items     []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateInHouseDiscountRequest is the payload for an in-house discount
type CreateInHouseDiscountRequest struct {
	Description string  `json:"description" binding:"required"`
	Rate        float64 `json:"rate" binding:"required"`
}

// CreateSpecialIDDiscountRequest is the payload for a special-ID discount.
// Subtype is "S" for senior or "P" for PWD.
type CreateSpecialIDDiscountRequest struct {
	MemberID   string     `json:"member_id" binding:"required"`
	Subtype    string     `json:"subtype" binding:"required"`
	IDNumber   string     `json:"id_number" binding:"required"`
	Birthdate  *time.Time `json:"birthdate"`
	Disability string     `json:"disability"`
}

// GenerateBillRequest is the payload for generating a bill. At most one of
// DiscountID and SpecialID may be set.
type GenerateBillRequest struct {
	OrderID        int                             `json:"order_id" binding:"required"`
	DiscountID     *int                            `json:"discount_id"`
	SpecialID      *CreateSpecialIDDiscountRequest `json:"special_id"`
	TaxRate        float64                         `json:"tax_rate"`
	ServiceFeeRate float64                         `json:"service_fee_rate"`
}

// ApplyPaymentRequest is the payload for applying a payment to a bill
type ApplyPaymentRequest struct {
	MemberID    string     `json:"member_id" binding:"required"`
	BillID      int        `json:"bill_id" binding:"required"`
	Method      string     `json:"method" binding:"required"`
	PaymentDate *time.Time `json:"payment_date"`
	PaidAmount  float64    `json:"paid_amount" binding:"required"`
}
