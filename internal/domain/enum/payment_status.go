package enum

// PaymentStatus is the derived state of a payment against a bill
type PaymentStatus string

const (
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)
