package enum

// PaymentMethod represents how a payment was settled
type PaymentMethod string

const (
	PaymentMethodCash    PaymentMethod = "cash"
	PaymentMethodCard    PaymentMethod = "card"
	PaymentMethodEWallet PaymentMethod = "e-wallet"
	PaymentMethodPoints  PaymentMethod = "points"
)

// IsValid reports whether m is one of the supported payment methods
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodEWallet, PaymentMethodPoints:
		return true
	}
	return false
}
