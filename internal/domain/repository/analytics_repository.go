package repository

import "context"

// TopDishResult represents how often a member ordered a dish
type TopDishResult struct {
	DishID   int
	DishName string
	Quantity int
}

// PaymentCountsResult represents a member's payment frequency breakdown
type PaymentCountsResult struct {
	Total   int64
	Full    int64
	Partial int64
}

// BillTotalsResult aggregates the bill totals of a member's billed orders,
// in cents. Zero-valued when the member has no billed orders.
type BillTotalsResult struct {
	Count   int64
	Average float64
	Highest int64
	Lowest  int64
}

// AnalyticsRepository defines interface for analytics/aggregation queries
// over a member's orders, bills and payments
type AnalyticsRepository interface {
	// GetTopDishes returns the member's most ordered dishes by quantity
	GetTopDishes(ctx context.Context, memberID string, limit int) ([]TopDishResult, error)

	// GetPaymentCounts returns the member's full/partial payment breakdown
	GetPaymentCounts(ctx context.Context, memberID string) (*PaymentCountsResult, error)

	// GetBillTotals aggregates totals across the member's billed orders
	GetBillTotals(ctx context.Context, memberID string) (*BillTotalsResult, error)

	// GetOrderCount returns the number of orders the member has placed
	GetOrderCount(ctx context.Context, memberID string) (int64, error)
}
