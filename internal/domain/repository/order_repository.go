package repository

import (
	"context"

	"github.com/avillarama/resto-api/internal/domain/entity"
	"github.com/avillarama/resto-api/pkg/pagination"
)

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	MemberID   string
	Unbilled   bool // Only orders without a bill (the billing surface)
}

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id int) (*entity.Order, error)
	GetWithLineItems(ctx context.Context, id int) (*entity.Order, error)
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	LinkBill(ctx context.Context, orderID, billID int) error
	UnlinkBill(ctx context.Context, billID int) error
	Delete(ctx context.Context, id int) error
}

// OrderLineItemRepository defines the interface for order line item data operations
type OrderLineItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.OrderLineItem) error
	GetByOrderID(ctx context.Context, orderID int) ([]entity.OrderLineItem, error)
	DeleteByOrderID(ctx context.Context, orderID int) error
}
