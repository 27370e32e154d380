package repository

import (
	"context"

	"github.com/avillarama/resto-api/internal/domain/entity"
	"github.com/avillarama/resto-api/pkg/pagination"
)

// PaymentRepository defines the interface for payment data operations.
// Payments are insert-only; no update or delete methods exist.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id int) (*entity.Payment, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Payment, int64, error)
	ListByBill(ctx context.Context, billID int) ([]entity.Payment, error)
}
