package repository

import (
	"context"

	"github.com/avillarama/resto-api/internal/domain/entity"
	"github.com/avillarama/resto-api/pkg/pagination"
)

// BillRepository defines the interface for bill data operations
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id int) (*entity.Bill, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Bill, int64, error)
	// ListOutstanding returns bills with a balance above zero; settled bills
	// are excluded from the awaiting-payment surface.
	ListOutstanding(ctx context.Context) ([]entity.Bill, error)
	UpdateOutstandingBalance(ctx context.Context, id int, balance int64) error
	Delete(ctx context.Context, id int) error
}
