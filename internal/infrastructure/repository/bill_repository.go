package repository

import (
	"context"
	"errors"

	"github.com/avillarama/resto-api/internal/domain/entity"
	domainRepo "github.com/avillarama/resto-api/internal/domain/repository"
	"github.com/avillarama/resto-api/pkg/pagination"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	return dbFromContext(ctx, r.db).Create(bill).Error
}

func (r *billRepository) GetByID(ctx context.Context, id int) (*entity.Bill, error) {
	var bill entity.Bill
	err := dbFromContext(ctx, r.db).First(&bill, "bill_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Bill, int64, error) {
	var bills []entity.Bill
	var total int64

	query := dbFromContext(ctx, r.db).Model(&entity.Bill{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("bill_id DESC").
		Find(&bills).Error

	return bills, total, err
}

func (r *billRepository) ListOutstanding(ctx context.Context) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := dbFromContext(ctx, r.db).
		Where("outstanding_balance > 0").
		Order("bill_id ASC").
		Find(&bills).Error
	return bills, err
}

func (r *billRepository) UpdateOutstandingBalance(ctx context.Context, id int, balance int64) error {
	return dbFromContext(ctx, r.db).Model(&entity.Bill{}).
		Where("bill_id = ?", id).
		Update("outstanding_balance", balance).Error
}

func (r *billRepository) Delete(ctx context.Context, id int) error {
	return dbFromContext(ctx, r.db).Delete(&entity.Bill{}, "bill_id = ?", id).Error
}
