package repository

import (
	"context"
	"errors"

	"github.com/avillarama/resto-api/internal/domain/entity"
	domainRepo "github.com/avillarama/resto-api/internal/domain/repository"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return dbFromContext(ctx, r.db).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id int) (*entity.Order, error) {
	var order entity.Order
	err := dbFromContext(ctx, r.db).First(&order, "order_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetWithLineItems(ctx context.Context, id int) (*entity.Order, error) {
	var order entity.Order
	err := dbFromContext(ctx, r.db).
		Preload("LineItems").
		Preload("LineItems.Dish").
		First(&order, "order_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := dbFromContext(ctx, r.db).Model(&entity.Order{})

	if params.MemberID != "" {
		query = query.Where("member_id = ?", params.MemberID)
	}

	if params.Unbilled {
		query = query.Where("bill_id IS NULL")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("LineItems").
		Preload("LineItems.Dish").
		Order("order_date DESC, order_id DESC").
		Find(&orders).Error

	return orders, total, err
}

func (r *orderRepository) LinkBill(ctx context.Context, orderID, billID int) error {
	return dbFromContext(ctx, r.db).Model(&entity.Order{}).
		Where("order_id = ?", orderID).
		Update("bill_id", billID).Error
}

func (r *orderRepository) UnlinkBill(ctx context.Context, billID int) error {
	return dbFromContext(ctx, r.db).Model(&entity.Order{}).
		Where("bill_id = ?", billID).
		Update("bill_id", nil).Error
}

func (r *orderRepository) Delete(ctx context.Context, id int) error {
	return dbFromContext(ctx, r.db).Delete(&entity.Order{}, "order_id = ?", id).Error
}

type orderLineItemRepository struct {
	db *gorm.DB
}

// NewOrderLineItemRepository creates a new order line item repository
func NewOrderLineItemRepository(db *gorm.DB) domainRepo.OrderLineItemRepository {
	return &orderLineItemRepository{db: db}
}

func (r *orderLineItemRepository) CreateBatch(ctx context.Context, items []entity.OrderLineItem) error {
	return dbFromContext(ctx, r.db).Create(&items).Error
}

func (r *orderLineItemRepository) GetByOrderID(ctx context.Context, orderID int) ([]entity.OrderLineItem, error) {
	var items []entity.OrderLineItem
	err := dbFromContext(ctx, r.db).
		Preload("Dish").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

func (r *orderLineItemRepository) DeleteByOrderID(ctx context.Context, orderID int) error {
	return dbFromContext(ctx, r.db).Delete(&entity.OrderLineItem{}, "order_id = ?", orderID).Error
}
