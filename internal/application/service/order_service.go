package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avillarama/resto-api/internal/domain/entity"
	"github.com/avillarama/resto-api/internal/domain/enum"
	"github.com/avillarama/resto-api/internal/domain/repository"
	"github.com/avillarama/resto-api/pkg/apperror"
	"github.com/avillarama/resto-api/pkg/pagination"
)

// OrderService handles order placement and lookup
type OrderService struct {
	orderRepo    repository.OrderRepository
	lineItemRepo repository.OrderLineItemRepository
	memberRepo   repository.MemberRepository
	dishRepo     repository.DishRepository
	historyRepo  repository.HistoryRepository
	txManager    repository.TxManager
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	lineItemRepo repository.OrderLineItemRepository,
	memberRepo repository.MemberRepository,
	dishRepo repository.DishRepository,
	historyRepo repository.HistoryRepository,
	txManager repository.TxManager,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		lineItemRepo: lineItemRepo,
		memberRepo:   memberRepo,
		dishRepo:     dishRepo,
		historyRepo:  historyRepo,
		txManager:    txManager,
	}
}

// OrderItemInput is one dish line of an order request
type OrderItemInput struct {
	DishID   int
	Quantity int
}

// PlaceOrderInput represents the place order input
type PlaceOrderInput struct {
	MemberID  string
	OrderDate time.Time
	Items     []OrderItemInput
}

// PlaceOrder creates an order with its line items and appends the member's
// history entry, all in one transaction
func (s *OrderService) PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error) {
	var fieldErrors []apperror.FieldError
	if input.MemberID == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "member_id", Message: "Member ID is required"})
	}
	if len(input.Items) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "items", Message: "At least one item is required"})
	}
	seen := make(map[int]bool)
	for i, item := range input.Items {
		if item.Quantity < 1 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "Quantity must be at least 1",
			})
		}
		if seen[item.DishID] {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].dish_id", i),
				Message: "Duplicate dish in order",
			})
		}
		seen[item.DishID] = true
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	member, err := s.memberRepo.GetByID(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperror.NewNotFoundError("Member")
	}

	dishIDs := make([]int, 0, len(input.Items))
	for _, item := range input.Items {
		dishIDs = append(dishIDs, item.DishID)
	}
	dishes, err := s.dishRepo.GetByIDs(ctx, dishIDs)
	if err != nil {
		return nil, err
	}
	if len(dishes) != len(dishIDs) {
		return nil, apperror.NewNotFoundError("Dish")
	}

	orderDate := input.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	order := &entity.Order{
		MemberID:  input.MemberID,
		OrderDate: orderDate,
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.orderRepo.Create(ctx, order); err != nil {
			return err
		}

		items := make([]entity.OrderLineItem, 0, len(input.Items))
		for _, item := range input.Items {
			items = append(items, entity.OrderLineItem{
				OrderID:  order.OrderID,
				DishID:   item.DishID,
				Quantity: item.Quantity,
			})
		}
		if err := s.lineItemRepo.CreateBatch(ctx, items); err != nil {
			return err
		}

		orderID := order.OrderID
		return s.historyRepo.Append(ctx, &entity.HistoryEntry{
			MemberID:  input.MemberID,
			EventType: enum.HistoryEventOrder,
			OrderID:   &orderID,
			EventDate: orderDate,
		})
	})
	if err != nil {
		return nil, err
	}

	return s.orderRepo.GetWithLineItems(ctx, order.OrderID)
}

// GetOrder retrieves an order with its line items
func (s *OrderService) GetOrder(ctx context.Context, id int) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithLineItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders, optionally restricted to one member or to
// unbilled orders only
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// DeleteOrder removes an unbilled order together with its line items.
// Billed orders are part of the ledger and cannot be deleted.
func (s *OrderService) DeleteOrder(ctx context.Context, id int) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	if order.IsBilled() {
		return apperror.NewConflictError("Order has already been billed")
	}

	return s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.lineItemRepo.DeleteByOrderID(ctx, id); err != nil {
			return err
		}
		return s.orderRepo.Delete(ctx, id)
	})
}
