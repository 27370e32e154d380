package service

import (
	"context"
	"math"

	"github.com/avillarama/resto-api/internal/domain/entity"
	"github.com/avillarama/resto-api/internal/domain/repository"
	"github.com/avillarama/resto-api/pkg/apperror"
	"github.com/avillarama/resto-api/pkg/pagination"
)

// BillingService generates bills from orders
type BillingService struct {
	billRepo        repository.BillRepository
	orderRepo       repository.OrderRepository
	paymentRepo     repository.PaymentRepository
	discountService *DiscountService
	txManager       repository.TxManager
}

// NewBillingService creates a new billing service
func NewBillingService(
	billRepo repository.BillRepository,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	discountService *DiscountService,
	txManager repository.TxManager,
) *BillingService {
	return &BillingService{
		billRepo:        billRepo,
		orderRepo:       orderRepo,
		paymentRepo:     paymentRepo,
		discountService: discountService,
		txManager:       txManager,
	}
}

// ComputeTotal computes a bill total in cents. The discount applies to the
// subtotal; tax and service fee each apply to the discounted subtotal and
// are not compounded. Each step rounds half away from zero.
func ComputeTotal(subtotal int64, discountRate, taxRate, serviceFeeRate float64) int64 {
	discount := int64(math.Round(float64(subtotal) * discountRate))
	preTax := subtotal - discount
	tax := int64(math.Round(float64(preTax) * taxRate))
	fee := int64(math.Round(float64(preTax) * serviceFeeRate))
	return preTax + tax + fee
}

// GenerateBillInput represents the generate bill input. At most one of
// DiscountID and SpecialID may be set; both absent means no discount.
type GenerateBillInput struct {
	OrderID        int
	DiscountID     *int
	SpecialID      *CreateSpecialIDInput
	TaxRate        float64
	ServiceFeeRate float64
}

// GenerateBill prices an order and persists the bill. When a special-ID
// input is attached, the discount is created in the same transaction as the
// bill, so a failing discount leaves no bill behind.
func (s *BillingService) GenerateBill(ctx context.Context, input *GenerateBillInput) (*entity.Bill, error) {
	if input.DiscountID != nil && input.SpecialID != nil {
		return nil, apperror.NewBadRequestError("Provide either an existing discount or a new special ID, not both")
	}
	if input.SpecialID != nil {
		// Validate before any row is written
		if fieldErrors := input.SpecialID.Validate(); len(fieldErrors) > 0 {
			return nil, apperror.NewValidationError(fieldErrors)
		}
	}

	order, err := s.orderRepo.GetWithLineItems(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.IsBilled() {
		return nil, apperror.NewConflictError("Order has already been billed")
	}

	// Live dish prices at generation time
	var subtotal int64
	for _, item := range order.LineItems {
		subtotal += item.Dish.Price * int64(item.Quantity)
	}

	var bill *entity.Bill
	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		discountID := input.DiscountID
		if input.SpecialID != nil {
			entry, err := s.discountService.CreateSpecialID(ctx, input.SpecialID)
			if err != nil {
				return err
			}
			discountID = &entry.DiscountID
		}

		rate, err := s.discountService.RateFor(ctx, discountID)
		if err != nil {
			return err
		}

		total := ComputeTotal(subtotal, rate, input.TaxRate, input.ServiceFeeRate)

		bill = &entity.Bill{
			DiscountID:         discountID,
			TaxRate:            input.TaxRate,
			ServiceFeeRate:     input.ServiceFeeRate,
			Total:              total,
			OutstandingBalance: total,
		}
		if err := s.billRepo.Create(ctx, bill); err != nil {
			return err
		}

		return s.orderRepo.LinkBill(ctx, order.OrderID, bill.BillID)
	})
	if err != nil {
		return nil, err
	}

	return bill, nil
}

// GetBill retrieves a bill by ID
func (s *BillingService) GetBill(ctx context.Context, id int) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBills lists bills
func (s *BillingService) ListBills(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Bill], error) {
	bills, total, err := s.billRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(bills, pag), nil
}

// ListOutstandingBills lists bills that still carry a balance
func (s *BillingService) ListOutstandingBills(ctx context.Context) ([]entity.Bill, error) {
	return s.billRepo.ListOutstanding(ctx)
}

// DeleteBill removes a bill and unlinks its orders, returning them to the
// unbilled surface. Bills with recorded payments are part of the ledger and
// cannot be deleted. The discount record survives deletion.
func (s *BillingService) DeleteBill(ctx context.Context, id int) error {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if bill == nil {
		return apperror.NewNotFoundError("Bill")
	}

	payments, err := s.paymentRepo.ListByBill(ctx, id)
	if err != nil {
		return err
	}
	if len(payments) > 0 {
		return apperror.NewConflictError("Bill has recorded payments")
	}

	return s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.orderRepo.UnlinkBill(ctx, id); err != nil {
			return err
		}
		return s.billRepo.Delete(ctx, id)
	})
}
