package service

import (
	"context"
	"time"

	"github.com/avillarama/resto-api/internal/domain/entity"
	"github.com/avillarama/resto-api/internal/domain/enum"
	"github.com/avillarama/resto-api/internal/domain/repository"
	"github.com/avillarama/resto-api/pkg/apperror"
	"github.com/avillarama/resto-api/pkg/pagination"
)

// PaymentService records payments against bills. Payments are insert-only:
// once applied they are never updated, reversed or deleted.
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	billRepo    repository.BillRepository
	memberRepo  repository.MemberRepository
	historyRepo repository.HistoryRepository
	txManager   repository.TxManager
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	billRepo repository.BillRepository,
	memberRepo repository.MemberRepository,
	historyRepo repository.HistoryRepository,
	txManager repository.TxManager,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		billRepo:    billRepo,
		memberRepo:  memberRepo,
		historyRepo: historyRepo,
		txManager:   txManager,
	}
}

// ApplyPaymentInput represents the apply payment input. PaidAmount is in
// cents.
type ApplyPaymentInput struct {
	MemberID    string
	BillID      int
	Method      enum.PaymentMethod
	PaymentDate time.Time
	PaidAmount  int64
}

// ApplyPayment amortizes a payment against a bill. The new balance is the
// old balance minus the paid amount, floored at zero; an overpayment settles
// the bill without recording change. The payment row, the bill balance
// update and the member history entry commit together.
func (s *PaymentService) ApplyPayment(ctx context.Context, input *ApplyPaymentInput) (*entity.Payment, error) {
	var fieldErrors []apperror.FieldError
	if input.MemberID == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "member_id", Message: "Member ID is required"})
	}
	if !input.Method.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "method", Message: "Invalid payment method"})
	}
	if input.PaidAmount <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "paid_amount", Message: "Paid amount must be greater than zero"})
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

	bill, err := s.billRepo.GetByID(ctx, input.BillID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	if bill.IsSettled() {
		return nil, apperror.NewConflictError("Bill is already settled")
	}

	paymentDate := input.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}

	newBalance := bill.OutstandingBalance - input.PaidAmount
	if newBalance < 0 {
		newBalance = 0
	}

	status := enum.PaymentStatusPartial
	if newBalance == 0 {
		status = enum.PaymentStatusPaid
	}

	payment := &entity.Payment{
		MemberID:           input.MemberID,
		BillID:             input.BillID,
		Method:             input.Method,
		PaymentDate:        paymentDate,
		PaidAmount:         input.PaidAmount,
		Status:             status,
		OutstandingBalance: newBalance,
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.paymentRepo.Create(ctx, payment); err != nil {
			return err
		}

		if err := s.billRepo.UpdateOutstandingBalance(ctx, input.BillID, newBalance); err != nil {
			return err
		}

		paymentID := payment.PaymentID
		return s.historyRepo.Append(ctx, &entity.HistoryEntry{
			MemberID:  input.MemberID,
			EventType: enum.HistoryEventPayment,
			PaymentID: &paymentID,
			EventDate: paymentDate,
		})
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

// GetPayment retrieves a payment by ID
func (s *PaymentService) GetPayment(ctx context.Context, id int) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}
	return payment, nil
}

// ListPayments lists payments
func (s *PaymentService) ListPayments(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Payment], error) {
	payments, total, err := s.paymentRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(payments, pag), nil
}
