package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avillarama/resto-api/internal/domain/entity"
	"github.com/avillarama/resto-api/internal/domain/enum"
	"github.com/avillarama/resto-api/internal/domain/repository"
	"github.com/avillarama/resto-api/pkg/apperror"
)

// HistoryService reads the append-only member activity journal and derives
// per-member analytics from it
type HistoryService struct {
	historyRepo   repository.HistoryRepository
	memberRepo    repository.MemberRepository
	orderRepo     repository.OrderRepository
	paymentRepo   repository.PaymentRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewHistoryService creates a new history service
func NewHistoryService(
	historyRepo repository.HistoryRepository,
	memberRepo repository.MemberRepository,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	analyticsRepo repository.AnalyticsRepository,
) *HistoryService {
	return &HistoryService{
		historyRepo:   historyRepo,
		memberRepo:    memberRepo,
		orderRepo:     orderRepo,
		paymentRepo:   paymentRepo,
		analyticsRepo: analyticsRepo,
	}
}

// Append writes one journal entry. The journal is append-only; there is no
// update or delete path.
func (s *HistoryService) Append(ctx context.Context, memberID string, eventType enum.HistoryEvent, orderID, paymentID *int, at time.Time) error {
	return s.historyRepo.Append(ctx, &entity.HistoryEntry{
		MemberID:  memberID,
		EventType: eventType,
		OrderID:   orderID,
		PaymentID: paymentID,
		EventDate: at,
	})
}

// HistoryItem is one journal entry with its description resolved at read
// time from the referenced order or payment
type HistoryItem struct {
	HistoryID   int               `json:"history_id"`
	EventType   enum.HistoryEvent `json:"event_type"`
	EventDate   time.Time         `json:"event_date"`
	Description string            `json:"description"`
	OrderID     *int              `json:"order_id,omitempty"`
	PaymentID   *int              `json:"payment_id,omitempty"`
}

// HistoryFor returns the member's journal, newest first
func (s *HistoryService) HistoryFor(ctx context.Context, memberID string) ([]HistoryItem, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperror.NewNotFoundError("Member")
	}

	entries, err := s.historyRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	items := make([]HistoryItem, 0, len(entries))
	for _, entry := range entries {
		item := HistoryItem{
			HistoryID: entry.HistoryID,
			EventType: entry.EventType,
			EventDate: entry.EventDate,
			OrderID:   entry.OrderID,
			PaymentID: entry.PaymentID,
		}
		item.Description, err = s.describe(ctx, &entry)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// describe resolves the human-readable description of a journal entry
func (s *HistoryService) describe(ctx context.Context, entry *entity.HistoryEntry) (string, error) {
	switch entry.EventType {
	case enum.HistoryEventOrder:
		if entry.OrderID == nil {
			return "Placed an order", nil
		}
		order, err := s.orderRepo.GetByID(ctx, *entry.OrderID)
		if err != nil {
			return "", err
		}
		if order == nil {
			return "Placed an order", nil
		}
		return fmt.Sprintf("Placed order #%d on %s", order.OrderID, order.OrderDate.Format("2006-01-02")), nil
	case enum.HistoryEventPayment:
		if entry.PaymentID == nil {
			return "Made a payment", nil
		}
		payment, err := s.paymentRepo.GetByID(ctx, *entry.PaymentID)
		if err != nil {
			return "", err
		}
		if payment == nil {
			return "Made a payment", nil
		}
		return fmt.Sprintf("Paid %.2f by %s on bill #%d",
			float64(payment.PaidAmount)/100, payment.Method, payment.BillID), nil
	}
	return string(entry.EventType), nil
}

// MemberAnalytics summarizes a member's ordering and payment behavior
type MemberAnalytics struct {
	MemberID      string                          `json:"member_id"`
	TotalOrders   int64                           `json:"total_orders"`
	TopDishes     []repository.TopDishResult      `json:"top_dishes"`
	PaymentCounts *repository.PaymentCountsResult `json:"payment_counts"`
	BillTotals    *repository.BillTotalsResult    `json:"bill_totals"`
}

// topDishLimit caps the most-ordered dish leaderboard
const topDishLimit = 5

// AnalyticsFor computes the member's analytics summary
func (s *HistoryService) AnalyticsFor(ctx context.Context, memberID string) (*MemberAnalytics, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperror.NewNotFoundError("Member")
	}

	orderCount, err := s.analyticsRepo.GetOrderCount(ctx, memberID)
	if err != nil {
		return nil, err
	}

	topDishes, err := s.analyticsRepo.GetTopDishes(ctx, memberID, topDishLimit)
	if err != nil {
		return nil, err
	}

	paymentCounts, err := s.analyticsRepo.GetPaymentCounts(ctx, memberID)
	if err != nil {
		return nil, err
	}

	billTotals, err := s.analyticsRepo.GetBillTotals(ctx, memberID)
	if err != nil {
		return nil, err
	}

	return &MemberAnalytics{
		MemberID:      memberID,
		TotalOrders:   orderCount,
		TopDishes:     topDishes,
		PaymentCounts: paymentCounts,
		BillTotals:    billTotals,
	}, nil
}
