package service

import (
	"context"
	"testing"
	"time"

	"github.com/avillarama/resto-api/internal/domain/entity"
	domainRepo "github.com/avillarama/resto-api/internal/domain/repository"
	infraRepo "github.com/avillarama/resto-api/internal/infrastructure/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&entity.Member{},
		&entity.Dish{},
		&entity.Order{},
		&entity.OrderLineItem{},
		&entity.Discount{},
		&entity.InHouseDiscount{},
		&entity.SpecialIDDiscount{},
		&entity.SeniorDetail{},
		&entity.PWDDetail{},
		&entity.Bill{},
		&entity.Payment{},
		&entity.HistoryEntry{},
		&entity.IdempotencyKey{},
	)
	require.NoError(t, err)

	return db
}

// testEnv wires the full service stack over one test database
type testEnv struct {
	db *gorm.DB

	memberRepo   domainRepo.MemberRepository
	dishRepo     domainRepo.DishRepository
	orderRepo    domainRepo.OrderRepository
	lineItemRepo domainRepo.OrderLineItemRepository
	discountRepo domainRepo.DiscountRepository
	billRepo     domainRepo.BillRepository
	paymentRepo  domainRepo.PaymentRepository
	historyRepo  domainRepo.HistoryRepository

	members   *MemberService
	dishes    *DishService
	orders    *OrderService
	discounts *DiscountService
	billing   *BillingService
	payments  *PaymentService
	history   *HistoryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)

	txManager := infraRepo.NewTxManager(db)
	memberRepo := infraRepo.NewMemberRepository(db)
	dishRepo := infraRepo.NewDishRepository(db)
	orderRepo := infraRepo.NewOrderRepository(db)
	lineItemRepo := infraRepo.NewOrderLineItemRepository(db)
	discountRepo := infraRepo.NewDiscountRepository(db)
	billRepo := infraRepo.NewBillRepository(db)
	paymentRepo := infraRepo.NewPaymentRepository(db)
	historyRepo := infraRepo.NewHistoryRepository(db)
	analyticsRepo := infraRepo.NewAnalyticsRepository(db)

	discounts := NewDiscountService(discountRepo, memberRepo, txManager)

	return &testEnv{
		db:           db,
		memberRepo:   memberRepo,
		dishRepo:     dishRepo,
		orderRepo:    orderRepo,
		lineItemRepo: lineItemRepo,
		discountRepo: discountRepo,
		billRepo:     billRepo,
		paymentRepo:  paymentRepo,
		historyRepo:  historyRepo,
		members:      NewMemberService(memberRepo),
		dishes:       NewDishService(dishRepo),
		orders:       NewOrderService(orderRepo, lineItemRepo, memberRepo, dishRepo, historyRepo, txManager),
		discounts:    discounts,
		billing:      NewBillingService(billRepo, orderRepo, paymentRepo, discounts, txManager),
		payments:     NewPaymentService(paymentRepo, billRepo, memberRepo, historyRepo, txManager),
		history:      NewHistoryService(historyRepo, memberRepo, orderRepo, paymentRepo, analyticsRepo),
	}
}

func (e *testEnv) createMember(t *testing.T, name string) *entity.Member {
	t.Helper()
	member, err := e.members.CreateMember(context.Background(), &CreateMemberInput{
		Name:      name,
		ContactNo: "0917-000-0000",
	})
	require.NoError(t, err)
	return member
}

func (e *testEnv) createDish(t *testing.T, name string, priceCents int64) *entity.Dish {
	t.Helper()
	dish, err := e.dishes.CreateDish(context.Background(), &CreateDishInput{
		Name:  name,
		Price: priceCents,
	})
	require.NoError(t, err)
	return dish
}

func (e *testEnv) placeOrder(t *testing.T, memberID string, items ...OrderItemInput) *entity.Order {
	t.Helper()
	order, err := e.orders.PlaceOrder(context.Background(), &PlaceOrderInput{
		MemberID:  memberID,
		OrderDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Items:     items,
	})
	require.NoError(t, err)
	return order
}

func (e *testEnv) countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(model).Count(&count).Error)
	return count
}
