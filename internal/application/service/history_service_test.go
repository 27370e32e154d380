package service

import (
	"context"
	"testing"

	"github.com/avillarama/resto-api/internal/domain/enum"
	"github.com/avillarama/resto-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryFor(t *testing.T) {
	ctx := context.Background()

	t.Run("journal grows by exactly one entry per event", func(t *testing.T) {
		env := newTestEnv(t)
		member := env.createMember(t, "Abby Bautista")
		dish := env.createDish(t, "Palabok", 1700)

		count, err := env.historyRepo.CountByMember(ctx, member.MemberID)
		require.NoError(t, err)
		assert.Zero(t, count)

		order := env.placeOrder(t, member.MemberID, OrderItemInput{DishID: dish.DishID, Quantity: 1})
		count, err = env.historyRepo.CountByMember(ctx, member.MemberID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		bill, err := env.billing.GenerateBill(ctx, &GenerateBillInput{OrderID: order.OrderID})
		require.NoError(t, err)

		// Billing itself is not a journal event
		count, err = env.historyRepo.CountByMember(ctx, member.MemberID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		_, err = env.payments.ApplyPayment(ctx, &ApplyPaymentInput{
			MemberID:   member.MemberID,
			BillID:     bill.BillID,
			Method:     enum.PaymentMethodCash,
			PaidAmount: bill.Total,
		})
		require.NoError(t, err)

		count, err = env.historyRepo.CountByMember(ctx, member.MemberID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("descriptions resolve from the referenced records", func(t *testing.T) {
		env := newTestEnv(t)
		member := env.createMember(t, "Caloy Del Rosario")
		dish := env.createDish(t, "Inasal", 2100)

		order := env.placeOrder(t, member.MemberID, OrderItemInput{DishID: dish.DishID, Quantity: 1})
		bill, err := env.billing.GenerateBill(ctx, &GenerateBillInput{OrderID: order.OrderID})
		require.NoError(t, err)
		_, err = env.payments.ApplyPayment(ctx, &ApplyPaymentInput{
			MemberID:   member.MemberID,
			BillID:     bill.BillID,
			Method:     enum.PaymentMethodCard,
			PaidAmount: 1000,
		})
		require.NoError(t, err)

		items, err := env.history.HistoryFor(ctx, member.MemberID)
		require.NoError(t, err)
		require.Len(t, items, 2)

		// Newest first: payment then order
		assert.Equal(t, enum.HistoryEventPayment, items[0].EventType)
		assert.Contains(t, items[0].Description, "10.00")
		assert.Contains(t, items[0].Description, "card")

		assert.Equal(t, enum.HistoryEventOrder, items[1].EventType)
		assert.Contains(t, items[1].Description, "2024-06-01")
	})

	t.Run("unknown member", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.history.HistoryFor(ctx, "000000000001")
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})
}

func TestAnalyticsFor(t *testing.T) {
	ctx := context.Background()

	t.Run("empty member has zeroed analytics", func(t *testing.T) {
		env := newTestEnv(t)
		member := env.createMember(t, "Dina Estrada")

		analytics, err := env.history.AnalyticsFor(ctx, member.MemberID)
		require.NoError(t, err)

		assert.Zero(t, analytics.TotalOrders)
		assert.Empty(t, analytics.TopDishes)
		assert.Zero(t, analytics.PaymentCounts.Total)
		assert.Zero(t, analytics.BillTotals.Count)
	})

	t.Run("aggregates orders bills and payments", func(t *testing.T) {
		env := newTestEnv(t)
		member := env.createMember(t, "Edgar Fajardo")
		adobo := env.createDish(t, "Adobo", 1800)
		sinigang := env.createDish(t, "Sinigang", 2500)

		// Two orders: adobo x3 across both, sinigang x1
		first := env.placeOrder(t, member.MemberID,
			OrderItemInput{DishID: adobo.DishID, Quantity: 2},
			OrderItemInput{DishID: sinigang.DishID, Quantity: 1},
		)
		second := env.placeOrder(t, member.MemberID,
			OrderItemInput{DishID: adobo.DishID, Quantity: 1},
		)

		billA, err := env.billing.GenerateBill(ctx, &GenerateBillInput{OrderID: first.OrderID})
		require.NoError(t, err)
		billB, err := env.billing.GenerateBill(ctx, &GenerateBillInput{OrderID: second.OrderID})
		require.NoError(t, err)

		// billA = 6100 settled in two payments, billB = 1800 partially paid
		_, err = env.payments.ApplyPayment(ctx, &ApplyPaymentInput{
			MemberID: member.MemberID, BillID: billA.BillID,
			Method: enum.PaymentMethodCash, PaidAmount: 3000,
		})
		require.NoError(t, err)
		_, err = env.payments.ApplyPayment(ctx, &ApplyPaymentInput{
			MemberID: member.MemberID, BillID: billA.BillID,
			Method: enum.PaymentMethodCash, PaidAmount: 3100,
		})
		require.NoError(t, err)
		_, err = env.payments.ApplyPayment(ctx, &ApplyPaymentInput{
			MemberID: member.MemberID, BillID: billB.BillID,
			Method: enum.PaymentMethodCard, PaidAmount: 500,
		})
		require.NoError(t, err)

		analytics, err := env.history.AnalyticsFor(ctx, member.MemberID)
		require.NoError(t, err)

		assert.Equal(t, int64(2), analytics.TotalOrders)

		require.NotEmpty(t, analytics.TopDishes)
		assert.Equal(t, adobo.DishID, analytics.TopDishes[0].DishID)
		assert.Equal(t, 3, analytics.TopDishes[0].Quantity)

		assert.Equal(t, int64(3), analytics.PaymentCounts.Total)
		assert.Equal(t, int64(1), analytics.PaymentCounts.Full)
		assert.Equal(t, int64(2), analytics.PaymentCounts.Partial)

		assert.Equal(t, int64(2), analytics.BillTotals.Count)
		assert.Equal(t, int64(6100), analytics.BillTotals.Highest)
		assert.Equal(t, int64(1800), analytics.BillTotals.Lowest)
		assert.InDelta(t, 3950.0, analytics.BillTotals.Average, 0.01)
	})
}
