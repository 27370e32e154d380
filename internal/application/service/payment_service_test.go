package service

import (
	"context"
	"testing"

	"github.com/avillarama/resto-api/internal/domain/entity"
	"github.com/avillarama/resto-api/internal/domain/enum"
	"github.com/avillarama/resto-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// billedMember sets up a member with one generated bill at the given total
func billedMember(t *testing.T, env *testEnv, total int64) (*entity.Member, *entity.Bill) {
	t.Helper()
	ctx := context.Background()

	member := env.createMember(t, "Test Member")
	dish := env.createDish(t, "Set Meal", total)
	order := env.placeOrder(t, member.MemberID, OrderItemInput{DishID: dish.DishID, Quantity: 1})

	bill, err := env.billing.GenerateBill(ctx, &GenerateBillInput{OrderID: order.OrderID})
	require.NoError(t, err)
	return member, bill
}

func TestApplyPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("amortization sequence", func(t *testing.T) {
		env := newTestEnv(t)
		member, bill := billedMember(t, env, 2520)

		// First payment: $10.00 against $25.20
		first, err := env.payments.ApplyPayment(ctx, &ApplyPaymentInput{
			MemberID:   member.MemberID,
			BillID:     bill.BillID,
			Method:     enum.PaymentMethodCash,
			PaidAmount: 1000,
		})
		require.NoError(t, err)
		assert.Equal(t, enum.PaymentStatusPartial, first.Status)
		assert.Equal(t, int64(1520), first.OutstandingBalance)

		// Second payment: $20.00 overpays the remaining $15.20
		second, err := env.payments.ApplyPayment(ctx, &ApplyPaymentInput{
			MemberID:   member.MemberID,
			BillID:     bill.BillID,
			Method:     enum.PaymentMethodCard,
			PaidAmount: 2000,
		})
		require.NoError(t, err)
		assert.Equal(t, enum.PaymentStatusPaid, second.Status)
		assert.Equal(t, int64(0), second.OutstandingBalance)

		// The bill carries the final balance; its total never changes
		settled, err := env.billing.GetBill(ctx, bill.BillID)
		require.NoError(t, err)
		assert.Equal(t, int64(2520), settled.Total)
		assert.Equal(t, int64(0), settled.OutstandingBalance)
		assert.True(t, settled.IsSettled())
	})

	t.Run("exact payment settles the bill", func(t *testing.T) {
		env := newTestEnv(t)
		member, bill := billedMember(t, env, 3000)

		payment, err := env.payments.ApplyPayment(ctx, &ApplyPaymentInput{
			MemberID:   member.MemberID,
			BillID:     bill.BillID,
			Method:     enum.PaymentMethodEWallet,
			PaidAmount: 3000,
		})
		require.NoError(t, err)
		assert.Equal(t, enum.PaymentStatusPaid, payment.Status)
		assert.Equal(t, int64(0), payment.OutstandingBalance)
	})

	t.Run("payment snapshots are immutable history", func(t *testing.T) {
		env := newTestEnv(t)
		member, bill := billedMember(t, env, 1000)

		amounts := []int64{300, 300, 500}
		balances := []int64{700, 400, 0}
		for i, amount := range amounts {
			payment, err := env.payments.ApplyPayment(ctx, &ApplyPaymentInput{
				MemberID:   member.MemberID,
				BillID:     bill.BillID,
				Method:     enum.PaymentMethodCash,
				PaidAmount: amount,
			})
			require.NoError(t, err)
			assert.Equal(t, balances[i], payment.OutstandingBalance)
		}

		// Earlier snapshots keep the balance they observed
		payments, err := env.paymentRepo.ListByBill(ctx, bill.BillID)
		require.NoError(t, err)
		require.Len(t, payments, 3)
		for i := range payments {
			assert.Equal(t, balances[i], payments[i].OutstandingBalance)
		}
	})

	t.Run("settled bill rejects further payments", func(t *testing.T) {
		env := newTestEnv(t)
		member, bill := billedMember(t, env, 500)

		_, err := env.payments.ApplyPayment(ctx, &ApplyPaymentInput{
			MemberID:   member.MemberID,
			BillID:     bill.BillID,
			Method:     enum.PaymentMethodCash,
			PaidAmount: 500,
		})
		require.NoError(t, err)

		_, err = env.payments.ApplyPayment(ctx, &ApplyPaymentInput{
			MemberID:   member.MemberID,
			BillID:     bill.BillID,
			Method:     enum.PaymentMethodCash,
			PaidAmount: 100,
		})
		require.Error(t, err)
		assert.Equal(t, 409, apperror.GetAppError(err).Code)
	})

	t.Run("validation failures write nothing", func(t *testing.T) {
		env := newTestEnv(t)
		member, bill := billedMember(t, env, 1000)
		before := env.countRows(t, &entity.Payment{})

		tests := []struct {
			name  string
			input ApplyPaymentInput
		}{
			{
				name: "zero amount",
				input: ApplyPaymentInput{
					MemberID: member.MemberID, BillID: bill.BillID,
					Method: enum.PaymentMethodCash, PaidAmount: 0,
				},
			},
			{
				name: "negative amount",
				input: ApplyPaymentInput{
					MemberID: member.MemberID, BillID: bill.BillID,
					Method: enum.PaymentMethodCash, PaidAmount: -100,
				},
			},
			{
				name: "unknown method",
				input: ApplyPaymentInput{
					MemberID: member.MemberID, BillID: bill.BillID,
					Method: "barter", PaidAmount: 100,
				},
			},
			{
				name: "missing member",
				input: ApplyPaymentInput{
					BillID: bill.BillID,
					Method: enum.PaymentMethodCash, PaidAmount: 100,
				},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := env.payments.ApplyPayment(ctx, &tt.input)
				require.Error(t, err)
				assert.Equal(t, 422, apperror.GetAppError(err).Code)
			})
		}

		assert.Equal(t, before, env.countRows(t, &entity.Payment{}))
	})

	t.Run("unknown bill", func(t *testing.T) {
		env := newTestEnv(t)
		member := env.createMember(t, "Kim Lazaro")

		_, err := env.payments.ApplyPayment(ctx, &ApplyPaymentInput{
			MemberID:   member.MemberID,
			BillID:     42,
			Method:     enum.PaymentMethodCash,
			PaidAmount: 100,
		})
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})

	t.Run("payment appends a history entry", func(t *testing.T) {
		env := newTestEnv(t)
		member, bill := billedMember(t, env, 1000)

		payment, err := env.payments.ApplyPayment(ctx, &ApplyPaymentInput{
			MemberID:   member.MemberID,
			BillID:     bill.BillID,
			Method:     enum.PaymentMethodCash,
			PaidAmount: 1000,
		})
		require.NoError(t, err)

		entries, err := env.historyRepo.ListByMember(ctx, member.MemberID)
		require.NoError(t, err)

		// One entry from the order, one from the payment
		require.Len(t, entries, 2)
		assert.Equal(t, enum.HistoryEventPayment, entries[0].EventType)
		require.NotNil(t, entries[0].PaymentID)
		assert.Equal(t, payment.PaymentID, *entries[0].PaymentID)
	})
}
