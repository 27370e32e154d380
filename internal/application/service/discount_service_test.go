package service

import (
	"context"
	"testing"
	"time"

	"github.com/avillarama/resto-api/internal/domain/entity"
	"github.com/avillarama/resto-api/internal/domain/enum"
	"github.com/avillarama/resto-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInHouse(t *testing.T) {
	ctx := context.Background()

	t.Run("creates base and inhouse rows", func(t *testing.T) {
		env := newTestEnv(t)

		entry, err := env.discounts.CreateInHouse(ctx, &CreateInHouseInput{
			Description: "Weekday lunch promo",
			Rate:        0.10,
		})
		require.NoError(t, err)

		assert.Equal(t, enum.DiscountTypeInHouse, entry.Type)
		assert.Equal(t, "Weekday lunch promo", entry.Description)
		assert.Equal(t, 0.10, entry.Rate)

		assert.Equal(t, int64(1), env.countRows(t, &entity.Discount{}))
		assert.Equal(t, int64(1), env.countRows(t, &entity.InHouseDiscount{}))
	})

	t.Run("rate outside unit interval is rejected", func(t *testing.T) {
		env := newTestEnv(t)

		for _, rate := range []float64{-0.1, 1.5} {
			_, err := env.discounts.CreateInHouse(ctx, &CreateInHouseInput{
				Description: "Bad promo",
				Rate:        rate,
			})
			require.Error(t, err)
			assert.Equal(t, 422, apperror.GetAppError(err).Code)
		}

		assert.Zero(t, env.countRows(t, &entity.Discount{}))
	})
}

func TestCreateSpecialID(t *testing.T) {
	ctx := context.Background()
	birthdate := time.Date(1948, 11, 2, 0, 0, 0, 0, time.UTC)

	t.Run("senior writes all three rows", func(t *testing.T) {
		env := newTestEnv(t)
		member := env.createMember(t, "Lola Mendoza")

		entry, err := env.discounts.CreateSpecialID(ctx, &CreateSpecialIDInput{
			MemberID:  member.MemberID,
			Subtype:   enum.SpecialIDTypeSenior,
			IDNumber:  "SC-12345",
			Birthdate: &birthdate,
		})
		require.NoError(t, err)

		assert.Equal(t, enum.DiscountTypeSpecialID, entry.Type)
		require.NotNil(t, entry.Subtype)
		assert.Equal(t, enum.SpecialIDTypeSenior, *entry.Subtype)
		assert.Equal(t, entity.SpecialIDRate, entry.Rate)
		assert.Equal(t, "SC-12345", entry.IDNumber)
		require.NotNil(t, entry.Birthdate)
		assert.True(t, entry.Birthdate.Equal(birthdate))

		assert.Equal(t, int64(1), env.countRows(t, &entity.Discount{}))
		assert.Equal(t, int64(1), env.countRows(t, &entity.SpecialIDDiscount{}))
		assert.Equal(t, int64(1), env.countRows(t, &entity.SeniorDetail{}))
		assert.Zero(t, env.countRows(t, &entity.PWDDetail{}))
	})

	t.Run("pwd writes all three rows", func(t *testing.T) {
		env := newTestEnv(t)
		member := env.createMember(t, "Nilo Ocampo")

		entry, err := env.discounts.CreateSpecialID(ctx, &CreateSpecialIDInput{
			MemberID:   member.MemberID,
			Subtype:    enum.SpecialIDTypePWD,
			IDNumber:   "PWD-777",
			Disability: "Visual impairment",
		})
		require.NoError(t, err)

		require.NotNil(t, entry.Subtype)
		assert.Equal(t, enum.SpecialIDTypePWD, *entry.Subtype)
		assert.Equal(t, "Visual impairment", entry.Disability)
		assert.Equal(t, int64(1), env.countRows(t, &entity.PWDDetail{}))
	})

	t.Run("validation matrix leaves zero rows", func(t *testing.T) {
		env := newTestEnv(t)
		member := env.createMember(t, "Olga Pascual")

		tests := []struct {
			name  string
			input CreateSpecialIDInput
		}{
			{
				name: "senior without birthdate",
				input: CreateSpecialIDInput{
					MemberID: member.MemberID,
					Subtype:  enum.SpecialIDTypeSenior,
					IDNumber: "SC-1",
				},
			},
			{
				name: "pwd without disability",
				input: CreateSpecialIDInput{
					MemberID: member.MemberID,
					Subtype:  enum.SpecialIDTypePWD,
					IDNumber: "PWD-1",
				},
			},
			{
				name: "unknown subtype",
				input: CreateSpecialIDInput{
					MemberID: member.MemberID,
					Subtype:  "X",
					IDNumber: "ID-1",
				},
			},
			{
				name: "missing id number",
				input: CreateSpecialIDInput{
					MemberID:  member.MemberID,
					Subtype:   enum.SpecialIDTypeSenior,
					Birthdate: &birthdate,
				},
			},
			{
				name: "id number too long",
				input: CreateSpecialIDInput{
					MemberID:  member.MemberID,
					Subtype:   enum.SpecialIDTypeSenior,
					IDNumber:  "1234567890123",
					Birthdate: &birthdate,
				},
			},
			{
				name: "missing member id",
				input: CreateSpecialIDInput{
					Subtype:   enum.SpecialIDTypeSenior,
					IDNumber:  "SC-1",
					Birthdate: &birthdate,
				},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := env.discounts.CreateSpecialID(ctx, &tt.input)
				require.Error(t, err)
				assert.Equal(t, 422, apperror.GetAppError(err).Code)
			})
		}

		assert.Zero(t, env.countRows(t, &entity.Discount{}))
		assert.Zero(t, env.countRows(t, &entity.SpecialIDDiscount{}))
		assert.Zero(t, env.countRows(t, &entity.SeniorDetail{}))
		assert.Zero(t, env.countRows(t, &entity.PWDDetail{}))
	})

	t.Run("unknown member is rejected", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.discounts.CreateSpecialID(ctx, &CreateSpecialIDInput{
			MemberID:  "000000000000",
			Subtype:   enum.SpecialIDTypeSenior,
			IDNumber:  "SC-9",
			Birthdate: &birthdate,
		})
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})
}

func TestRateFor(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	member := env.createMember(t, "Pia Quizon")

	inhouse, err := env.discounts.CreateInHouse(ctx, &CreateInHouseInput{
		Description: "Promo",
		Rate:        0.05,
	})
	require.NoError(t, err)

	birthdate := time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)
	special, err := env.discounts.CreateSpecialID(ctx, &CreateSpecialIDInput{
		MemberID:  member.MemberID,
		Subtype:   enum.SpecialIDTypeSenior,
		IDNumber:  "SC-5",
		Birthdate: &birthdate,
	})
	require.NoError(t, err)

	t.Run("nil means no discount", func(t *testing.T) {
		rate, err := env.discounts.RateFor(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, rate)
	})

	t.Run("inhouse resolves the stored rate", func(t *testing.T) {
		rate, err := env.discounts.RateFor(ctx, &inhouse.DiscountID)
		require.NoError(t, err)
		assert.Equal(t, 0.05, rate)
	})

	t.Run("special ID always resolves the fixed rate", func(t *testing.T) {
		rate, err := env.discounts.RateFor(ctx, &special.DiscountID)
		require.NoError(t, err)
		assert.Equal(t, entity.SpecialIDRate, rate)
	})

	t.Run("unknown discount", func(t *testing.T) {
		missing := 999
		_, err := env.discounts.RateFor(ctx, &missing)
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})
}

func TestListCatalog(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	member := env.createMember(t, "Rey Santos")

	_, err := env.discounts.CreateInHouse(ctx, &CreateInHouseInput{Description: "Promo", Rate: 0.10})
	require.NoError(t, err)

	birthdate := time.Date(1955, 5, 5, 0, 0, 0, 0, time.UTC)
	_, err = env.discounts.CreateSpecialID(ctx, &CreateSpecialIDInput{
		MemberID:  member.MemberID,
		Subtype:   enum.SpecialIDTypeSenior,
		IDNumber:  "SC-3",
		Birthdate: &birthdate,
	})
	require.NoError(t, err)

	catalog, err := env.discounts.ListCatalog(ctx)
	require.NoError(t, err)
	require.Len(t, catalog, 2)

	assert.Equal(t, enum.DiscountTypeInHouse, catalog[0].Type)
	assert.Equal(t, "Promo", catalog[0].Description)
	assert.Equal(t, enum.DiscountTypeSpecialID, catalog[1].Type)
	assert.Equal(t, member.MemberID, catalog[1].MemberID)
}
