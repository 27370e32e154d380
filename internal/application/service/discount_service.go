package service

import (
	"context"
	"time"

	"github.com/avillarama/resto-api/internal/domain/entity"
	"github.com/avillarama/resto-api/internal/domain/enum"
	"github.com/avillarama/resto-api/internal/domain/repository"
	"github.com/avillarama/resto-api/pkg/apperror"
)

// DiscountService resolves and creates discounts. Discounts are immutable:
// there are no update or delete operations.
type DiscountService struct {
	discountRepo repository.DiscountRepository
	memberRepo   repository.MemberRepository
	txManager    repository.TxManager
}

// NewDiscountService creates a new discount service
func NewDiscountService(
	discountRepo repository.DiscountRepository,
	memberRepo repository.MemberRepository,
	txManager repository.TxManager,
) *DiscountService {
	return &DiscountService{
		discountRepo: discountRepo,
		memberRepo:   memberRepo,
		txManager:    txManager,
	}
}

// ListCatalog returns every discount as a normalized catalog entry
func (s *DiscountService) ListCatalog(ctx context.Context) ([]repository.CatalogEntry, error) {
	return s.discountRepo.ListCatalog(ctx)
}

// GetCatalogEntry retrieves one discount as a normalized catalog entry
func (s *DiscountService) GetCatalogEntry(ctx context.Context, id int) (*repository.CatalogEntry, error) {
	entry, err := s.discountRepo.GetCatalogEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NewNotFoundError("Discount")
	}
	return entry, nil
}

// RateFor resolves the discount rate to apply for a bill. A nil discount ID
// means no discount and resolves to zero.
func (s *DiscountService) RateFor(ctx context.Context, discountID *int) (float64, error) {
	if discountID == nil {
		return 0, nil
	}

	entry, err := s.GetCatalogEntry(ctx, *discountID)
	if err != nil {
		return 0, err
	}

	if entry.Type == enum.DiscountTypeSpecialID {
		// Fixed statutory rate regardless of subtype
		return entity.SpecialIDRate, nil
	}
	return entry.Rate, nil
}

// CreateInHouseInput represents the create in-house discount input
type CreateInHouseInput struct {
	Description string
	Rate        float64
}

// CreateInHouse creates an in-house discount: base row plus in-house row,
// both in one transaction
func (s *DiscountService) CreateInHouse(ctx context.Context, input *CreateInHouseInput) (*repository.CatalogEntry, error) {
	var fieldErrors []apperror.FieldError
	if input.Description == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "description", Message: "Description is required"})
	}
	if input.Rate < 0 || input.Rate > 1 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "rate", Message: "Rate must be between 0 and 1"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	var discountID int
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		discount := &entity.Discount{Type: enum.DiscountTypeInHouse}
		if err := s.discountRepo.Create(ctx, discount); err != nil {
			return err
		}

		inhouse := &entity.InHouseDiscount{
			DiscountID:  discount.DiscountID,
			Description: input.Description,
			Rate:        input.Rate,
		}
		if err := s.discountRepo.CreateInHouse(ctx, inhouse); err != nil {
			return err
		}

		discountID = discount.DiscountID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.discountRepo.GetCatalogEntry(ctx, discountID)
}

// CreateSpecialIDInput represents the create special-ID discount input
type CreateSpecialIDInput struct {
	MemberID   string
	Subtype    enum.SpecialIDType
	IDNumber   string
	Birthdate  *time.Time // Required for senior
	Disability string     // Required for PWD
}

// Validate checks the special-ID input before any row is written. A senior
// discount requires a birthdate and a PWD discount requires a disability;
// an invalid input produces zero rows.
func (input *CreateSpecialIDInput) Validate() []apperror.FieldError {
	var fieldErrors []apperror.FieldError

	if input.MemberID == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "member_id", Message: "Member ID is required"})
	}
	if !input.Subtype.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "subtype", Message: "Subtype must be senior or PWD"})
	}
	if input.IDNumber == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "id_number", Message: "ID number is required"})
	} else if len(input.IDNumber) > 12 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "id_number", Message: "ID number cannot exceed 12 characters"})
	}

	switch input.Subtype {
	case enum.SpecialIDTypeSenior:
		if input.Birthdate == nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "birthdate", Message: "Birthdate is required for senior discounts"})
		}
	case enum.SpecialIDTypePWD:
		if input.Disability == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "disability", Message: "Disability is required for PWD discounts"})
		}
	}

	return fieldErrors
}

// CreateSpecialID creates a special-ID discount: base row, special-ID row at
// the fixed rate, and the senior-or-pwd detail row, all in one transaction
func (s *DiscountService) CreateSpecialID(ctx context.Context, input *CreateSpecialIDInput) (*repository.CatalogEntry, error) {
	if fieldErrors := input.Validate(); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	member, err := s.memberRepo.GetByID(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperror.NewNotFoundError("Member")
	}

	var discountID int
	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		discount := &entity.Discount{Type: enum.DiscountTypeSpecialID}
		if err := s.discountRepo.Create(ctx, discount); err != nil {
			return err
		}

		specialID := &entity.SpecialIDDiscount{
			DiscountID: discount.DiscountID,
			MemberID:   input.MemberID,
			Rate:       entity.SpecialIDRate,
			Subtype:    input.Subtype,
		}
		if err := s.discountRepo.CreateSpecialID(ctx, specialID); err != nil {
			return err
		}

		switch input.Subtype {
		case enum.SpecialIDTypeSenior:
			detail := &entity.SeniorDetail{
				DiscountID: discount.DiscountID,
				IDNumber:   input.IDNumber,
				Birthdate:  *input.Birthdate,
			}
			if err := s.discountRepo.CreateSeniorDetail(ctx, detail); err != nil {
				return err
			}
		case enum.SpecialIDTypePWD:
			detail := &entity.PWDDetail{
				DiscountID: discount.DiscountID,
				IDNumber:   input.IDNumber,
				Disability: input.Disability,
			}
			if err := s.discountRepo.CreatePWDDetail(ctx, detail); err != nil {
				return err
			}
		}

		discountID = discount.DiscountID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.discountRepo.GetCatalogEntry(ctx, discountID)
}
