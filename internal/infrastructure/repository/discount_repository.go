package repository

import (
	"context"
	"errors"

	"github.com/avillarama/resto-api/internal/domain/entity"
	domainRepo "github.com/avillarama/resto-api/internal/domain/repository"
	"gorm.io/gorm"
)

type discountRepository struct {
	db *gorm.DB
}

// NewDiscountRepository creates a new discount repository
func NewDiscountRepository(db *gorm.DB) domainRepo.DiscountRepository {
	return &discountRepository{db: db}
}

func (r *discountRepository) Create(ctx context.Context, discount *entity.Discount) error {
	return dbFromContext(ctx, r.db).Create(discount).Error
}

func (r *discountRepository) CreateInHouse(ctx context.Context, inhouse *entity.InHouseDiscount) error {
	return dbFromContext(ctx, r.db).Create(inhouse).Error
}

func (r *discountRepository) CreateSpecialID(ctx context.Context, specialID *entity.SpecialIDDiscount) error {
	return dbFromContext(ctx, r.db).Create(specialID).Error
}

func (r *discountRepository) CreateSeniorDetail(ctx context.Context, detail *entity.SeniorDetail) error {
	return dbFromContext(ctx, r.db).Create(detail).Error
}

func (r *discountRepository) CreatePWDDetail(ctx context.Context, detail *entity.PWDDetail) error {
	return dbFromContext(ctx, r.db).Create(detail).Error
}

func (r *discountRepository) GetCatalogEntry(ctx context.Context, id int) (*domainRepo.CatalogEntry, error) {
	var discount entity.Discount
	err := dbFromContext(ctx, r.db).
		Preload("InHouse").
		Preload("SpecialID").
		Preload("SpecialID.Senior").
		Preload("SpecialID.PWD").
		First(&discount, "discount_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	entry := resolveCatalogEntry(&discount)
	return &entry, nil
}

func (r *discountRepository) ListCatalog(ctx context.Context) ([]domainRepo.CatalogEntry, error) {
	var discounts []entity.Discount
	err := dbFromContext(ctx, r.db).
		Preload("InHouse").
		Preload("SpecialID").
		Preload("SpecialID.Senior").
		Preload("SpecialID.PWD").
		Order("discount_id ASC").
		Find(&discounts).Error
	if err != nil {
		return nil, err
	}

	entries := make([]domainRepo.CatalogEntry, 0, len(discounts))
	for i := range discounts {
		entries = append(entries, resolveCatalogEntry(&discounts[i]))
	}
	return entries, nil
}

// resolveCatalogEntry flattens the base row and whichever sub-rows exist
// into the tagged union read model.
func resolveCatalogEntry(d *entity.Discount) domainRepo.CatalogEntry {
	entry := domainRepo.CatalogEntry{
		DiscountID: d.DiscountID,
		Type:       d.Type,
	}

	if d.InHouse != nil {
		entry.Description = d.InHouse.Description
		entry.Rate = d.InHouse.Rate
	}

	if d.SpecialID != nil {
		subtype := d.SpecialID.Subtype
		entry.Subtype = &subtype
		entry.Rate = d.SpecialID.Rate
		entry.MemberID = d.SpecialID.MemberID
		if d.SpecialID.Senior != nil {
			entry.IDNumber = d.SpecialID.Senior.IDNumber
			birthdate := d.SpecialID.Senior.Birthdate
			entry.Birthdate = &birthdate
		}
		if d.SpecialID.PWD != nil {
			entry.IDNumber = d.SpecialID.PWD.IDNumber
			entry.Disability = d.SpecialID.PWD.Disability
		}
	}

	return entry
}
