package repository

import (
	"context"
	"time"

	"github.com/avillarama/resto-api/internal/domain/entity"
	"github.com/avillarama/resto-api/internal/domain/enum"
)

// CatalogEntry is the normalized read model of a discount: the four discount
// tables merged into one tagged union, resolved once at read time.
type CatalogEntry struct {
	DiscountID  int                 `json:"discount_id"`
	Type        enum.DiscountType   `json:"type"`
	Subtype     *enum.SpecialIDType `json:"subtype,omitempty"`
	Description string              `json:"description,omitempty"`
	Rate        float64             `json:"rate"`
	MemberID    string              `json:"member_id,omitempty"`
	IDNumber    string              `json:"id_number,omitempty"`
	Birthdate   *time.Time          `json:"birthdate,omitempty"`
	Disability  string              `json:"disability,omitempty"`
}

// DiscountRepository defines the interface for discount data operations.
// The Create* methods write single rows; multi-row creation is composed by
// the service inside a TxManager transaction.
type DiscountRepository interface {
	Create(ctx context.Context, discount *entity.Discount) error
	CreateInHouse(ctx context.Context, inhouse *entity.InHouseDiscount) error
	CreateSpecialID(ctx context.Context, specialID *entity.SpecialIDDiscount) error
	CreateSeniorDetail(ctx context.Context, detail *entity.SeniorDetail) error
	CreatePWDDetail(ctx context.Context, detail *entity.PWDDetail) error
	GetCatalogEntry(ctx context.Context, id int) (*CatalogEntry, error)
	ListCatalog(ctx context.Context) ([]CatalogEntry, error)
}
