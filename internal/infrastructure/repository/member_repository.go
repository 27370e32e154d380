package repository

import (
	"context"
	"errors"

	"github.com/avillarama/resto-api/internal/domain/entity"
	domainRepo "github.com/avillarama/resto-api/internal/domain/repository"
	"github.com/avillarama/resto-api/pkg/pagination"
	"gorm.io/gorm"
)

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) domainRepo.MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	return dbFromContext(ctx, r.db).Create(member).Error
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*entity.Member, error) {
	var member entity.Member
	err := dbFromContext(ctx, r.db).First(&member, "member_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &member, err
}

func (r *memberRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Member, int64, error) {
	var members []entity.Member
	var total int64

	query := dbFromContext(ctx, r.db).Model(&entity.Member{})
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&members).Error

	return members, total, err
}

func (r *memberRepository) Update(ctx context.Context, member *entity.Member) error {
	return dbFromContext(ctx, r.db).Save(member).Error
}

func (r *memberRepository) Delete(ctx context.Context, id string) error {
	return dbFromContext(ctx, r.db).Delete(&entity.Member{}, "member_id = ?", id).Error
}
