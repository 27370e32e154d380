package repository

import (
	"context"

	"github.com/avillarama/resto-api/internal/domain/entity"
	"github.com/avillarama/resto-api/pkg/pagination"
)

// MemberRepository defines the interface for member data operations
type MemberRepository interface {
	Create(ctx context.Context, member *entity.Member) error
	GetByID(ctx context.Context, id string) (*entity.Member, error)
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Member, int64, error)
	Update(ctx context.Context, member *entity.Member) error
	Delete(ctx context.Context, id string) error
}
