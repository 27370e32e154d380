package repository

import (
	"context"

	"github.com/avillarama/resto-api/internal/domain/entity"
	"github.com/avillarama/resto-api/pkg/pagination"
)

// DishRepository defines the interface for dish data operations
type DishRepository interface {
	Create(ctx context.Context, dish *entity.Dish) error
	GetByID(ctx context.Context, id int) (*entity.Dish, error)
	GetByIDs(ctx context.Context, ids []int) ([]entity.Dish, error)
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Dish, int64, error)
	Update(ctx context.Context, dish *entity.Dish) error
	Delete(ctx context.Context, id int) error
}
