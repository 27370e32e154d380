package repository

import (
	"context"
	"errors"

	"github.com/avillarama/resto-api/internal/domain/entity"
	domainRepo "github.com/avillarama/resto-api/internal/domain/repository"
	"github.com/avillarama/resto-api/pkg/pagination"
	"gorm.io/gorm"
)

type dishRepository struct {
	db *gorm.DB
}

// NewDishRepository creates a new dish repository
func NewDishRepository(db *gorm.DB) domainRepo.DishRepository {
	return &dishRepository{db: db}
}

func (r *dishRepository) Create(ctx context.Context, dish *entity.Dish) error {
	return dbFromContext(ctx, r.db).Create(dish).Error
}

func (r *dishRepository) GetByID(ctx context.Context, id int) (*entity.Dish, error) {
	var dish entity.Dish
	err := dbFromContext(ctx, r.db).First(&dish, "dish_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &dish, err
}

func (r *dishRepository) GetByIDs(ctx context.Context, ids []int) ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := dbFromContext(ctx, r.db).Where("dish_id IN ?", ids).Find(&dishes).Error
	return dishes, err
}

func (r *dishRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Dish, int64, error) {
	var dishes []entity.Dish
	var total int64

	query := dbFromContext(ctx, r.db).Model(&entity.Dish{})
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&dishes).Error

	return dishes, total, err
}

func (r *dishRepository) Update(ctx context.Context, dish *entity.Dish) error {
	return dbFromContext(ctx, r.db).Save(dish).Error
}

func (r *dishRepository) Delete(ctx context.Context, id int) error {
	return dbFromContext(ctx, r.db).Delete(&entity.Dish{}, "dish_id = ?", id).Error
}
