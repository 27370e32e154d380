package service

import (
	"context"

	"github.com/avillarama/resto-api/internal/domain/entity"
	"github.com/avillarama/resto-api/internal/domain/repository"
	"github.com/avillarama/resto-api/pkg/apperror"
	"github.com/avillarama/resto-api/pkg/pagination"
)

// DishService handles menu dish operations
type DishService struct {
	dishRepo repository.DishRepository
}

// NewDishService creates a new dish service
func NewDishService(dishRepo repository.DishRepository) *DishService {
	return &DishService{dishRepo: dishRepo}
}

// CreateDishInput represents the create dish input. Price is in cents.
type CreateDishInput struct {
	Name  string
	Price int64
}

// CreateDish adds a new dish to the menu
func (s *DishService) CreateDish(ctx context.Context, input *CreateDishInput) (*entity.Dish, error) {
	var fieldErrors []apperror.FieldError
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if input.Price < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "Price cannot be negative"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	dish := &entity.Dish{
		Name:  input.Name,
		Price: input.Price,
	}

	if err := s.dishRepo.Create(ctx, dish); err != nil {
		return nil, err
	}

	return dish, nil
}

// GetDish retrieves a dish by ID
func (s *DishService) GetDish(ctx context.Context, id int) (*entity.Dish, error) {
	dish, err := s.dishRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, apperror.NewNotFoundError("Dish")
	}
	return dish, nil
}

// ListDishes lists dishes with optional name search
func (s *DishService) ListDishes(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Dish], error) {
	dishes, total, err := s.dishRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(dishes, pag), nil
}

// UpdateDishInput represents the update dish input
type UpdateDishInput struct {
	ID    int
	Name  *string
	Price *int64
}

// UpdateDish updates a dish. Bills already generated keep their totals;
// only future bills see the new price.
func (s *DishService) UpdateDish(ctx context.Context, input *UpdateDishInput) (*entity.Dish, error) {
	dish, err := s.GetDish(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		dish.Name = *input.Name
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "price", Message: "Price cannot be negative"},
			})
		}
		dish.Price = *input.Price
	}

	if err := s.dishRepo.Update(ctx, dish); err != nil {
		return nil, err
	}

	return dish, nil
}

// DeleteDish removes a dish from the menu
func (s *DishService) DeleteDish(ctx context.Context, id int) error {
	if _, err := s.GetDish(ctx, id); err != nil {
		return err
	}
	return s.dishRepo.Delete(ctx, id)
}
