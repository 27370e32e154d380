package handler

import (
	"github.com/avillarama/resto-api/internal/application/service"
	"github.com/avillarama/resto-api/internal/presentation/http/dto/request"
	"github.com/avillarama/resto-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// DishHandler handles menu dish HTTP requests
type DishHandler struct {
	dishService *service.DishService
}

// NewDishHandler creates a new dish handler
func NewDishHandler(dishService *service.DishService) *DishHandler {
	return &DishHandler{dishService: dishService}
}

// Create handles adding a dish
func (h *DishHandler) Create(c *gin.Context) {
	var req request.CreateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	dish, err := h.dishService.CreateDish(c.Request.Context(), &service.CreateDishInput{
		Name:  req.Name,
		Price: toCents(req.Price),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Dish created successfully", dish)
}

// Get handles retrieving a dish
func (h *DishHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid dish ID")
		return
	}

	dish, err := h.dishService.GetDish(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dish retrieved successfully", dish)
}

// List handles listing dishes
func (h *DishHandler) List(c *gin.Context) {
	params := paginationFromQuery(c)
	search := c.Query("search")

	result, err := h.dishService.ListDishes(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Dishes retrieved successfully", result)
}

// Update handles updating a dish
func (h *DishHandler) Update(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid dish ID")
		return
	}

	var req request.UpdateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateDishInput{
		ID:   id,
		Name: req.Name,
	}
	if req.Price != nil {
		price := toCents(*req.Price)
		input.Price = &price
	}

	dish, err := h.dishService.UpdateDish(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dish updated successfully", dish)
}

// Delete handles removing a dish
func (h *DishHandler) Delete(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid dish ID")
		return
	}

	if err := h.dishService.DeleteDish(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
