package handler

import (
	"github.com/avillarama/resto-api/internal/application/service"
	"github.com/avillarama/resto-api/internal/domain/enum"
	"github.com/avillarama/resto-api/internal/presentation/http/dto/request"
	"github.com/avillarama/resto-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// DiscountHandler handles discount-related HTTP requests
type DiscountHandler struct {
	discountService *service.DiscountService
}

// NewDiscountHandler creates a new discount handler
func NewDiscountHandler(discountService *service.DiscountService) *DiscountHandler {
	return &DiscountHandler{discountService: discountService}
}

// List handles listing the discount catalog
func (h *DiscountHandler) List(c *gin.Context) {
	catalog, err := h.discountService.ListCatalog(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount catalog retrieved successfully", catalog)
}

// Get handles retrieving one discount
func (h *DiscountHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid discount ID")
		return
	}

	entry, err := h.discountService.GetCatalogEntry(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount retrieved successfully", entry)
}

// CreateInHouse handles creating an in-house discount
func (h *DiscountHandler) CreateInHouse(c *gin.Context) {
	var req request.CreateInHouseDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	entry, err := h.discountService.CreateInHouse(c.Request.Context(), &service.CreateInHouseInput{
		Description: req.Description,
		Rate:        req.Rate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Discount created successfully", entry)
}

// CreateSpecialID handles creating a special-ID discount
func (h *DiscountHandler) CreateSpecialID(c *gin.Context) {
	var req request.CreateSpecialIDDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	entry, err := h.discountService.CreateSpecialID(c.Request.Context(), &service.CreateSpecialIDInput{
		MemberID:   req.MemberID,
		Subtype:    enum.SpecialIDType(req.Subtype),
		IDNumber:   req.IDNumber,
		Birthdate:  req.Birthdate,
		Disability: req.Disability,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Discount created successfully", entry)
}
