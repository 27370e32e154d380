package handler

import (
	"time"

	"github.com/avillarama/resto-api/internal/application/service"
	domainRepo "github.com/avillarama/resto-api/internal/domain/repository"
	"github.com/avillarama/resto-api/internal/presentation/http/dto/request"
	"github.com/avillarama/resto-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles placing an order
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.OrderItemInput{
			DishID:   item.DishID,
			Quantity: item.Quantity,
		})
	}

	var orderDate time.Time
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}

	order, err := h.orderService.PlaceOrder(c.Request.Context(), &service.PlaceOrderInput{
		MemberID:  req.MemberID,
		OrderDate: orderDate,
		Items:     items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order placed successfully", order)
}

// Get handles retrieving an order with its line items
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// List handles listing orders. The unbilled=true filter drives the billing
// surface.
func (h *OrderHandler) List(c *gin.Context) {
	params := &domainRepo.OrderFilterParams{
		Pagination: paginationFromQuery(c),
		MemberID:   c.Query("member_id"),
		Unbilled:   c.Query("unbilled") == "true",
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Delete handles removing an unbilled order
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
