package handler

import (
	"time"

	"github.com/avillarama/resto-api/internal/application/service"
	"github.com/avillarama/resto-api/internal/domain/enum"
	"github.com/avillarama/resto-api/internal/presentation/http/dto/request"
	"github.com/avillarama/resto-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Create handles applying a payment to a bill
func (h *PaymentHandler) Create(c *gin.Context) {
	var req request.ApplyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	var paymentDate time.Time
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	payment, err := h.paymentService.ApplyPayment(c.Request.Context(), &service.ApplyPaymentInput{
		MemberID:    req.MemberID,
		BillID:      req.BillID,
		Method:      enum.PaymentMethod(req.Method),
		PaymentDate: paymentDate,
		PaidAmount:  toCents(req.PaidAmount),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment applied successfully", payment)
}

// Get handles retrieving a payment
func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment retrieved successfully", payment)
}

// List handles listing payments
func (h *PaymentHandler) List(c *gin.Context) {
	params := paginationFromQuery(c)

	result, err := h.paymentService.ListPayments(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Payments retrieved successfully", result)
}
