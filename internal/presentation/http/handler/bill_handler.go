package handler

import (
	"github.com/avillarama/resto-api/internal/application/service"
	"github.com/avillarama/resto-api/internal/config"
	"github.com/avillarama/resto-api/internal/domain/enum"
	"github.com/avillarama/resto-api/internal/presentation/http/dto/request"
	"github.com/avillarama/resto-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// BillHandler handles billing HTTP requests
type BillHandler struct {
	billingService *service.BillingService
	billingCfg     *config.BillingConfig
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billingService *service.BillingService, billingCfg *config.BillingConfig) *BillHandler {
	return &BillHandler{billingService: billingService, billingCfg: billingCfg}
}

// Defaults handles retrieving the default rates offered by the billing form
func (h *BillHandler) Defaults(c *gin.Context) {
	response.OK(c, "Billing defaults retrieved successfully", gin.H{
		"tax_rate":         h.billingCfg.DefaultTaxRate,
		"service_fee_rate": h.billingCfg.DefaultServiceFeeRate,
	})
}

// Create handles generating a bill for an order
func (h *BillHandler) Create(c *gin.Context) {
	var req request.GenerateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.GenerateBillInput{
		OrderID:        req.OrderID,
		DiscountID:     req.DiscountID,
		TaxRate:        req.TaxRate,
		ServiceFeeRate: req.ServiceFeeRate,
	}
	if req.SpecialID != nil {
		input.SpecialID = &service.CreateSpecialIDInput{
			MemberID:   req.SpecialID.MemberID,
			Subtype:    enum.SpecialIDType(req.SpecialID.Subtype),
			IDNumber:   req.SpecialID.IDNumber,
			Birthdate:  req.SpecialID.Birthdate,
			Disability: req.SpecialID.Disability,
		}
	}

	bill, err := h.billingService.GenerateBill(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill generated successfully", bill)
}

// Get handles retrieving a bill
func (h *BillHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.billingService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// List handles listing bills
func (h *BillHandler) List(c *gin.Context) {
	params := paginationFromQuery(c)

	result, err := h.billingService.ListBills(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// ListOutstanding handles listing bills that still carry a balance
func (h *BillHandler) ListOutstanding(c *gin.Context) {
	bills, err := h.billingService.ListOutstandingBills(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Outstanding bills retrieved successfully", bills)
}

// Delete handles removing an unpaid bill
func (h *BillHandler) Delete(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	if err := h.billingService.DeleteBill(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
