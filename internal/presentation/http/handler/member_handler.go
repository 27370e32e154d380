package handler

import (
	"github.com/avillarama/resto-api/internal/application/service"
	"github.com/avillarama/resto-api/internal/presentation/http/dto/request"
	"github.com/avillarama/resto-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// MemberHandler handles member-related HTTP requests
type MemberHandler struct {
	memberService  *service.MemberService
	historyService *service.HistoryService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *service.MemberService, historyService *service.HistoryService) *MemberHandler {
	return &MemberHandler{memberService: memberService, historyService: historyService}
}

// Create handles registering a member
func (h *MemberHandler) Create(c *gin.Context) {
	var req request.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	member, err := h.memberService.CreateMember(c.Request.Context(), &service.CreateMemberInput{
		Name:      req.Name,
		ContactNo: req.ContactNo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Member registered successfully", member)
}

// Get handles retrieving a member
func (h *MemberHandler) Get(c *gin.Context) {
	member, err := h.memberService.GetMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Member retrieved successfully", member)
}

// List handles listing members
func (h *MemberHandler) List(c *gin.Context) {
	params := paginationFromQuery(c)
	search := c.Query("search")

	result, err := h.memberService.ListMembers(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Members retrieved successfully", result)
}

// Update handles updating a member
func (h *MemberHandler) Update(c *gin.Context) {
	var req request.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	member, err := h.memberService.UpdateMember(c.Request.Context(), &service.UpdateMemberInput{
		ID:        c.Param("id"),
		Name:      req.Name,
		ContactNo: req.ContactNo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Member updated successfully", member)
}

// Delete handles deleting a member
func (h *MemberHandler) Delete(c *gin.Context) {
	if err := h.memberService.DeleteMember(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// History handles retrieving a member's activity journal
func (h *MemberHandler) History(c *gin.Context) {
	items, err := h.historyService.HistoryFor(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Member history retrieved successfully", items)
}

// Analytics handles retrieving a member's analytics summary
func (h *MemberHandler) Analytics(c *gin.Context) {
	analytics, err := h.historyService.AnalyticsFor(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Member analytics retrieved successfully", analytics)
}
