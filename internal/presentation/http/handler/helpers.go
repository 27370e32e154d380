package handler

import (
	"math"
	"strconv"

	"github.com/avillarama/resto-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// paginationFromQuery reads page-based pagination parameters from the query
// string
func paginationFromQuery(c *gin.Context) *pagination.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
	params.Validate()
	return params
}

// intParam parses an integer path parameter
func intParam(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil || value < 1 {
		return 0, false
	}
	return value, true
}

// toCents converts a decimal money amount to cents
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
