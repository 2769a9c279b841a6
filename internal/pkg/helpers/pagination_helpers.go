package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // page numbers are 1-based
)

// CalculateOffsetLimit calculates the offset and limit for SQL queries based on a
// 1-based page index. Out-of-range values are clamped to the defaults, so a
// page below 1 can never produce a negative offset.
func CalculateOffsetLimit(page, size int) (offset uint64, limit int) {
	if size <= 0 || size > MaxPageSize {
		limit = DefaultPageSize
	} else {
		limit = size
	}

	if page < 1 {
		page = DefaultPage
	}

	offset = uint64((page - 1) * limit)
	return offset, limit
}

// ParsePaginationParams extracts and clamps the page/limit parameters from the request.
func ParsePaginationParams(c *gin.Context) (page, limit int) {
	pageStr := c.DefaultQuery("page", strconv.Itoa(DefaultPage))
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limitStr := c.DefaultQuery("limit", strconv.Itoa(DefaultPageSize))
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > MaxPageSize {
		limit = DefaultPageSize
	}

	return page, limit
}
