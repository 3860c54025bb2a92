package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // Default page is 1-based
)

// CalculateOffsetLimit calculates the offset and limit for SQL queries based on 1-based page index.
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

// TotalPages computes the page count for totalItems rows split into size-row pages,
// rounded up.
func TotalPages(totalItems int64, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if totalItems <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalItems) / float64(size)))
}

// ParsePaginationParams extracts and validates pagination parameters from the request.
// The API uses 1-based page numbers; limit defaults to defaultLimit and is capped
// at MaxPageSize.
func ParsePaginationParams(c *gin.Context, defaultLimit int) (page, limit int) {
	if defaultLimit <= 0 {
		defaultLimit = DefaultPageSize
	}

	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaultLimit))
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > MaxPageSize {
		limit = defaultLimit
	}

	return page, limit
}
