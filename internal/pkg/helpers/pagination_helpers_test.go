package helpers_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/palikatech/gunaso/internal/pkg/helpers"
	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		size       int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 10, 20, 10},
		{"custom size", 2, 25, 25, 25},
		{"zero page clamps to first", 0, 10, 0, 10},
		{"negative page clamps to first", -5, 10, 0, 10},
		{"zero size clamps to default", 1, 0, 0, helpers.DefaultPageSize},
		{"oversized limit clamps to default", 1, 500, 0, helpers.DefaultPageSize},
		{"max limit allowed", 2, helpers.MaxPageSize, 100, helpers.MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := helpers.CalculateOffsetLimit(tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults when absent", "", 1, helpers.DefaultPageSize},
		{"explicit values", "page=4&limit=50", 4, 50},
		{"garbage falls back", "page=abc&limit=xyz", 1, helpers.DefaultPageSize},
		{"negative falls back", "page=-1&limit=-10", 1, helpers.DefaultPageSize},
		{"oversized limit falls back", "page=1&limit=1000", 1, helpers.DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/?"+tt.query, nil)

			page, limit := helpers.ParsePaginationParams(c)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}
