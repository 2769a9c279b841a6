package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/palikatech/gunaso/internal/app/models/dto"
	"github.com/palikatech/gunaso/internal/app/services"
	"github.com/palikatech/gunaso/internal/middleware"
)

// WardController handles ward-level aggregate endpoints.
type WardController struct {
	wardService services.WardService
}

// NewWardController creates a new WardController
func NewWardController(wardService services.WardService) *WardController {
	return &WardController{
		wardService: wardService,
	}
}

// GetWardRating returns the average supporter rating across a ward's
// complaints.
func (c *WardController) GetWardRating(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Ward ID must be a valid number"))
		return
	}

	rating, err := c.wardService.AverageRating(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rating)
}
