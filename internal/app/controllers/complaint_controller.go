package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/palikatech/gunaso/internal/app/models/dto"
	"github.com/palikatech/gunaso/internal/app/services"
	"github.com/palikatech/gunaso/internal/middleware"
	"github.com/palikatech/gunaso/internal/pkg/draftcache"
)

// ComplaintController handles the complaint write endpoints.
type ComplaintController struct {
	complaintService services.ComplaintService
}

// NewComplaintController creates a new ComplaintController
func NewComplaintController(complaintService services.ComplaintService) *ComplaintController {
	return &ComplaintController{
		complaintService: complaintService,
	}
}

// FileComplaint files a new complaint at the given coordinates.
func (c *ComplaintController) FileComplaint(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
		return
	}

	var req dto.FileComplaintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid complaint data"))
		return
	}

	complaint, err := c.complaintService.FileComplaint(ctx, caller, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Complaint filed", complaint))
}

// DeleteComplaint removes a complaint the caller filed.
func (c *ComplaintController) DeleteComplaint(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
		return
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Complaint ID must be a valid number"))
		return
	}

	if err := c.complaintService.DeleteComplaint(ctx, caller, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Complaint deleted", nil))
}

// UpdateStatus changes a complaint's status. Admin only.
func (c *ComplaintController) UpdateStatus(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
		return
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Complaint ID must be a valid number"))
		return
	}

	var req dto.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Status is required"))
		return
	}

	if err := c.complaintService.UpdateStatus(ctx, caller, id, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Complaint status updated", nil))
}

// Escalate moves a complaint to the municipality's queue. Ward admin only.
func (c *ComplaintController) Escalate(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
		return
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Complaint ID must be a valid number"))
		return
	}

	if err := c.complaintService.Escalate(ctx, caller, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Complaint escalated", nil))
}

// RateComplaint upserts the caller's rating and feedback on a complaint
// they support.
func (c *ComplaintController) RateComplaint(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
		return
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Complaint ID must be a valid number"))
		return
	}

	var req dto.RateComplaintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid rating data"))
		return
	}

	if err := c.complaintService.RateComplaint(ctx, caller, id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Rating saved", nil))
}

// SaveDraft stores a partial filing for later.
func (c *ComplaintController) SaveDraft(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
		return
	}

	var req dto.SaveDraftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid draft data"))
		return
	}

	if err := c.complaintService.SaveDraft(ctx, caller, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Draft saved", nil))
}

// GetDraft returns the caller's saved draft. A missing draft is a success
// with null data, not an error.
func (c *ComplaintController) GetDraft(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
		return
	}

	draft, err := c.complaintService.GetDraft(ctx, caller)
	if err != nil {
		if errors.Is(err, draftcache.ErrDraftNotFound) {
			ctx.JSON(http.StatusOK, dto.NewSuccessResponse("No draft saved", nil))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Draft found", draft))
}
