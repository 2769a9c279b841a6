package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/palikatech/gunaso/internal/app/models/dto"
	"github.com/palikatech/gunaso/internal/app/query"
	"github.com/palikatech/gunaso/internal/app/services"
	"github.com/palikatech/gunaso/internal/middleware"
	"github.com/palikatech/gunaso/internal/pkg/helpers"
)

// ComplaintViewController handles the read-side complaint endpoints.
type ComplaintViewController struct {
	queryService services.ComplaintQueryService
}

// NewComplaintViewController creates a new ComplaintViewController
func NewComplaintViewController(queryService services.ComplaintQueryService) *ComplaintViewController {
	return &ComplaintViewController{
		queryService: queryService,
	}
}

// filtersFromQuery collects the optional filter parameters shared by the
// list endpoints. Values stay raw strings; the compiler validates them.
func filtersFromQuery(ctx *gin.Context) query.Filters {
	return query.Filters{
		WardID:    ctx.Query("ward_id"),
		PalikaID:  ctx.Query("palika_id"),
		Status:    ctx.Query("status"),
		Tags:      ctx.Query("tags"),
		StartDate: ctx.Query("startDate"),
		EndDate:   ctx.Query("endDate"),
	}
}

// GetUserComplaints lists the complaints supported by a target user. The
// target rides in the optional ?id= parameter; non-privileged callers are
// contained to their own complaints regardless of what they ask for.
func (c *ComplaintViewController) GetUserComplaints(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
		return
	}

	page, limit := helpers.ParsePaginationParams(ctx)
	views, err := c.queryService.ListUserComplaints(
		ctx, caller, ctx.Query("id"), filtersFromQuery(ctx), ctx.Query("order"), page, limit,
	)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewComplaintListResponse(views))
}

// GetComplaintsByLocation lists complaints scoped to a ward or municipality.
// Exactly one of ward_id/palika_id must be a valid integer.
func (c *ComplaintViewController) GetComplaintsByLocation(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)
	complaints, err := c.queryService.ListByLocation(
		ctx, filtersFromQuery(ctx), ctx.Query("order"), page, limit,
	)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewComplaintListResponse(complaints))
}

// GetComplaintByID returns one complaint projected for the caller's role.
func (c *ComplaintViewController) GetComplaintByID(ctx *gin.Context) {
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

	view, err := c.queryService.GetComplaint(ctx, caller, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewComplaintResponse(view))
}

// GetSupportedComplaintByID returns one complaint the caller supports,
// with their own rating and feedback attached.
func (c *ComplaintViewController) GetSupportedComplaintByID(ctx *gin.Context) {
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

	view, err := c.queryService.GetSupportedComplaint(ctx, caller, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewComplaintResponse(view))
}
