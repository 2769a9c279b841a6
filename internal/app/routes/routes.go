package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/palikatech/gunaso/internal/app/controllers"
	"github.com/palikatech/gunaso/internal/app/models"
	"github.com/palikatech/gunaso/internal/app/models/dto"
	"github.com/palikatech/gunaso/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	complaintViewController *controllers.ComplaintViewController,
	complaintController *controllers.ComplaintController,
	wardController *controllers.WardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Every complaint route requires authentication; the access policy
	// decides what each role sees, not the router.
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		complaints := authenticated.Group("/complaints")
		{
			// Read side. /user/:id is a complaint id reached through the
			// caller's own supporter record; the list target rides in the
			// ?id= query and goes through the access policy.
			complaints.GET("/user", complaintViewController.GetUserComplaints)
			complaints.GET("/user/:id", complaintViewController.GetSupportedComplaintByID)
			complaints.GET("/location", complaintViewController.GetComplaintsByLocation)
			complaints.GET("/:id", complaintViewController.GetComplaintByID)

			// Drafts
			complaints.GET("/draft", complaintController.GetDraft)
			complaints.PUT("/draft", complaintController.SaveDraft)

			// Write side
			complaints.POST("", complaintController.FileComplaint)
			complaints.DELETE("/:id", complaintController.DeleteComplaint)
			complaints.PATCH("/:id/rate", complaintController.RateComplaint)

			// Admin transitions
			adminProtected := complaints.Group("")
			adminProtected.Use(authMiddleware.RequireRoles(models.RoleWardAdmin, models.RoleMunicipalityAdmin))
			{
				adminProtected.PATCH("/:id/status", complaintController.UpdateStatus)
			}

			wardAdminProtected := complaints.Group("")
			wardAdminProtected.Use(authMiddleware.RequireRoles(models.RoleWardAdmin))
			{
				wardAdminProtected.POST("/:id/escalate", complaintController.Escalate)
			}
		}

		wards := authenticated.Group("/wards")
		{
			wards.GET("/:id/rating", wardController.GetWardRating)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Success: true,
			Data:    gin.H{"status": "ok"},
		})
	})
}
