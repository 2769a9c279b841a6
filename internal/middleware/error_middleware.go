package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/palikatech/gunaso/internal/app/models/dto"
	"github.com/palikatech/gunaso/internal/pkg/apperrors"
	"github.com/palikatech/gunaso/internal/pkg/logger"
)

// HandleAPIError translates service errors into the uniform failure envelope.
// A CustomError's message wins over the per-sentinel default, so validation
// failures keep the specific message the compiler attached.
func HandleAPIError(c *gin.Context, err error) {
	message := func(fallback string) string {
		var custom *apperrors.CustomError
		if errors.As(err, &custom) && custom.Message != "" {
			return custom.Message
		}
		return fallback
	}

	switch {
	case errors.Is(err, apperrors.ErrComplaintNotFound):
		c.JSON(404, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Complaint not found."))
	case errors.Is(err, apperrors.ErrWardNotFound):
		c.JSON(404, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, message("Ward not found.")))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(404, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "User not found."))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, message("Resource not found")))
	case errors.Is(err, apperrors.ErrAlreadySupported):
		c.JSON(409, dto.NewErrorResponse(dto.ErrorCodeResourceAlreadyExists, "You already support this complaint."))
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrResourceAlreadyExists):
		c.JSON(409, dto.NewErrorResponse(dto.ErrorCodeResourceAlreadyExists, message("Resource already exists")))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.NewErrorResponse(dto.ErrorCodeForbidden, message("Permission denied")))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.NewErrorResponse(dto.ErrorCodeExpiredToken, "Token expired"))
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.NewErrorResponse(dto.ErrorCodeInvalidToken, "Invalid token"))
	case errors.Is(err, apperrors.ErrFeedbackNeedsScore):
		c.JSON(400, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "A rating is required when feedback is provided."))
	case errors.Is(err, apperrors.ErrMissingLocationScope):
		c.JSON(400, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, message("Either ward_id or palika_id is required.")))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, message("Validation failed")))
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(500, dto.NewErrorResponse(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}
