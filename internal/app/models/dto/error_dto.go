package dto

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Authentication errors
	ErrorCodeUnauthorized ErrorCode = "AUTH_001"
	ErrorCodeInvalidToken ErrorCode = "AUTH_002"
	ErrorCodeExpiredToken ErrorCode = "AUTH_003"
	ErrorCodeForbidden    ErrorCode = "AUTH_004"

	// Resource errors
	ErrorCodeResourceNotFound      ErrorCode = "RES_001"
	ErrorCodeResourceAlreadyExists ErrorCode = "RES_002"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
	ErrorCodeDatabaseError  ErrorCode = "SRV_002"
)

// ErrorResponse is the uniform failure body. It carries the same
// {success, message} envelope as successful responses, plus a stable code.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Code    ErrorCode `json:"code,omitempty"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(code ErrorCode, message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Message: message,
		Code:    code,
	}
}
