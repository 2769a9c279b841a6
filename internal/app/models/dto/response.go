package dto

// APIResponse is the uniform response envelope: {success, message, ...}.
// Every handler, success or failure, answers with this shape.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ComplaintResponse wraps a single projected complaint
type ComplaintResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Complaint interface{} `json:"complaint"`
}

// ComplaintListResponse wraps a list of projected complaints.
// An empty result is a success with an empty list, never a 404.
type ComplaintListResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Complaints interface{} `json:"complaints"`
}

// NewComplaintResponse creates a single-complaint success response
func NewComplaintResponse(complaint interface{}) ComplaintResponse {
	return ComplaintResponse{
		Success:   true,
		Message:   "Complaint found",
		Complaint: complaint,
	}
}

// NewComplaintListResponse creates a list success response
func NewComplaintListResponse(complaints interface{}) ComplaintListResponse {
	return ComplaintListResponse{
		Success:    true,
		Complaints: complaints,
	}
}

// NewSuccessResponse creates a generic success response
func NewSuccessResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}
