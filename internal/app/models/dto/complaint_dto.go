package dto

import (
	"time"

	"github.com/palikatech/gunaso/internal/app/models"
)

// PublicComplaintView is the projection returned to callers with role 'user'.
// It never carries the submitter id, supporter ids, or the rating/feedback
// maps; those are not computed for this view at all.
type PublicComplaintView struct {
	ID             int64                  `json:"id"`
	WardID         int64                  `json:"ward_id"`
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Status         models.ComplaintStatus `json:"status"`
	Tags           []string               `json:"tags"`
	SubmittedAt    time.Time              `json:"submitted_at"`
	ResolvedAt     *time.Time             `json:"resolved_at,omitempty"`
	ImageURL       *string                `json:"image_url,omitempty"`
	WardName       string                 `json:"ward_name,omitempty"`
	PalikaName     string                 `json:"palika,omitempty"`
	SupporterCount int                    `json:"supporter_count"`
}

// PrivilegedComplaintView is the projection returned to ward and municipality
// admins. Ratings and Feedbacks are keyed by supporter user id; a key is
// present in Ratings whenever the supporter left feedback, even when the
// rating itself is null.
type PrivilegedComplaintView struct {
	PublicComplaintView
	UserID       int64            `json:"user_id"`
	SupporterIDs []int64          `json:"supporter_ids"`
	Ratings      map[int64]*int16 `json:"ratings,omitempty"`
	Feedbacks    map[int64]string `json:"feedbacks,omitempty"`
}

// SupportedComplaintView is the shape of "my complaints" rows: the complaint
// plus the caller's own supporter relationship.
type SupportedComplaintView struct {
	models.Complaint
	CurrentUserRating   *int16  `json:"current_user_rating,omitempty"`
	CurrentUserFeedback *string `json:"current_user_feedback,omitempty"`
}

// FileComplaintRequest represents a complaint filing
type FileComplaintRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Tags        []string `json:"tags"`
	Latitude    float64  `json:"latitude" binding:"required"`
	Longitude   float64  `json:"longitude" binding:"required"`
	PhotoID     *int64   `json:"photo_id"`
}

// UpdateStatusRequest represents an admin status change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// RateComplaintRequest represents a supporter's rating/feedback upsert.
// Feedback without a rating is rejected by the service.
type RateComplaintRequest struct {
	Rating   *int16  `json:"rating"`
	Feedback *string `json:"feedback"`
}

// SaveDraftRequest represents a complaint draft save
type SaveDraftRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// WardRatingResponse is the average supporter rating of a ward's complaints
type WardRatingResponse struct {
	Success       bool    `json:"success"`
	WardID        int64   `json:"ward_id"`
	AverageRating float64 `json:"average_rating"`
	RatingCount   int     `json:"rating_count"`
}
