package models

import "time"

// Supporter represents one user's co-signature on one complaint.
// Rating and Feedback are independently optional; the (complaint, user)
// pair is unique at the database level.
type Supporter struct {
	ComplaintID int64     `json:"complaint_id" db:"complaint_id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	Rating      *int16    `json:"rating,omitempty" db:"rating"`
	Feedback    *string   `json:"feedback,omitempty" db:"feedback"`
	SupportedAt time.Time `json:"supported_at" db:"supported_at"`
}
