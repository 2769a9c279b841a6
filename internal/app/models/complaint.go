package models

import "time"

// ComplaintStatus represents the lifecycle state of a complaint
type ComplaintStatus string

// Complaint status constants
const (
	StatusPending    ComplaintStatus = "pending"
	StatusInProgress ComplaintStatus = "in_progress"
	StatusResolved   ComplaintStatus = "resolved"
	StatusEscalated  ComplaintStatus = "escalated"
	StatusRejected   ComplaintStatus = "rejected"
)

// IsTerminal reports whether the status closes the complaint.
// ResolvedAt must be non-nil exactly for these statuses.
func (s ComplaintStatus) IsTerminal() bool {
	return s == StatusResolved || s == StatusRejected
}

// Complaint represents a complaint record in the database
type Complaint struct {
	ID          int64           `json:"id" db:"id"`
	UserID      int64           `json:"user_id,omitempty" db:"user_id"` // submitter
	WardID      int64           `json:"ward_id" db:"ward_id"`
	Title       string          `json:"title" db:"title"`
	Description string          `json:"description" db:"description"`
	Status      ComplaintStatus `json:"status" db:"status"`
	Tags        []string        `json:"tags" db:"tags"`
	PhotoID     *int64          `json:"-" db:"photo_path"`
	SubmittedAt time.Time       `json:"submitted_at" db:"submitted_at"`
	ResolvedAt  *time.Time      `json:"resolved_at,omitempty" db:"resolved_at"`

	// Joined columns, no db row of their own
	ImageURL   *string `json:"image_url,omitempty"`
	WardName   string  `json:"ward_name,omitempty"`
	PalikaName string  `json:"palika,omitempty"`
}
