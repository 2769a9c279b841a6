package models

import "time"

// Image defines an uploaded complaint photo based on the 'images' table.
// Referenced by at most one complaint's photo reference.
type Image struct {
	ID        int64     `json:"id" db:"id"`
	URL       string    `json:"url" db:"url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
