package models

// Ward defines a municipal ward based on the 'wards' table.
// The geographic boundary polygon stays in the database; ward lookup by
// coordinate happens with a PostGIS containment query.
type Ward struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	PalikaID int64  `json:"palika_id" db:"palika_id"`

	Palika *Palika `json:"palika,omitempty"`
}

// Palika defines the parent administrative unit (municipality) of a ward
type Palika struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Type string `json:"type" db:"type"`
}
