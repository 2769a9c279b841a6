package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	ComplaintRepository *ComplaintRepository
	SupporterRepository *SupporterRepository
	WardRepository      *WardRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ComplaintRepository: NewComplaintRepository(db),
		SupporterRepository: NewSupporterRepository(db),
		WardRepository:      NewWardRepository(db),
	}
}
