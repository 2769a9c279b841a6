// Package services holds the business logic between the HTTP controllers
// and the repositories.
package services

import (
	"github.com/palikatech/gunaso/internal/app/repositories"
	"github.com/palikatech/gunaso/internal/pkg/draftcache"
)

// Services bundles every service for dependency injection.
type Services struct {
	ComplaintQueryService ComplaintQueryService
	ComplaintService      ComplaintService
	WardService           WardService
}

// NewServices creates the service container from its dependencies.
func NewServices(repos *repositories.Repositories, drafts *draftcache.Store) *Services {
	return &Services{
		ComplaintQueryService: NewComplaintQueryService(repos.ComplaintRepository, repos.SupporterRepository),
		ComplaintService: NewComplaintService(
			repos.ComplaintRepository,
			repos.SupporterRepository,
			repos.WardRepository,
			drafts,
		),
		WardService: NewWardService(repos.WardRepository, repos.SupporterRepository),
	}
}
