package services

import (
	"context"

	"github.com/palikatech/gunaso/internal/app/auth"
	"github.com/palikatech/gunaso/internal/app/models"
	"github.com/palikatech/gunaso/internal/app/models/dto"
	"github.com/palikatech/gunaso/internal/app/query"
	"github.com/palikatech/gunaso/internal/app/repositories"
	"github.com/palikatech/gunaso/internal/pkg/helpers"
	"github.com/palikatech/gunaso/internal/pkg/logger"
)

// ComplaintQueryService answers the read-side complaint queries: the
// caller's own complaints, location-scoped listings, and single lookups
// with role-dependent projection.
type ComplaintQueryService interface {
	GetSupportedComplaint(ctx context.Context, caller auth.Caller, complaintID int64) (*dto.SupportedComplaintView, error)
	ListUserComplaints(ctx context.Context, caller auth.Caller, targetUserID string, f query.Filters, order string, page, limit int) ([]dto.SupportedComplaintView, error)
	ListByLocation(ctx context.Context, f query.Filters, order string, page, limit int) ([]models.Complaint, error)
	GetComplaint(ctx context.Context, caller auth.Caller, complaintID int64) (interface{}, error)
}

type complaintQueryService struct {
	complaintRepo *repositories.ComplaintRepository
	supporterRepo *repositories.SupporterRepository
}

// NewComplaintQueryService creates a new ComplaintQueryService
func NewComplaintQueryService(
	complaintRepo *repositories.ComplaintRepository,
	supporterRepo *repositories.SupporterRepository,
) ComplaintQueryService {
	return &complaintQueryService{
		complaintRepo: complaintRepo,
		supporterRepo: supporterRepo,
	}
}

// GetSupportedComplaint returns one complaint reachable through the caller's
// own supporter record, with the caller's rating and feedback attached.
// There is no role elevation on this path.
func (s *complaintQueryService) GetSupportedComplaint(ctx context.Context, caller auth.Caller, complaintID int64) (*dto.SupportedComplaintView, error) {
	sc, err := s.complaintRepo.GetSupportedByID(ctx, complaintID, caller.UserID)
	if err != nil {
		return nil, err
	}

	return &dto.SupportedComplaintView{
		Complaint:           sc.Complaint,
		CurrentUserRating:   sc.Rating,
		CurrentUserFeedback: sc.Feedback,
	}, nil
}

// ListUserComplaints lists the complaints supported by the effective user.
// The access policy decides whose complaints that is: privileged callers may
// target anyone, everyone else is contained to themselves.
func (s *complaintQueryService) ListUserComplaints(ctx context.Context, caller auth.Caller, targetUserID string, f query.Filters, order string, page, limit int) ([]dto.SupportedComplaintView, error) {
	effectiveUserID := auth.ResolveScope(caller, targetUserID)

	compiled, err := query.CompileUserScope(effectiveUserID, f)
	if err != nil {
		return nil, err
	}

	ord := query.ResolveOrdering(f.Status, order)
	offset, pageSize := helpers.CalculateOffsetLimit(page, limit)

	rows, err := s.complaintRepo.ListSupported(ctx, compiled, ord, pageSize, offset)
	if err != nil {
		return nil, err
	}

	views := make([]dto.SupportedComplaintView, 0, len(rows))
	for _, row := range rows {
		views = append(views, dto.SupportedComplaintView{
			Complaint:           row.Complaint,
			CurrentUserRating:   row.Rating,
			CurrentUserFeedback: row.Feedback,
		})
	}

	logger.Debug().
		Int64("effectiveUserID", effectiveUserID).
		Int("returnedItems", len(views)).
		Msg("Listed user complaints")
	return views, nil
}

// ListByLocation lists complaints scoped to a ward or municipality.
func (s *complaintQueryService) ListByLocation(ctx context.Context, f query.Filters, order string, page, limit int) ([]models.Complaint, error) {
	compiled, err := query.CompileLocation(f)
	if err != nil {
		return nil, err
	}

	ord := query.ResolveOrdering(f.Status, order)
	offset, pageSize := helpers.CalculateOffsetLimit(page, limit)

	return s.complaintRepo.ListByLocation(ctx, compiled, ord, pageSize, offset)
}

// GetComplaint returns one complaint by id, projected for the caller's role.
// The complaint and its supporters are fetched in two reads; a supporter
// added between them shows up in the aggregates and not elsewhere, which is
// acceptable for this view.
func (s *complaintQueryService) GetComplaint(ctx context.Context, caller auth.Caller, complaintID int64) (interface{}, error) {
	complaint, err := s.complaintRepo.GetByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}

	supporters, err := s.supporterRepo.ListByComplaint(ctx, complaintID)
	if err != nil {
		return nil, err
	}

	return ProjectComplaint(complaint, supporters, auth.VisibilityFor(caller.Role)), nil
}
