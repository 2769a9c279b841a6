package services

import (
	"context"
	"errors"
	"time"

	"github.com/palikatech/gunaso/internal/app/auth"
	"github.com/palikatech/gunaso/internal/app/models"
	"github.com/palikatech/gunaso/internal/app/models/dto"
	"github.com/palikatech/gunaso/internal/app/repositories"
	"github.com/palikatech/gunaso/internal/pkg/apperrors"
	"github.com/palikatech/gunaso/internal/pkg/draftcache"
	"github.com/palikatech/gunaso/internal/pkg/logger"
)

// ComplaintService handles the complaint write path: filing, deletion,
// status transitions, and supporter ratings.
type ComplaintService interface {
	FileComplaint(ctx context.Context, caller auth.Caller, req *dto.FileComplaintRequest) (*models.Complaint, error)
	DeleteComplaint(ctx context.Context, caller auth.Caller, complaintID int64) error
	UpdateStatus(ctx context.Context, caller auth.Caller, complaintID int64, status string) error
	Escalate(ctx context.Context, caller auth.Caller, complaintID int64) error
	RateComplaint(ctx context.Context, caller auth.Caller, complaintID int64, req *dto.RateComplaintRequest) error
	SaveDraft(ctx context.Context, caller auth.Caller, req *dto.SaveDraftRequest) error
	GetDraft(ctx context.Context, caller auth.Caller) (*draftcache.Draft, error)
}

type complaintService struct {
	complaintRepo *repositories.ComplaintRepository
	supporterRepo *repositories.SupporterRepository
	wardRepo      *repositories.WardRepository
	drafts        *draftcache.Store
}

// NewComplaintService creates a new ComplaintService
func NewComplaintService(
	complaintRepo *repositories.ComplaintRepository,
	supporterRepo *repositories.SupporterRepository,
	wardRepo *repositories.WardRepository,
	drafts *draftcache.Store,
) ComplaintService {
	return &complaintService{
		complaintRepo: complaintRepo,
		supporterRepo: supporterRepo,
		wardRepo:      wardRepo,
		drafts:        drafts,
	}
}

// FileComplaint files a complaint at the given coordinates. The ward is
// located from the coordinates; filing outside every ward boundary is
// rejected. The submitter is recorded as the complaint's first supporter
// and any saved draft of theirs is discarded.
func (s *complaintService) FileComplaint(ctx context.Context, caller auth.Caller, req *dto.FileComplaintRequest) (*models.Complaint, error) {
	if caller.Role != models.RoleUser {
		return nil, apperrors.NewForbiddenError("Only citizens can file complaints.")
	}

	ward, err := s.wardRepo.Locate(ctx, req.Latitude, req.Longitude)
	if err != nil {
		if errors.Is(err, apperrors.ErrWardNotFound) {
			return nil, apperrors.NewValidationError("Location does not fall inside any ward.")
		}
		return nil, err
	}

	complaint := &models.Complaint{
		UserID:      caller.UserID,
		WardID:      ward.ID,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.StatusPending,
		Tags:        req.Tags,
		PhotoID:     req.PhotoID,
		SubmittedAt: time.Now(),
	}

	id, err := s.complaintRepo.Create(ctx, complaint)
	if err != nil {
		return nil, err
	}
	complaint.ID = id

	// The submitter always co-signs their own complaint.
	if err := s.supporterRepo.Add(ctx, id, caller.UserID); err != nil && !errors.Is(err, apperrors.ErrAlreadySupported) {
		return nil, err
	}

	if err := s.drafts.Delete(ctx, caller.UserID); err != nil {
		// A stale draft expires on its own; filing already succeeded.
		logger.Warn().Err(err).Int64("userID", caller.UserID).Msg("Failed to discard complaint draft after filing")
	}

	return complaint, nil
}

// DeleteComplaint removes a complaint the caller filed themselves.
func (s *complaintService) DeleteComplaint(ctx context.Context, caller auth.Caller, complaintID int64) error {
	return s.complaintRepo.Delete(ctx, complaintID, caller.UserID)
}

// UpdateStatus changes a complaint's status. The resolution timestamp is set
// exactly when the new status is terminal, and cleared otherwise.
func (s *complaintService) UpdateStatus(ctx context.Context, caller auth.Caller, complaintID int64, status string) error {
	if !caller.Role.IsPrivileged() {
		return apperrors.NewForbiddenError("Only ward or municipality admins can change complaint status.")
	}

	next := models.ComplaintStatus(status)
	switch next {
	case models.StatusPending, models.StatusInProgress, models.StatusResolved,
		models.StatusEscalated, models.StatusRejected:
	default:
		return apperrors.NewValidationError("Unknown complaint status: " + status)
	}

	var resolvedAt *time.Time
	if next.IsTerminal() {
		now := time.Now()
		resolvedAt = &now
	}

	return s.complaintRepo.UpdateStatus(ctx, complaintID, next, resolvedAt)
}

// Escalate moves a complaint from a ward's queue to the municipality's.
func (s *complaintService) Escalate(ctx context.Context, caller auth.Caller, complaintID int64) error {
	if caller.Role != models.RoleWardAdmin {
		return apperrors.NewForbiddenError("Only ward admins can escalate complaints.")
	}
	return s.complaintRepo.UpdateStatus(ctx, complaintID, models.StatusEscalated, nil)
}

// RateComplaint upserts the caller's rating and feedback on a complaint they
// support. Feedback without a rating is rejected; a rating must be 1 to 5.
func (s *complaintService) RateComplaint(ctx context.Context, caller auth.Caller, complaintID int64, req *dto.RateComplaintRequest) error {
	if req.Rating == nil && req.Feedback != nil {
		return apperrors.ErrFeedbackNeedsScore
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return apperrors.NewValidationError("Rating must be between 1 and 5.")
	}

	return s.supporterRepo.Rate(ctx, complaintID, caller.UserID, req.Rating, req.Feedback)
}

// SaveDraft stores a partial filing so a later attempt can be pre-filled.
func (s *complaintService) SaveDraft(ctx context.Context, caller auth.Caller, req *dto.SaveDraftRequest) error {
	return s.drafts.Save(ctx, caller.UserID, &draftcache.Draft{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
}

// GetDraft returns the caller's saved draft, if any.
func (s *complaintService) GetDraft(ctx context.Context, caller auth.Caller) (*draftcache.Draft, error) {
	return s.drafts.Load(ctx, caller.UserID)
}
