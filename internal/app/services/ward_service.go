package services

import (
	"context"

	"github.com/palikatech/gunaso/internal/app/models/dto"
	"github.com/palikatech/gunaso/internal/app/repositories"
)

// WardService exposes ward-level aggregates.
type WardService interface {
	AverageRating(ctx context.Context, wardID int64) (*dto.WardRatingResponse, error)
}

type wardService struct {
	wardRepo      *repositories.WardRepository
	supporterRepo *repositories.SupporterRepository
}

// NewWardService creates a new WardService
func NewWardService(wardRepo *repositories.WardRepository, supporterRepo *repositories.SupporterRepository) WardService {
	return &wardService{
		wardRepo:      wardRepo,
		supporterRepo: supporterRepo,
	}
}

// AverageRating returns the mean supporter rating across a ward's complaints.
// A ward with no ratings yet reports zero with a zero count.
func (s *wardService) AverageRating(ctx context.Context, wardID int64) (*dto.WardRatingResponse, error) {
	if _, err := s.wardRepo.GetByID(ctx, wardID); err != nil {
		return nil, err
	}

	avg, count, err := s.supporterRepo.AverageRatingForWard(ctx, wardID)
	if err != nil {
		return nil, err
	}

	return &dto.WardRatingResponse{
		Success:       true,
		WardID:        wardID,
		AverageRating: avg,
		RatingCount:   count,
	}, nil
}
