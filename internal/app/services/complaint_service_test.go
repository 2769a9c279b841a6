package services_test

import (
	"context"
	"testing"

	"github.com/palikatech/gunaso/internal/app/auth"
	"github.com/palikatech/gunaso/internal/app/models"
	"github.com/palikatech/gunaso/internal/app/models/dto"
	"github.com/palikatech/gunaso/internal/app/services"
	"github.com/palikatech/gunaso/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
)

// The validation paths below all fail before any repository call, so a
// zero-dependency service is enough to exercise them.
func newBareService() services.ComplaintService {
	return services.NewComplaintService(nil, nil, nil, nil)
}

func TestFileComplaint_AdminsCannotFile(t *testing.T) {
	svc := newBareService()

	for _, role := range []models.Role{models.RoleWardAdmin, models.RoleMunicipalityAdmin} {
		caller := auth.Caller{UserID: 1, Role: role}
		_, err := svc.FileComplaint(context.Background(), caller, &dto.FileComplaintRequest{
			Title: "t", Description: "d", Latitude: 27.7, Longitude: 85.3,
		})
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied, "role %s", role)
	}
}

func TestRateComplaint_FeedbackWithoutRatingRejected(t *testing.T) {
	svc := newBareService()
	caller := auth.Caller{UserID: 1, Role: models.RoleUser}

	feedback := "too slow"
	err := svc.RateComplaint(context.Background(), caller, 7, &dto.RateComplaintRequest{
		Feedback: &feedback,
	})
	assert.ErrorIs(t, err, apperrors.ErrFeedbackNeedsScore)
}

func TestRateComplaint_RatingOutOfRange(t *testing.T) {
	svc := newBareService()
	caller := auth.Caller{UserID: 1, Role: models.RoleUser}

	for _, rating := range []int16{0, 6, -1} {
		r := rating
		err := svc.RateComplaint(context.Background(), caller, 7, &dto.RateComplaintRequest{Rating: &r})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "rating %d", rating)
	}
}

func TestUpdateStatus_PlainUserForbidden(t *testing.T) {
	svc := newBareService()
	caller := auth.Caller{UserID: 1, Role: models.RoleUser}

	err := svc.UpdateStatus(context.Background(), caller, 7, "resolved")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestUpdateStatus_UnknownStatusRejected(t *testing.T) {
	svc := newBareService()
	caller := auth.Caller{UserID: 1, Role: models.RoleWardAdmin}

	err := svc.UpdateStatus(context.Background(), caller, 7, "closed")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestEscalate_OnlyWardAdmins(t *testing.T) {
	svc := newBareService()

	for _, role := range []models.Role{models.RoleUser, models.RoleMunicipalityAdmin} {
		caller := auth.Caller{UserID: 1, Role: role}
		err := svc.Escalate(context.Background(), caller, 7)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied, "role %s", role)
	}
}
