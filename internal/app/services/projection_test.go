package services_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/palikatech/gunaso/internal/app/auth"
	"github.com/palikatech/gunaso/internal/app/models"
	"github.com/palikatech/gunaso/internal/app/models/dto"
	"github.com/palikatech/gunaso/internal/app/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int16Ptr(v int16) *int16 {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func sampleComplaint() *models.Complaint {
	return &models.Complaint{
		ID:          7,
		UserID:      42,
		WardID:      3,
		Title:       "Broken street light",
		Description: "Pole at the chowk has been dark for a week",
		Status:      models.StatusPending,
		Tags:        []string{"electricity"},
		SubmittedAt: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestProjectComplaint_PrivilegedAggregates(t *testing.T) {
	supporters := []models.Supporter{
		{ComplaintID: 7, UserID: 1, Rating: int16Ptr(4), Feedback: strPtr("good")},
		{ComplaintID: 7, UserID: 2, Rating: int16Ptr(3)},
		{ComplaintID: 7, UserID: 3},
	}

	result := services.ProjectComplaint(sampleComplaint(), supporters, auth.VisibilityPrivileged)

	view, ok := result.(*dto.PrivilegedComplaintView)
	require.True(t, ok)

	assert.Equal(t, int64(42), view.UserID)
	assert.Equal(t, 3, view.SupporterCount)
	assert.Equal(t, []int64{1, 2, 3}, view.SupporterIDs)

	require.NotNil(t, view.Ratings)
	assert.Len(t, view.Ratings, 2)
	assert.Equal(t, int16(4), *view.Ratings[1])
	assert.Equal(t, int16(3), *view.Ratings[2])
	assert.NotContains(t, view.Ratings, int64(3))

	require.NotNil(t, view.Feedbacks)
	assert.Equal(t, map[int64]string{1: "good"}, view.Feedbacks)
}

func TestProjectComplaint_FeedbackWithNullRatingStillKeyed(t *testing.T) {
	// Feedback forces a rating entry even when the stored rating is null.
	supporters := []models.Supporter{
		{ComplaintID: 7, UserID: 5, Feedback: strPtr("still broken")},
	}

	result := services.ProjectComplaint(sampleComplaint(), supporters, auth.VisibilityPrivileged)

	view := result.(*dto.PrivilegedComplaintView)
	require.Contains(t, view.Ratings, int64(5))
	assert.Nil(t, view.Ratings[5])
	assert.Equal(t, "still broken", view.Feedbacks[5])
}

func TestProjectComplaint_EmptyMapsOmitted(t *testing.T) {
	supporters := []models.Supporter{
		{ComplaintID: 7, UserID: 1},
		{ComplaintID: 7, UserID: 2},
	}

	result := services.ProjectComplaint(sampleComplaint(), supporters, auth.VisibilityPrivileged)

	view := result.(*dto.PrivilegedComplaintView)
	assert.Equal(t, 2, view.SupporterCount)
	assert.Nil(t, view.Ratings)
	assert.Nil(t, view.Feedbacks)
}

func TestProjectComplaint_NoSupporters(t *testing.T) {
	result := services.ProjectComplaint(sampleComplaint(), nil, auth.VisibilityPrivileged)

	view := result.(*dto.PrivilegedComplaintView)
	assert.Equal(t, 0, view.SupporterCount)
	assert.Empty(t, view.SupporterIDs)
	assert.NotNil(t, view.SupporterIDs)
	assert.Nil(t, view.Ratings)
	assert.Nil(t, view.Feedbacks)
}

func TestProjectComplaint_PublicHidesIdentities(t *testing.T) {
	supporters := []models.Supporter{
		{ComplaintID: 7, UserID: 1, Rating: int16Ptr(5), Feedback: strPtr("fixed fast")},
		{ComplaintID: 7, UserID: 2},
	}

	result := services.ProjectComplaint(sampleComplaint(), supporters, auth.VisibilityPublic)

	view, ok := result.(*dto.PublicComplaintView)
	require.True(t, ok)

	// Count survives; who supported and what they said does not.
	assert.Equal(t, 2, view.SupporterCount)
	assert.Equal(t, "Broken street light", view.Title)
}

func TestProjectComplaint_EmptyMapsAbsentFromJSON(t *testing.T) {
	result := services.ProjectComplaint(sampleComplaint(), []models.Supporter{{ComplaintID: 7, UserID: 1}}, auth.VisibilityPrivileged)

	payload, err := json.Marshal(result)
	require.NoError(t, err)

	body := string(payload)
	assert.NotContains(t, body, `"ratings"`)
	assert.NotContains(t, body, `"feedbacks"`)
	assert.Contains(t, body, `"supporter_ids":[1]`)
}

func TestProjectComplaint_SupporterOrderPreserved(t *testing.T) {
	supporters := []models.Supporter{
		{ComplaintID: 7, UserID: 30},
		{ComplaintID: 7, UserID: 10},
		{ComplaintID: 7, UserID: 20},
	}

	result := services.ProjectComplaint(sampleComplaint(), supporters, auth.VisibilityPrivileged)

	view := result.(*dto.PrivilegedComplaintView)
	assert.Equal(t, []int64{30, 10, 20}, view.SupporterIDs)
}
