package services

import (
	"github.com/palikatech/gunaso/internal/app/auth"
	"github.com/palikatech/gunaso/internal/app/models"
	"github.com/palikatech/gunaso/internal/app/models/dto"
)

// ProjectComplaint produces the externally visible representation of one
// complaint and its supporter set.
//
// Supporter ids keep the order the executor returned. A supporter with
// feedback lands in both maps (their rating is included as stored, even when
// null); a supporter with only a rating lands in the rating map; a supporter
// with neither contributes to the count and id list only. Maps are set only
// when non-empty, so they disappear from the JSON instead of appearing as {}.
//
// For VisibilityPublic the maps and identities are never computed, not
// merely hidden.
func ProjectComplaint(c *models.Complaint, supporters []models.Supporter, visibility auth.Visibility) interface{} {
	public := dto.PublicComplaintView{
		ID:             c.ID,
		WardID:         c.WardID,
		Title:          c.Title,
		Description:    c.Description,
		Status:         c.Status,
		Tags:           c.Tags,
		SubmittedAt:    c.SubmittedAt,
		ResolvedAt:     c.ResolvedAt,
		ImageURL:       c.ImageURL,
		WardName:       c.WardName,
		PalikaName:     c.PalikaName,
		SupporterCount: len(supporters),
	}

	if visibility == auth.VisibilityPublic {
		return &public
	}

	view := dto.PrivilegedComplaintView{
		PublicComplaintView: public,
		UserID:              c.UserID,
		SupporterIDs:        make([]int64, 0, len(supporters)),
	}

	ratings := make(map[int64]*int16)
	feedbacks := make(map[int64]string)
	for _, s := range supporters {
		view.SupporterIDs = append(view.SupporterIDs, s.UserID)

		switch {
		case s.Feedback != nil:
			feedbacks[s.UserID] = *s.Feedback
			ratings[s.UserID] = s.Rating
		case s.Rating != nil:
			ratings[s.UserID] = s.Rating
		}
	}

	if len(ratings) > 0 {
		view.Ratings = ratings
	}
	if len(feedbacks) > 0 {
		view.Feedbacks = feedbacks
	}

	return &view
}
