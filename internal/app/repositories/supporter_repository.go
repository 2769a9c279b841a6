package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/palikatech/gunaso/internal/app/models"
	"github.com/palikatech/gunaso/internal/pkg/apperrors"
	"github.com/palikatech/gunaso/internal/pkg/dberrors"
	"github.com/palikatech/gunaso/internal/pkg/helpers"
	"github.com/palikatech/gunaso/internal/pkg/logger"
)

// SupporterRepository handles complaint supporter database operations
type SupporterRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSupporterRepository creates a new SupporterRepository
func NewSupporterRepository(db *pgxpool.Pool) *SupporterRepository {
	return &SupporterRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListByComplaint retrieves every supporter record of a complaint in
// insertion order. The projection preserves this order.
func (r *SupporterRepository) ListByComplaint(ctx context.Context, complaintID int64) ([]models.Supporter, error) {
	sqlQuery, args, err := r.sb.Select("complaint_id", "user_id", "rating", "feedback", "supported_at").
		From("complaint_supporters").
		Where(squirrel.Eq{"complaint_id": complaintID}).
		OrderBy("supported_at ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list supporters SQL")
		return nil, fmt.Errorf("failed to build list supporters query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Int64("complaintID", complaintID).Msg("Error executing list supporters query")
		return nil, fmt.Errorf("failed to query supporters: %w", err)
	}
	defer rows.Close()

	supporters := []models.Supporter{}
	for rows.Next() {
		var s models.Supporter
		var rating sql.NullInt16
		var feedback sql.NullString

		if err := rows.Scan(&s.ComplaintID, &s.UserID, &rating, &feedback, &s.SupportedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning supporter row")
			return nil, fmt.Errorf("failed to scan supporter row: %w", err)
		}

		s.Rating = helpers.Int16Ptr(rating)
		s.Feedback = helpers.StringPtr(feedback)
		supporters = append(supporters, s)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating supporter rows")
		return nil, fmt.Errorf("error iterating supporter rows: %w", err)
	}

	return supporters, nil
}

// Add inserts a new supporter record. The (complaint, user) pair is unique;
// a duplicate co-signature maps to ErrAlreadySupported.
func (r *SupporterRepository) Add(ctx context.Context, complaintID, userID int64) error {
	sqlQuery, args, err := r.sb.Insert("complaint_supporters").
		Columns("complaint_id", "user_id").
		Values(complaintID, userID).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building add supporter SQL")
		return fmt.Errorf("failed to build add supporter query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sqlQuery, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadySupported
		}
		logger.Error().Err(err).Int64("complaintID", complaintID).Int64("userID", userID).Msg("Error executing add supporter query")
		return fmt.Errorf("error inserting supporter: %w", err)
	}

	logger.Info().Int64("complaintID", complaintID).Int64("userID", userID).Msg("Supporter added")
	return nil
}

// Rate updates the caller's rating/feedback on their supporter record. A zero
// row count means the caller never supported the complaint.
func (r *SupporterRepository) Rate(ctx context.Context, complaintID, userID int64, rating *int16, feedback *string) error {
	var ratingArg interface{}
	if rating != nil {
		ratingArg = *rating
	}

	sqlQuery, args, err := r.sb.Update("complaint_supporters").
		SetMap(map[string]interface{}{
			"rating":   ratingArg,
			"feedback": helpers.GetNullString(feedback),
		}).
		Where(squirrel.And{
			squirrel.Eq{"complaint_id": complaintID},
			squirrel.Eq{"user_id": userID},
		}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building rate complaint SQL")
		return fmt.Errorf("failed to build rate complaint query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Int64("complaintID", complaintID).Int64("userID", userID).Msg("Error executing rate complaint query")
		return fmt.Errorf("error rating complaint ID=%d: %w", complaintID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrComplaintNotFound
	}

	logger.Info().Int64("complaintID", complaintID).Int64("userID", userID).Msg("Complaint rated")
	return nil
}

// AverageRatingForWard computes the average non-null supporter rating across
// a ward's complaints.
func (r *SupporterRepository) AverageRatingForWard(ctx context.Context, wardID int64) (float64, int, error) {
	sqlQuery, args, err := r.sb.Select(
		"COALESCE(AVG(cs.rating), 0)",
		"COUNT(cs.rating)",
	).
		From("complaint_supporters cs").
		Join("complaints c ON c.id = cs.complaint_id").
		Where(squirrel.And{
			squirrel.Eq{"c.ward_id": wardID},
			squirrel.NotEq{"cs.rating": nil},
		}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building ward average rating SQL")
		return 0, 0, fmt.Errorf("failed to build ward average rating query: %w", err)
	}

	var avg float64
	var count int
	if err := r.db.QueryRow(ctx, sqlQuery, args...).Scan(&avg, &count); err != nil {
		logger.Error().Err(err).Int64("wardID", wardID).Msg("Error executing ward average rating query")
		return 0, 0, fmt.Errorf("failed to query ward average rating: %w", err)
	}

	return avg, count, nil
}
