package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/palikatech/gunaso/internal/app/models"
	"github.com/palikatech/gunaso/internal/app/query"
	"github.com/palikatech/gunaso/internal/pkg/apperrors"
	"github.com/palikatech/gunaso/internal/pkg/helpers"
	"github.com/palikatech/gunaso/internal/pkg/logger"
)

// complaintColumns are the columns selected for every complaint read,
// plus the left-joined image URL.
var complaintColumns = []string{
	"c.id", "c.user_id", "c.ward_id", "c.title", "c.description",
	"c.status", "c.tags", "c.photo_path", "c.submitted_at", "c.resolved_at",
	"i.url AS image_url",
}

// SupportedComplaint is a complaint row joined with the caller's own
// supporter relationship.
type SupportedComplaint struct {
	models.Complaint
	Rating   *int16
	Feedback *string
}

// ComplaintRepository handles complaint database operations
type ComplaintRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewComplaintRepository creates a new ComplaintRepository
func NewComplaintRepository(db *pgxpool.Pool) *ComplaintRepository {
	return &ComplaintRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetSupportedByID retrieves one complaint through the caller's supporter
// record. The caller can only reach complaints they filed or co-signed this
// way; no role elevation applies.
func (r *ComplaintRepository) GetSupportedByID(ctx context.Context, complaintID, userID int64) (*SupportedComplaint, error) {
	selectBuilder := r.sb.Select(append(complaintColumns, "cs.rating", "cs.feedback")...).
		From("complaints c").
		Join("complaint_supporters cs ON cs.complaint_id = c.id").
		LeftJoin("images i ON c.photo_path = i.id").
		Where(squirrel.And{
			squirrel.Eq{"c.id": complaintID},
			squirrel.Eq{"cs.user_id": userID},
		})

	sqlQuery, args, err := selectBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get supported complaint SQL")
		return nil, fmt.Errorf("failed to build supported complaint query: %w", err)
	}

	row := r.db.QueryRow(ctx, sqlQuery, args...)

	var sc SupportedComplaint
	var rating sql.NullInt16
	var feedback sql.NullString
	if err := scanComplaint(rowScanner{row}, &sc.Complaint, &rating, &feedback); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrComplaintNotFound
		}
		logger.Error().Err(err).Int64("complaintID", complaintID).Msg("Error scanning supported complaint row")
		return nil, fmt.Errorf("error querying complaint ID=%d: %w", complaintID, err)
	}
	sc.Rating = helpers.Int16Ptr(rating)
	sc.Feedback = helpers.StringPtr(feedback)

	return &sc, nil
}

// ListSupported retrieves the complaints matching a compiled supporter-scoped
// predicate set, together with each row's supporter rating/feedback for the
// effective user.
func (r *ComplaintRepository) ListSupported(ctx context.Context, compiled *query.Compiled, ord query.Ordering, limit int, offset uint64) ([]SupportedComplaint, error) {
	selectBuilder := r.sb.Select(append(complaintColumns, "cs.rating", "cs.feedback")...).
		From("complaints c").
		Join("complaint_supporters cs ON cs.complaint_id = c.id").
		LeftJoin("images i ON c.photo_path = i.id").
		Where(compiled.Where).
		OrderBy(ord.OrderBy()).
		Limit(uint64(limit)).
		Offset(offset)

	sqlQuery, args, err := selectBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list supported complaints SQL")
		return nil, fmt.Errorf("failed to build supported complaints query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list supported complaints query")
		return nil, fmt.Errorf("failed to query supported complaints: %w", err)
	}
	defer rows.Close()

	complaints := []SupportedComplaint{}
	for rows.Next() {
		var sc SupportedComplaint
		var rating sql.NullInt16
		var feedback sql.NullString
		if err := scanComplaint(rows, &sc.Complaint, &rating, &feedback); err != nil {
			logger.Error().Err(err).Msg("Error scanning supported complaint row")
			return nil, fmt.Errorf("failed to scan supported complaint row: %w", err)
		}
		sc.Rating = helpers.Int16Ptr(rating)
		sc.Feedback = helpers.StringPtr(feedback)
		complaints = append(complaints, sc)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating supported complaint rows")
		return nil, fmt.Errorf("error iterating supported complaint rows: %w", err)
	}

	return complaints, nil
}

// ListByLocation retrieves the complaints matching a compiled location-scoped
// predicate set. The wards join is added structurally when the compiled
// filter asks for it.
func (r *ComplaintRepository) ListByLocation(ctx context.Context, compiled *query.Compiled, ord query.Ordering, limit int, offset uint64) ([]models.Complaint, error) {
	selectBuilder := r.sb.Select(complaintColumns...).
		From("complaints c").
		LeftJoin("images i ON c.photo_path = i.id")

	if compiled.JoinWards {
		selectBuilder = selectBuilder.Join("wards w ON w.id = c.ward_id")
	}

	selectBuilder = selectBuilder.
		Where(compiled.Where).
		OrderBy(ord.OrderBy()).
		Limit(uint64(limit)).
		Offset(offset)

	sqlQuery, args, err := selectBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list complaints by location SQL")
		return nil, fmt.Errorf("failed to build complaints by location query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list complaints by location query")
		return nil, fmt.Errorf("failed to query complaints by location: %w", err)
	}
	defer rows.Close()

	complaints := []models.Complaint{}
	for rows.Next() {
		var c models.Complaint
		if err := scanComplaint(rows, &c, nil, nil); err != nil {
			logger.Error().Err(err).Msg("Error scanning complaint row")
			return nil, fmt.Errorf("failed to scan complaint row: %w", err)
		}
		complaints = append(complaints, c)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating complaint rows")
		return nil, fmt.Errorf("error iterating complaint rows: %w", err)
	}

	logger.Debug().Int("returnedItems", len(complaints)).Msg("Fetched complaints by location")
	return complaints, nil
}

// GetByID retrieves one complaint by id with its ward and municipality names.
func (r *ComplaintRepository) GetByID(ctx context.Context, id int64) (*models.Complaint, error) {
	selectBuilder := r.sb.Select(append(complaintColumns,
		"w.name AS ward_name",
		"p.name || ' ' || p.type AS palika",
	)...).
		From("complaints c").
		LeftJoin("images i ON c.photo_path = i.id").
		Join("wards w ON w.id = c.ward_id").
		Join("palikas p ON p.id = w.palika_id").
		Where(squirrel.Eq{"c.id": id}).
		Limit(1)

	sqlQuery, args, err := selectBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get complaint by ID SQL")
		return nil, fmt.Errorf("failed to build get complaint query: %w", err)
	}

	var c models.Complaint
	var wardName, palikaName sql.NullString
	row := r.db.QueryRow(ctx, sqlQuery, args...)
	if err := scanComplaintWithLocation(row, &c, &wardName, &palikaName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Warn().Int64("complaintID", id).Msg("Complaint not found by ID")
			return nil, apperrors.ErrComplaintNotFound
		}
		logger.Error().Err(err).Int64("complaintID", id).Msg("Error scanning complaint row by ID")
		return nil, fmt.Errorf("error querying complaint ID=%d: %w", id, err)
	}

	if wardName.Valid {
		c.WardName = wardName.String
	}
	if palikaName.Valid {
		c.PalikaName = palikaName.String
	}

	return &c, nil
}

// Create inserts a new complaint and returns its id.
func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) (int64, error) {
	sqlQuery, args, err := r.sb.Insert("complaints").
		Columns("user_id", "ward_id", "title", "description", "status", "tags", "photo_path").
		Values(
			complaint.UserID, complaint.WardID, complaint.Title,
			complaint.Description, string(complaint.Status), complaint.Tags,
			helpers.GetNullInt64(complaint.PhotoID),
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create complaint SQL")
		return 0, fmt.Errorf("failed to build create complaint query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlQuery, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create complaint query")
		return 0, fmt.Errorf("error inserting complaint: %w", err)
	}

	logger.Info().Int64("complaintID", id).Int64("wardID", complaint.WardID).Msg("Complaint created")
	return id, nil
}

// Delete removes a complaint owned by the given submitter.
func (r *ComplaintRepository) Delete(ctx context.Context, id, submitterID int64) error {
	sqlQuery, args, err := r.sb.Delete("complaints").
		Where(squirrel.And{
			squirrel.Eq{"id": id},
			squirrel.Eq{"user_id": submitterID},
		}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Int64("complaintID", id).Msg("Error building delete complaint SQL")
		return fmt.Errorf("failed to build delete complaint query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Int64("complaintID", id).Msg("Error executing delete complaint query")
		return fmt.Errorf("error deleting complaint ID=%d: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		logger.Warn().Int64("complaintID", id).Int64("submitterID", submitterID).Msg("Attempted to delete complaint not owned or not found")
		return apperrors.ErrComplaintNotFound
	}

	logger.Info().Int64("complaintID", id).Msg("Complaint deleted")
	return nil
}

// UpdateStatus changes a complaint's status. resolvedAt must be non-nil
// exactly when the new status is terminal.
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id int64, status models.ComplaintStatus, resolvedAt *time.Time) error {
	var resolvedArg interface{}
	if resolvedAt != nil {
		resolvedArg = *resolvedAt
	}

	sqlQuery, args, err := r.sb.Update("complaints").
		SetMap(map[string]interface{}{
			"status":      string(status),
			"resolved_at": resolvedArg,
		}).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Int64("complaintID", id).Msg("Error building update complaint status SQL")
		return fmt.Errorf("failed to build update status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Int64("complaintID", id).Msg("Error executing update complaint status query")
		return fmt.Errorf("error updating complaint ID=%d: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		logger.Warn().Int64("complaintID", id).Msg("Attempted to update status of non-existent complaint")
		return apperrors.ErrComplaintNotFound
	}

	logger.Info().Int64("complaintID", id).Str("status", string(status)).Msg("Complaint status updated")
	return nil
}

// rowScanner adapts a pgx.Row to the pgx.Rows Scan signature used by the
// shared scan helpers.
type rowScanner struct {
	row pgx.Row
}

func (r rowScanner) Scan(dest ...interface{}) error {
	return r.row.Scan(dest...)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanComplaint scans the shared complaint columns. rating/feedback are
// scanned only when non-nil destinations are supplied.
func scanComplaint(s scanner, c *models.Complaint, rating *sql.NullInt16, feedback *sql.NullString) error {
	var status string
	var photoID sql.NullInt64
	var resolvedAt sql.NullTime
	var imageURL sql.NullString

	dest := []interface{}{
		&c.ID, &c.UserID, &c.WardID, &c.Title, &c.Description,
		&status, &c.Tags, &photoID, &c.SubmittedAt, &resolvedAt,
		&imageURL,
	}
	if rating != nil && feedback != nil {
		dest = append(dest, rating, feedback)
	}

	if err := s.Scan(dest...); err != nil {
		return err
	}

	c.Status = models.ComplaintStatus(status)
	if photoID.Valid {
		v := photoID.Int64
		c.PhotoID = &v
	}
	if resolvedAt.Valid {
		v := resolvedAt.Time
		c.ResolvedAt = &v
	}
	if imageURL.Valid {
		v := imageURL.String
		c.ImageURL = &v
	}
	return nil
}

// scanComplaintWithLocation scans the complaint columns plus ward/palika names.
func scanComplaintWithLocation(row pgx.Row, c *models.Complaint, wardName, palikaName *sql.NullString) error {
	var status string
	var photoID sql.NullInt64
	var resolvedAt sql.NullTime
	var imageURL sql.NullString

	err := row.Scan(
		&c.ID, &c.UserID, &c.WardID, &c.Title, &c.Description,
		&status, &c.Tags, &photoID, &c.SubmittedAt, &resolvedAt,
		&imageURL, wardName, palikaName,
	)
	if err != nil {
		return err
	}

	c.Status = models.ComplaintStatus(status)
	if photoID.Valid {
		v := photoID.Int64
		c.PhotoID = &v
	}
	if resolvedAt.Valid {
		v := resolvedAt.Time
		c.ResolvedAt = &v
	}
	if imageURL.Valid {
		v := imageURL.String
		c.ImageURL = &v
	}
	return nil
}
