package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/palikatech/gunaso/internal/app/models"
	"github.com/palikatech/gunaso/internal/pkg/apperrors"
	"github.com/palikatech/gunaso/internal/pkg/dberrors"
	"github.com/palikatech/gunaso/internal/pkg/logger"
)

// WardRepository handles ward and palika database operations
type WardRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewWardRepository creates a new WardRepository
func NewWardRepository(db *pgxpool.Pool) *WardRepository {
	return &WardRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByID retrieves a ward by its id.
func (r *WardRepository) GetByID(ctx context.Context, id int64) (*models.Ward, error) {
	sqlQuery, args, err := r.sb.Select("id", "name", "palika_id").
		From("wards").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get ward by ID SQL")
		return nil, fmt.Errorf("failed to build get ward query: %w", err)
	}

	var ward models.Ward
	if err := r.db.QueryRow(ctx, sqlQuery, args...).Scan(&ward.ID, &ward.Name, &ward.PalikaID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrWardNotFound
		}
		logger.Error().Err(err).Int64("wardID", id).Msg("Error scanning ward row")
		return nil, fmt.Errorf("error querying ward ID=%d: %w", id, err)
	}

	return &ward, nil
}

// Locate finds the ward whose boundary polygon contains the coordinate.
// PostGIS points take longitude first.
func (r *WardRepository) Locate(ctx context.Context, lat, lng float64) (*models.Ward, error) {
	const locateQuery = `
		SELECT id, name, palika_id
		FROM wards
		WHERE ST_Contains(boundary, ST_SetSRID(ST_Point($1, $2), 4326))
		LIMIT 1`

	var ward models.Ward
	if err := r.db.QueryRow(ctx, locateQuery, lng, lat).Scan(&ward.ID, &ward.Name, &ward.PalikaID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrWardNotFound
		}
		logger.Error().Err(err).Float64("lat", lat).Float64("lng", lng).Msg("Error locating ward")
		return nil, fmt.Errorf("error locating ward: %w", err)
	}

	return &ward, nil
}

// CreatePalika inserts a palika, returning its id. Used by seeding.
func (r *WardRepository) CreatePalika(ctx context.Context, palika *models.Palika) (int64, error) {
	sqlQuery, args, err := r.sb.Insert("palikas").
		Columns("name", "type").
		Values(palika.Name, palika.Type).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create palika query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlQuery, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "palikas_name_type_key") {
			return 0, apperrors.ErrResourceAlreadyExists
		}
		return 0, fmt.Errorf("error inserting palika: %w", err)
	}
	return id, nil
}

// CreateWard inserts a ward without a boundary polygon. Used by seeding;
// boundaries are loaded separately from survey data.
func (r *WardRepository) CreateWard(ctx context.Context, ward *models.Ward) (int64, error) {
	sqlQuery, args, err := r.sb.Insert("wards").
		Columns("name", "palika_id").
		Values(ward.Name, ward.PalikaID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create ward query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlQuery, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrResourceAlreadyExists
		}
		return 0, fmt.Errorf("error inserting ward: %w", err)
	}
	return id, nil
}
