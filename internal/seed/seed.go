package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/palikatech/gunaso/internal/app/models"
	appRepos "github.com/palikatech/gunaso/internal/app/repositories"
	"github.com/palikatech/gunaso/internal/pkg/apperrors"
)

// CreateDefaultData creates the default municipality and its wards if they
// don't exist. Ward boundary polygons are loaded separately from survey data.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	wardRepo := appRepos.NewWardRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (Palika/Wards)...")
	var finalErr error

	palika := &appModels.Palika{Name: "Kathmandu", Type: "Metropolitan City"}
	palikaID, err := wardRepo.CreatePalika(ctx, palika)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			lgr.Debug().Str("palika", palika.Name).Msg("Default palika already exists, skipping seed")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default palika")
		return err
	}

	for i := 1; i <= 32; i++ {
		ward := &appModels.Ward{Name: fmt.Sprintf("Ward %d", i), PalikaID: palikaID}
		if _, err := wardRepo.CreateWard(ctx, ward); err != nil && !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			lgr.Error().Err(err).Str("ward", ward.Name).Msg("Error creating default ward")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Int64("palikaID", palikaID).Msg("Default data created")
	}
	return finalErr
}
