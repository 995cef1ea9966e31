package store

import (
	"context"
	"fmt"

	"github.com/skycastapp/locsync/internal/logger"
	"github.com/skycastapp/locsync/models"
)

type locationRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocationRepository(db *DB, logger *logger.Logger) LocationRepository {
	return &locationRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *locationRepository) GetAll(ctx context.Context) ([]models.SavedLocation, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getAllLocations)
	if err != nil {
		log.Err(err).
			Str("func", "locationRepository.GetAll").
			Msg("failed to execute query for getting all saved locations")
		return nil, fmt.Errorf("failed to query all saved locations: %w", err)
	}
	defer rows.Close()

	var items []models.SavedLocation

	for rows.Next() {
		var item models.SavedLocation

		scanErr := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Query,
			&item.Latitude,
			&item.Longitude,
			&item.Position,
			&item.LastModified,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "locationRepository.GetAll").
				Msg("failed to scan saved location row")
			return nil, fmt.Errorf("failed to scan saved location row: %w", scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "locationRepository.GetAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating saved location rows: %w", rowsErr)
	}

	return items, nil
}

// SetAll replaces the whole collection inside one transaction so a reader can
// never observe a half-applied reconciliation result.
func (l *locationRepository) SetAll(ctx context.Context, locations []models.SavedLocation) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "locationRepository.SetAll").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteAllLocations); err != nil {
		log.Err(err).
			Str("func", "locationRepository.SetAll").
			Msg("failed to clear saved locations")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, item := range locations {
		_, err := tx.ExecContext(ctx, saveSingleLocation,
			item.ID,
			item.Name,
			item.Query,
			item.Latitude,
			item.Longitude,
			item.Position,
			item.LastModified,
		)
		if err != nil {
			log.Err(err).
				Str("func", "locationRepository.SetAll").
				Str("id", item.ID).
				Msg("failed to insert saved location")
			return fmt.Errorf("failed to save location (id=%s): %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "locationRepository.SetAll").
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *locationRepository) Add(ctx context.Context, location models.SavedLocation) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, saveSingleLocation,
		location.ID,
		location.Name,
		location.Query,
		location.Latitude,
		location.Longitude,
		location.Position,
		location.LastModified,
	)
	if err != nil {
		log.Err(err).
			Str("func", "locationRepository.Add").
			Str("id", location.ID).
			Msg("failed to execute upsert for saved location")
		return fmt.Errorf("failed to save location (id=%s): %w", location.ID, err)
	}

	return nil
}

func (l *locationRepository) Remove(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := l.DB.ExecContext(ctx, deleteSingleLocation, id)
	if err != nil {
		log.Err(err).
			Str("func", "locationRepository.Remove").
			Str("id", id).
			Msg("failed to execute delete for saved location")
		return fmt.Errorf("failed to delete location (id=%s): %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "locationRepository.Remove").
			Str("id", id).
			Msg("failed to get rows affected after delete")
		return fmt.Errorf("failed to get rows affected (id=%s): %w", id, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "locationRepository.Remove").
			Str("id", id).
			Msg("no rows affected during delete: location not found")
		return fmt.Errorf("%w (id=%s)", ErrLocationNotFound, id)
	}

	return nil
}
