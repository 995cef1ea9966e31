// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The locsync Authors

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/skycastapp/locsync/internal/logger"
	"github.com/skycastapp/locsync/models"
)

const recordCacheTable = "record_cache"

var recordCacheColumns = []string{"name", "zone", "record_type", "modification_date", "change_tag", "fields"}

type recordCacheRepository struct {
	*DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

func NewRecordCacheRepository(db *DB, logger *logger.Logger) RecordCacheRepository {
	return &recordCacheRepository{
		DB:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  logger,
	}
}

func (r *recordCacheRepository) GetAll(ctx context.Context) ([]models.RemoteRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(recordCacheColumns...).
		From(recordCacheTable).
		OrderBy("name").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "recordCacheRepository.GetAll").
			Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordCacheRepository.GetAll").
			Msg("failed to execute query for getting all cached records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.RemoteRecord

	for rows.Next() {
		record, scanErr := scanRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "recordCacheRepository.GetAll").
				Msg("failed to scan cached record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "recordCacheRepository.GetAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating cached record rows: %w", rowsErr)
	}

	return records, nil
}

func (r *recordCacheRepository) Get(ctx context.Context, id models.RecordID) (models.RemoteRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(recordCacheColumns...).
		From(recordCacheTable).
		Where(sq.Eq{"name": id.Name, "zone": string(id.Zone)}).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "recordCacheRepository.Get").
			Str("record", id.Name).
			Msg("failed to build select query")
		return models.RemoteRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, scanErr := scanRecord(r.DB.QueryRowContext(ctx, query, args...))
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.RemoteRecord{}, fmt.Errorf("%w (record=%s)", ErrRecordNotFound, id.Name)
		}
		log.Err(scanErr).
			Str("func", "recordCacheRepository.Get").
			Str("record", id.Name).
			Msg("failed to scan cached record row")
		return models.RemoteRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return record, nil
}

func (r *recordCacheRepository) Create(ctx context.Context, id models.RecordID, recordType string) (models.RemoteRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(recordCacheTable).
		Columns("name", "zone", "record_type").
		Values(id.Name, string(id.Zone), recordType).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "recordCacheRepository.Create").
			Str("record", id.Name).
			Msg("failed to build insert query")
		return models.RemoteRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "recordCacheRepository.Create").
			Str("record", id.Name).
			Msg("failed to execute insert for cached record")
		return models.RemoteRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.Get(ctx, id)
}

// Update resolves recency before writing: the candidate only replaces the
// cached record when [models.RemoteRecord.Newer] picks it. The winner is
// stored and returned either way, so callers always observe the cache state
// after the call.
func (r *recordCacheRepository) Update(ctx context.Context, candidate models.RemoteRecord) (models.RemoteRecord, error) {
	log := logger.FromContext(ctx)

	winner := candidate
	current, err := r.Get(ctx, candidate.ID)
	if err == nil {
		winner = current.Newer(candidate)
	} else if !errors.Is(err, ErrRecordNotFound) {
		return models.RemoteRecord{}, err
	}

	fields, err := json.Marshal(winner.Fields)
	if err != nil {
		log.Err(err).
			Str("func", "recordCacheRepository.Update").
			Str("record", winner.ID.Name).
			Msg("failed to encode record fields")
		return models.RemoteRecord{}, fmt.Errorf("failed to encode record fields: %w", err)
	}

	query, args, err := r.builder.
		Insert(recordCacheTable).
		Columns(recordCacheColumns...).
		Values(winner.ID.Name, string(winner.ID.Zone), winner.RecordType, winner.ModificationDate, winner.ChangeTag, fields).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			zone              = excluded.zone,
			record_type       = excluded.record_type,
			modification_date = excluded.modification_date,
			change_tag        = excluded.change_tag,
			fields            = excluded.fields`).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "recordCacheRepository.Update").
			Str("record", winner.ID.Name).
			Msg("failed to build upsert query")
		return models.RemoteRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "recordCacheRepository.Update").
			Str("record", winner.ID.Name).
			Msg("failed to execute upsert for cached record")
		return models.RemoteRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return winner, nil
}

func (r *recordCacheRepository) Delete(ctx context.Context, id models.RecordID) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete(recordCacheTable).
		Where(sq.Eq{"name": id.Name, "zone": string(id.Zone)}).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "recordCacheRepository.Delete").
			Str("record", id.Name).
			Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// deleting an absent record is fine: the cache only mirrors server state
	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "recordCacheRepository.Delete").
			Str("record", id.Name).
			Msg("failed to execute delete for cached record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *recordCacheRepository) DeleteAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.Delete(recordCacheTable).ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "recordCacheRepository.DeleteAll").
			Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "recordCacheRepository.DeleteAll").
			Msg("failed to clear record cache")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.RemoteRecord, error) {
	var (
		record  models.RemoteRecord
		zone    string
		modDate sql.NullTime
		fields  []byte
	)

	if err := row.Scan(
		&record.ID.Name,
		&zone,
		&record.RecordType,
		&modDate,
		&record.ChangeTag,
		&fields,
	); err != nil {
		return models.RemoteRecord{}, err
	}

	record.ID.Zone = models.ZoneID(zone)
	if modDate.Valid {
		t := modDate.Time
		record.ModificationDate = &t
	}
	if len(fields) > 0 {
		if err := json.Unmarshal(fields, &record.Fields); err != nil {
			return models.RemoteRecord{}, fmt.Errorf("failed to decode record fields: %w", err)
		}
	}

	return record, nil
}
