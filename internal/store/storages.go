package store

import (
	"context"
	"fmt"

	"github.com/skycastapp/locsync/internal/config"
	"github.com/skycastapp/locsync/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// Locations is the SQLite-backed repository for the saved-locations
	// collection.
	Locations LocationRepository

	// Records is the SQLite-backed mirror of server-side record metadata.
	Records RecordCacheRepository

	// Checkpoints is the file-backed store for the opaque sync checkpoint.
	Checkpoints CheckpointRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Locations:   NewLocationRepository(db, logger),
		Records:     NewRecordCacheRepository(db, logger),
		Checkpoints: NewFileCheckpointRepository(cfg.CheckpointPath, logger),
	}, nil
}
