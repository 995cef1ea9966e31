package store

import (
	"database/sql"

	"github.com/skycastapp/locsync/internal/logger"
	"github.com/skycastapp/locsync/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
