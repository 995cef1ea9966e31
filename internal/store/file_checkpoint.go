package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/skycastapp/locsync/internal/logger"
	"github.com/skycastapp/locsync/models"
)

type fileCheckpointRepository struct {
	path   string
	logger *logger.Logger
}

// NewFileCheckpointRepository stores the sync checkpoint in a single file.
// The checkpoint is opaque bytes, so a file is enough; the database stays
// reserved for row-shaped data.
func NewFileCheckpointRepository(path string, logger *logger.Logger) CheckpointRepository {
	return &fileCheckpointRepository{
		path:   path,
		logger: logger,
	}
}

func (f *fileCheckpointRepository) Get(ctx context.Context) (models.Checkpoint, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			// a missing file simply means no checkpoint was stored yet
			return nil, nil
		}
		log.Err(err).
			Str("func", "fileCheckpointRepository.Get").
			Str("path", f.path).
			Msg("failed to read checkpoint file")
		return nil, fmt.Errorf("failed to read checkpoint file: %w", err)
	}

	return models.Checkpoint(data), nil
}

// Set writes through a temp file and rename, so a crash mid-write leaves the
// previous checkpoint intact.
func (f *fileCheckpointRepository) Set(ctx context.Context, checkpoint models.Checkpoint) error {
	log := logger.FromContext(ctx)

	dir := filepath.Dir(f.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Err(err).
				Str("func", "fileCheckpointRepository.Set").
				Str("path", f.path).
				Msg("failed to create checkpoint directory")
			return fmt.Errorf("failed to create checkpoint directory: %w", err)
		}
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, checkpoint, 0o600); err != nil {
		log.Err(err).
			Str("func", "fileCheckpointRepository.Set").
			Str("path", f.path).
			Msg("failed to write checkpoint temp file")
		return fmt.Errorf("failed to write checkpoint file: %w", err)
	}

	if err := os.Rename(tmp, f.path); err != nil {
		log.Err(err).
			Str("func", "fileCheckpointRepository.Set").
			Str("path", f.path).
			Msg("failed to replace checkpoint file")
		return fmt.Errorf("failed to replace checkpoint file: %w", err)
	}

	return nil
}
