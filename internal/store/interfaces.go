package store

import (
	"context"

	"github.com/skycastapp/locsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocationRepository persists the device-local collection of saved locations.
// The collection is small and always handled as a whole: reads return every
// item and [LocationRepository.SetAll] replaces the full set in one
// transaction, which keeps reconciliation writes atomic.
type LocationRepository interface {
	// GetAll returns every saved location ordered by display position.
	GetAll(ctx context.Context) ([]models.SavedLocation, error)

	// SetAll atomically replaces the whole collection with the given one.
	SetAll(ctx context.Context, locations []models.SavedLocation) error

	// Add inserts a single location, replacing any existing row with the
	// same ID.
	Add(ctx context.Context, location models.SavedLocation) error

	// Remove deletes the location with the given ID. It returns
	// [ErrLocationNotFound] if no such location exists.
	Remove(ctx context.Context, id string) error
}

// RecordCacheRepository persists the local mirror of server-side record
// metadata. Every write resolves recency through [models.RemoteRecord.Newer],
// so a stale confirmation can never overwrite a fresher cached record.
type RecordCacheRepository interface {
	// GetAll returns every cached record.
	GetAll(ctx context.Context) ([]models.RemoteRecord, error)

	// Get returns the cached record with the given ID, or
	// [ErrRecordNotFound] if the cache holds no such record.
	Get(ctx context.Context, id models.RecordID) (models.RemoteRecord, error)

	// Create ensures a cache entry exists for the given ID and returns the
	// stored record. An existing entry is left untouched.
	Create(ctx context.Context, id models.RecordID, recordType string) (models.RemoteRecord, error)

	// Update stores whichever of the cached record and the candidate is
	// newer, and returns the winner. A candidate without a cached
	// counterpart is stored as-is.
	Update(ctx context.Context, candidate models.RemoteRecord) (models.RemoteRecord, error)

	// Delete removes the cache entry for the given ID. Deleting an absent
	// entry is not an error.
	Delete(ctx context.Context, id models.RecordID) error

	// DeleteAll clears the whole cache.
	DeleteAll(ctx context.Context) error
}

// CheckpointRepository persists the opaque sync checkpoint between runs.
type CheckpointRepository interface {
	// Get returns the stored checkpoint, or nil if none was persisted yet.
	Get(ctx context.Context) (models.Checkpoint, error)

	// Set persists the given checkpoint, replacing any previous one.
	Set(ctx context.Context, checkpoint models.Checkpoint) error
}
