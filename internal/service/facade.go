package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/skycastapp/locsync/internal/logger"
	"github.com/skycastapp/locsync/internal/store"
	"github.com/skycastapp/locsync/internal/transport"
	"github.com/skycastapp/locsync/models"
)

type operations struct {
	gate *sync.Mutex

	locations store.LocationRepository
	records   store.RecordCacheRepository
	queue     *PendingChangeQueue
	account   transport.AccountStatusProvider
	zone      models.ZoneID
	logger    *logger.Logger
}

// NewOperations builds the user-facing mutation facade. The gate must be the
// same mutex the reconciliation engine uses, so facade calls and event
// handlers never interleave their store access.
func NewOperations(
	gate *sync.Mutex,
	locations store.LocationRepository,
	records store.RecordCacheRepository,
	queue *PendingChangeQueue,
	account transport.AccountStatusProvider,
	zone models.ZoneID,
	logger *logger.Logger,
) Operations {
	return &operations{
		gate:      gate,
		locations: locations,
		records:   records,
		queue:     queue,
		account:   account,
		zone:      zone,
		logger:    logger,
	}
}

// checkAccount fails fast when no usable remote account is present. No
// mutation may happen after a failed check.
func (o *operations) checkAccount(ctx context.Context) error {
	status, err := o.account.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to determine account status: %w", err)
	}
	if status != models.AccountAvailable {
		return ErrAccountUnavailable
	}
	return nil
}

func (o *operations) RequestSave(ctx context.Context, location models.SavedLocation) error {
	return o.RequestSaveAll(ctx, []models.SavedLocation{location})
}

// RequestSaveAll persists the items locally, ensures a cached record exists
// for each, and enqueues all save intents in a single queue mutation so the
// transport observes either the whole batch or none of it.
func (o *operations) RequestSaveAll(ctx context.Context, locations []models.SavedLocation) error {
	if err := o.checkAccount(ctx); err != nil {
		return err
	}
	if len(locations) == 0 {
		return nil
	}

	o.gate.Lock()
	defer o.gate.Unlock()

	saves := make([]models.PendingChange, 0, len(locations))
	for _, location := range locations {
		if err := o.locations.Add(ctx, location); err != nil {
			return fmt.Errorf("failed to save location %q: %w", location.ID, err)
		}

		id := models.RecordID{Zone: o.zone, Name: location.ID}
		if err := o.ensureRecord(ctx, id); err != nil {
			return err
		}

		saves = append(saves, models.PendingChange{Kind: models.SaveChange, RecordID: id})
	}

	o.queue.Enqueue(saves, nil)

	o.logger.Debug().
		Str("func", "operations.RequestSaveAll").
		Int("count", len(saves)).
		Msg("enqueued save intents")

	return nil
}

func (o *operations) RequestDelete(ctx context.Context, id string) error {
	return o.RequestDeleteAll(ctx, []string{id})
}

// RequestDeleteAll verifies every item has a cached record before mutating
// anything, then removes the items and their cache entries and enqueues all
// delete intents in a single queue mutation.
func (o *operations) RequestDeleteAll(ctx context.Context, ids []string) error {
	if err := o.checkAccount(ctx); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	o.gate.Lock()
	defer o.gate.Unlock()

	recordIDs := make([]models.RecordID, 0, len(ids))
	for _, id := range ids {
		recordID := models.RecordID{Zone: o.zone, Name: id}
		if _, err := o.records.Get(ctx, recordID); err != nil {
			return fmt.Errorf("cannot delete location %q: %w", id, err)
		}
		recordIDs = append(recordIDs, recordID)
	}

	deletes := make([]models.PendingChange, 0, len(recordIDs))
	for _, recordID := range recordIDs {
		if err := o.locations.Remove(ctx, recordID.Name); err != nil && !isNotFound(err) {
			return fmt.Errorf("failed to remove location %q: %w", recordID.Name, err)
		}
		if err := o.records.Delete(ctx, recordID); err != nil {
			return fmt.Errorf("failed to drop cached record %q: %w", recordID.Name, err)
		}
		deletes = append(deletes, models.PendingChange{Kind: models.DeleteChange, RecordID: recordID})
	}

	o.queue.Enqueue(deletes, nil)

	o.logger.Debug().
		Str("func", "operations.RequestDeleteAll").
		Int("count", len(deletes)).
		Msg("enqueued delete intents")

	return nil
}

// ensureRecord makes sure a cache entry exists for the id: an existing entry
// is the basis for an update, a missing one is created fresh.
func (o *operations) ensureRecord(ctx context.Context, id models.RecordID) error {
	_, err := o.records.Get(ctx, id)
	if err == nil {
		return nil
	}
	if !isNotFound(err) {
		return fmt.Errorf("failed to look up cached record %q: %w", id.Name, err)
	}

	if _, err := o.records.Create(ctx, id, models.RecordTypeSavedLocation); err != nil {
		return fmt.Errorf("failed to create cached record %q: %w", id.Name, err)
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrRecordNotFound) || errors.Is(err, store.ErrLocationNotFound)
}
