// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The locsync Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/skycastapp/locsync/internal/logger"
	"github.com/skycastapp/locsync/internal/store"
	"github.com/skycastapp/locsync/models"
)

// ReconciliationEngine is the event reactor that keeps the local
// saved-locations collection consistent with the remote record store.
//
// The transport delivers events with no ordering guarantee and possibly
// concurrently; the gate mutex enforces the single-writer discipline over the
// item store and record cache, so two handlers can never interleave their
// read-modify-write sequences. The same gate is shared with the operations
// facade.
type ReconciliationEngine struct {
	gate *sync.Mutex

	locations   store.LocationRepository
	records     store.RecordCacheRepository
	checkpoints store.CheckpointRepository
	queue       *PendingChangeQueue
	reconciler  *Reconciler
	notifier    Notifier
	zone        models.ZoneID
	logger      *logger.Logger
}

func NewReconciliationEngine(
	gate *sync.Mutex,
	locations store.LocationRepository,
	records store.RecordCacheRepository,
	checkpoints store.CheckpointRepository,
	queue *PendingChangeQueue,
	reconciler *Reconciler,
	notifier Notifier,
	zone models.ZoneID,
	logger *logger.Logger,
) *ReconciliationEngine {
	return &ReconciliationEngine{
		gate:        gate,
		locations:   locations,
		records:     records,
		checkpoints: checkpoints,
		queue:       queue,
		reconciler:  reconciler,
		notifier:    notifier,
		zone:        zone,
		logger:      logger,
	}
}

func (e *ReconciliationEngine) HandleEvent(ctx context.Context, event models.SyncEvent) {
	log := logger.FromContext(ctx)
	log.Debug().
		Str("func", "ReconciliationEngine.HandleEvent").
		Str("event", event.Kind.String()).
		Msg("handling sync event")

	switch event.Kind {
	case models.EventCheckpointUpdated:
		e.handleCheckpoint(ctx, event.Checkpoint)
	case models.EventAccountChanged:
		e.handleAccountChange(ctx, event.Account)
	case models.EventZoneDeleted:
		e.handleZoneDeleted(ctx, event.Zone)
	case models.EventFetchedChanges:
		e.handleFetchedChanges(ctx, event.Modified, event.Deleted)
	case models.EventSentBatch:
		e.handleSentBatch(ctx, event.Saved, event.Removed, event.Failed)
	default:
		// will/did fetch-send housekeeping: extension points only
	}
}

// handleCheckpoint persists the resumption token. Persistence failure is
// logged and swallowed: losing a checkpoint degrades to a full refetch.
func (e *ReconciliationEngine) handleCheckpoint(ctx context.Context, checkpoint models.Checkpoint) {
	if err := e.checkpoints.Set(ctx, checkpoint); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "ReconciliationEngine.handleCheckpoint").
			Msg("failed to persist sync checkpoint")
	}
}

func (e *ReconciliationEngine) handleZoneDeleted(ctx context.Context, zone models.ZoneID) {
	log := logger.FromContext(ctx)

	if zone != e.zone {
		log.Info().
			Str("func", "ReconciliationEngine.handleZoneDeleted").
			Str("zone", string(zone)).
			Msg("ignoring deletion of a zone we hold no items in")
		return
	}

	e.gate.Lock()
	defer e.gate.Unlock()

	if err := e.locations.SetAll(ctx, nil); err != nil {
		log.Err(err).
			Str("func", "ReconciliationEngine.handleZoneDeleted").
			Msg("failed to clear saved locations")
		return
	}
	if err := e.records.DeleteAll(ctx); err != nil {
		log.Err(err).
			Str("func", "ReconciliationEngine.handleZoneDeleted").
			Msg("failed to clear record cache")
	}

	e.notifier.LocationsChanged(ctx)
}

// handleFetchedChanges applies one event's modifications and deletions in a
// single collection write.
func (e *ReconciliationEngine) handleFetchedChanges(ctx context.Context, modified []models.RemoteRecord, deleted []models.RecordID) {
	log := logger.FromContext(ctx)

	e.gate.Lock()
	defer e.gate.Unlock()

	locations, err := e.locations.GetAll(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "ReconciliationEngine.handleFetchedChanges").
			Msg("failed to load saved locations")
		return
	}
	cached, err := e.records.GetAll(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "ReconciliationEngine.handleFetchedChanges").
			Msg("failed to load record cache")
		return
	}

	plan := e.reconciler.BuildFetchPlan(locations, cached, modified, deleted)

	for _, planErr := range plan.Errors {
		log.Err(planErr).
			Str("func", "ReconciliationEngine.handleFetchedChanges").
			Msg("skipping record after merge failure")
	}
	for _, id := range plan.Skipped {
		log.Debug().
			Str("func", "ReconciliationEngine.handleFetchedChanges").
			Str("record", id.Name).
			Msg("skipping modified record without local counterpart")
	}

	if plan.Changed {
		if err := e.locations.SetAll(ctx, plan.Locations); err != nil {
			log.Err(err).
				Str("func", "ReconciliationEngine.handleFetchedChanges").
				Msg("failed to write merged saved locations")
			return
		}
	}

	for _, record := range plan.Upserts {
		if _, err := e.records.Update(ctx, record); err != nil {
			log.Err(err).
				Str("func", "ReconciliationEngine.handleFetchedChanges").
				Str("record", record.ID.Name).
				Msg("failed to update cached record")
		}
	}
	for _, id := range plan.Removals {
		if err := e.records.Delete(ctx, id); err != nil {
			log.Err(err).
				Str("func", "ReconciliationEngine.handleFetchedChanges").
				Str("record", id.Name).
				Msg("failed to delete cached record")
		}
	}

	if plan.Changed {
		e.notifier.LocationsChanged(ctx)
	}
}

// handleSentBatch confirms delivered changes and dispatches failed saves
// through the retry policy. All requeued intents from one event are applied
// to the queue in a single mutation.
func (e *ReconciliationEngine) handleSentBatch(ctx context.Context, saved []models.RemoteRecord, removed []models.RecordID, failed []models.SaveFailure) {
	log := logger.FromContext(ctx)

	e.gate.Lock()
	defer e.gate.Unlock()

	for _, record := range saved {
		if _, err := e.records.Update(ctx, record); err != nil {
			log.Err(err).
				Str("func", "ReconciliationEngine.handleSentBatch").
				Str("record", record.ID.Name).
				Msg("failed to update cached record after confirmed save")
		}
		e.queue.Remove(models.SaveChange, record.ID)
	}
	for _, id := range removed {
		e.queue.Remove(models.DeleteChange, id)
	}

	if len(failed) == 0 {
		return
	}

	plan := BuildRetryPlan(failed)

	for _, failure := range plan.Transient {
		log.Debug().
			Str("func", "ReconciliationEngine.handleSentBatch").
			Str("record", failure.Record.ID.Name).
			Str("code", failure.Code.String()).
			Msg("transient save failure, transport will retry")
	}
	for _, failure := range plan.Unknown {
		log.Error().
			Str("func", "ReconciliationEngine.handleSentBatch").
			Str("record", failure.Record.ID.Name).
			Str("code", failure.Code.String()).
			Msg("unclassified save failure, no corrective action")
	}

	changed := e.resolveConflicts(ctx, plan.Conflicts)

	for _, id := range plan.ClearCache {
		if err := e.records.Delete(ctx, id); err != nil {
			log.Err(err).
				Str("func", "ReconciliationEngine.handleSentBatch").
				Str("record", id.Name).
				Msg("failed to clear invalid cached record")
		}
	}

	if len(plan.Requeue) > 0 || len(plan.ZoneCreates) > 0 {
		e.queue.Enqueue(plan.Requeue, plan.ZoneCreates)
	}

	if changed {
		e.notifier.LocationsChanged(ctx)
	}
}

// resolveConflicts merges the server's version of each conflicted record into
// the local item, writing the collection once. The cached record is updated
// to the server's version so the requeued save carries a valid change tag.
func (e *ReconciliationEngine) resolveConflicts(ctx context.Context, conflicts []models.SaveFailure) bool {
	if len(conflicts) == 0 {
		return false
	}
	log := logger.FromContext(ctx)

	locations, err := e.locations.GetAll(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "ReconciliationEngine.resolveConflicts").
			Msg("failed to load saved locations")
		return false
	}
	index := make(map[string]int, len(locations))
	for i, item := range locations {
		index[item.ID] = i
	}

	changed := false
	for _, conflict := range conflicts {
		server := *conflict.ServerRecord

		if _, err := e.records.Update(ctx, server); err != nil {
			log.Err(err).
				Str("func", "ReconciliationEngine.resolveConflicts").
				Str("record", server.ID.Name).
				Msg("failed to cache server record for conflicted save")
		}

		i, ok := index[server.ID.Name]
		if !ok {
			// item deleted locally since the save was queued; the requeued
			// save is pruned at the next batch build
			continue
		}

		merged, didChange, err := e.reconciler.codec.Merge(locations[i], server)
		if err != nil {
			log.Err(err).
				Str("func", "ReconciliationEngine.resolveConflicts").
				Str("record", server.ID.Name).
				Msg("failed to merge server record into local item")
			continue
		}
		if didChange {
			locations[i] = merged
			changed = true
		}
	}

	if changed {
		if err := e.locations.SetAll(ctx, locations); err != nil {
			log.Err(err).
				Str("func", "ReconciliationEngine.resolveConflicts").
				Msg("failed to write merged saved locations")
			return false
		}
	}

	return changed
}

// handleAccountChange implements the retention policy per account transition.
// Switching accounts or signing out deliberately clears all local state with
// no merge-then-decide step; an unrecognized kind never deletes anything.
func (e *ReconciliationEngine) handleAccountChange(ctx context.Context, change models.AccountChange) {
	log := logger.FromContext(ctx)

	switch change.Kind {
	case models.AccountSignIn:
		e.reuploadAll(ctx)

	case models.AccountSwitchAccounts, models.AccountSignOut:
		e.gate.Lock()
		defer e.gate.Unlock()

		if err := e.locations.SetAll(ctx, nil); err != nil {
			log.Err(err).
				Str("func", "ReconciliationEngine.handleAccountChange").
				Str("kind", change.Kind.String()).
				Msg("failed to clear saved locations")
			return
		}
		if err := e.records.DeleteAll(ctx); err != nil {
			log.Err(err).
				Str("func", "ReconciliationEngine.handleAccountChange").
				Str("kind", change.Kind.String()).
				Msg("failed to clear record cache")
		}
		e.queue.Clear()
		e.notifier.LocationsChanged(ctx)

	default:
		log.Warn().
			Str("func", "ReconciliationEngine.handleAccountChange").
			Str("kind", change.Kind.String()).
			Msg("unrecognized account change, taking no action")
	}
}

// reuploadAll enqueues a save for every local item whose cached record can be
// looked up, plus a zone creation for the well-known zone. Per-item lookup
// failures are skipped, not retried.
func (e *ReconciliationEngine) reuploadAll(ctx context.Context) {
	log := logger.FromContext(ctx)

	e.gate.Lock()
	defer e.gate.Unlock()

	locations, err := e.locations.GetAll(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "ReconciliationEngine.reuploadAll").
			Msg("failed to load saved locations")
		return
	}

	var saves []models.PendingChange
	for _, item := range locations {
		id := models.RecordID{Zone: e.zone, Name: item.ID}
		if _, err := e.records.Get(ctx, id); err != nil {
			log.Debug().
				Str("func", "ReconciliationEngine.reuploadAll").
				Str("record", item.ID).
				Msg("skipping item without a readable cached record")
			continue
		}
		saves = append(saves, models.PendingChange{Kind: models.SaveChange, RecordID: id})
	}

	e.queue.Enqueue(saves, []models.DatabaseChange{{Kind: models.CreateZoneChange, Zone: e.zone}})
}

// NextBatch builds the outgoing batch from the pending queue. A pending save
// whose item was deleted locally is dropped from the queue rather than sent;
// a save whose cached record was cleared gets a fresh cache entry first.
// Database changes are handed out once: if the resulting zone creation never
// lands, the following saves fail with a zone-missing code and re-enqueue it.
func (e *ReconciliationEngine) NextBatch(ctx context.Context, scope models.BatchScope) (*models.OutgoingBatch, error) {
	log := logger.FromContext(ctx)

	e.gate.Lock()
	defer e.gate.Unlock()

	changes, database := e.queue.Pending(scope)
	if len(changes) == 0 && len(database) == 0 {
		return nil, nil
	}

	var index map[string]models.SavedLocation
	if hasSaves(changes) {
		locations, err := e.locations.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load saved locations: %w", err)
		}
		index = make(map[string]models.SavedLocation, len(locations))
		for _, item := range locations {
			index[item.ID] = item
		}
	}

	batch := &models.OutgoingBatch{}

	for _, change := range changes {
		switch change.Kind {
		case models.DeleteChange:
			batch.Deletes = append(batch.Deletes, change.RecordID)

		case models.SaveChange:
			item, ok := index[change.RecordID.Name]
			if !ok {
				// item deleted locally: the intent is dropped, not retried
				e.queue.Remove(models.SaveChange, change.RecordID)
				continue
			}

			record, err := e.records.Get(ctx, change.RecordID)
			if errors.Is(err, store.ErrRecordNotFound) {
				record, err = e.records.Create(ctx, change.RecordID, models.RecordTypeSavedLocation)
			}
			if err != nil {
				log.Err(err).
					Str("func", "ReconciliationEngine.NextBatch").
					Str("record", change.RecordID.Name).
					Msg("failed to resolve cached record, keeping save queued")
				continue
			}

			projected, err := e.reconciler.codec.Project(item, record)
			if err != nil {
				log.Err(err).
					Str("func", "ReconciliationEngine.NextBatch").
					Str("record", change.RecordID.Name).
					Msg("failed to project item fields, keeping save queued")
				continue
			}

			batch.Saves = append(batch.Saves, projected)
		}
	}

	batch.DatabaseChanges = database
	for _, change := range database {
		e.queue.RemoveDatabaseChange(change)
	}

	if batch.Empty() {
		return nil, nil
	}

	log.Debug().
		Str("func", "ReconciliationEngine.NextBatch").
		Int("saves", len(batch.Saves)).
		Int("deletes", len(batch.Deletes)).
		Int("database_changes", len(batch.DatabaseChanges)).
		Msg("built outgoing batch")

	return batch, nil
}

func hasSaves(changes []models.PendingChange) bool {
	for _, change := range changes {
		if change.Kind == models.SaveChange {
			return true
		}
	}
	return false
}
