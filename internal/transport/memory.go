// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The locsync Authors

package transport

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/skycastapp/locsync/internal/logger"
	"github.com/skycastapp/locsync/internal/utils"
	"github.com/skycastapp/locsync/models"
)

// ErrTransportStarted is returned when Start is called on a running
// transport.
var ErrTransportStarted = errors.New("transport already started")

// defaultSendInterval is how often the in-memory transport asks its batch
// source for outgoing work.
const defaultSendInterval = 250 * time.Millisecond

type memoryRecord struct {
	record models.RemoteRecord
	rev    uint64
}

// MemoryTransport is an in-process [RemoteTransport] backed by maps. It plays
// the server side faithfully enough for local development and engine tests:
// it assigns modification dates and change tags on save, rejects saves into
// missing zones, detects change-tag conflicts, and supports incremental
// fetches through a revision-counter checkpoint.
type MemoryTransport struct {
	logger   *logger.Logger
	uuid     *utils.UUIDGenerator
	interval time.Duration

	events chan models.SyncEvent

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool

	// stateMu guards the fake server state below.
	stateMu    sync.Mutex
	zones      map[models.ZoneID]struct{}
	records    map[models.RecordID]memoryRecord
	tombstones map[models.RecordID]uint64
	rev        uint64
	account    models.AccountStatus
}

func NewMemoryTransport(eventBuffer int, log *logger.Logger) *MemoryTransport {
	if eventBuffer <= 0 {
		eventBuffer = 1
	}
	return &MemoryTransport{
		logger:     log,
		uuid:       utils.NewUUIDGenerator(),
		interval:   defaultSendInterval,
		events:     make(chan models.SyncEvent, eventBuffer),
		zones:      make(map[models.ZoneID]struct{}),
		records:    make(map[models.RecordID]memoryRecord),
		tombstones: make(map[models.RecordID]uint64),
		account:    models.AccountAvailable,
	}
}

func (t *MemoryTransport) Events() <-chan models.SyncEvent {
	return t.events
}

func (t *MemoryTransport) Start(ctx context.Context, checkpoint models.Checkpoint, source BatchSource) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return ErrTransportStarted
	}

	runCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.started = true

	t.wg.Add(1)
	go t.run(runCtx, checkpoint, source)

	t.logger.Info().Str("func", "MemoryTransport.Start").Msg("memory transport started")
	return nil
}

func (t *MemoryTransport) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started {
		return
	}

	t.cancel()
	t.wg.Wait()
	close(t.events)
	t.started = false

	t.logger.Info().Str("func", "MemoryTransport.Stop").Msg("memory transport stopped")
}

// Status implements [AccountStatusProvider] on top of the fake server state.
func (t *MemoryTransport) Status(ctx context.Context) (models.AccountStatus, error) {
	t.stateMu.Lock()
	defer t.stateMu.Unlock()
	return t.account, nil
}

func (t *MemoryTransport) run(ctx context.Context, checkpoint models.Checkpoint, source BatchSource) {
	defer t.wg.Done()

	t.fetchCycle(ctx, decodeCheckpoint(checkpoint))

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.sendCycle(ctx, source)
		}
	}
}

// fetchCycle delivers every change committed after the given revision.
func (t *MemoryTransport) fetchCycle(ctx context.Context, since uint64) {
	t.emit(ctx, models.SyncEvent{Kind: models.EventWillFetchChanges})

	t.stateMu.Lock()
	var modified []models.RemoteRecord
	for _, stored := range t.records {
		if stored.rev > since {
			modified = append(modified, stored.record)
		}
	}
	var deleted []models.RecordID
	for id, rev := range t.tombstones {
		if rev > since {
			deleted = append(deleted, id)
		}
	}
	rev := t.rev
	t.stateMu.Unlock()

	if len(modified) > 0 || len(deleted) > 0 {
		t.emit(ctx, models.SyncEvent{
			Kind:     models.EventFetchedChanges,
			Modified: modified,
			Deleted:  deleted,
		})
	}

	t.emit(ctx, models.SyncEvent{Kind: models.EventCheckpointUpdated, Checkpoint: encodeCheckpoint(rev)})
	t.emit(ctx, models.SyncEvent{Kind: models.EventDidFetchChanges})
}

func (t *MemoryTransport) sendCycle(ctx context.Context, source BatchSource) {
	batch, err := source.NextBatch(ctx, models.BatchScope{})
	if err != nil {
		t.logger.Err(err).Str("func", "MemoryTransport.sendCycle").Msg("failed to build outgoing batch")
		return
	}
	if batch.Empty() {
		return
	}

	t.emit(ctx, models.SyncEvent{Kind: models.EventWillSendChanges})

	result, rev := t.apply(batch)
	t.emit(ctx, result)
	t.emit(ctx, models.SyncEvent{Kind: models.EventCheckpointUpdated, Checkpoint: encodeCheckpoint(rev)})

	t.emit(ctx, models.SyncEvent{Kind: models.EventDidSendChanges})
}

// apply commits a batch against the fake server state and builds the
// resulting sent-batch event.
func (t *MemoryTransport) apply(batch *models.OutgoingBatch) (models.SyncEvent, uint64) {
	t.stateMu.Lock()
	defer t.stateMu.Unlock()

	event := models.SyncEvent{Kind: models.EventSentBatch}

	for _, change := range batch.DatabaseChanges {
		if change.Kind == models.CreateZoneChange {
			t.zones[change.Zone] = struct{}{}
		}
	}

	for _, save := range batch.Saves {
		if _, ok := t.zones[save.ID.Zone]; !ok {
			event.Failed = append(event.Failed, models.SaveFailure{
				Record: save,
				Code:   models.FailureZoneMissing,
			})
			continue
		}

		if current, ok := t.records[save.ID]; ok && current.record.ChangeTag != save.ChangeTag {
			server := current.record
			event.Failed = append(event.Failed, models.SaveFailure{
				Record:       save,
				Code:         models.FailureConflict,
				ServerRecord: &server,
			})
			continue
		}

		t.rev++
		now := time.Now().UTC()
		save.ModificationDate = &now
		save.ChangeTag = t.uuid.Generate()
		t.records[save.ID] = memoryRecord{record: save, rev: t.rev}
		delete(t.tombstones, save.ID)

		event.Saved = append(event.Saved, save)
	}

	for _, id := range batch.Deletes {
		if _, ok := t.records[id]; ok {
			delete(t.records, id)
			t.rev++
			t.tombstones[id] = t.rev
		}
		// deleting an unknown record is confirmed as removed anyway
		event.Removed = append(event.Removed, id)
	}

	return event, t.rev
}

func (t *MemoryTransport) emit(ctx context.Context, event models.SyncEvent) {
	select {
	case t.events <- event:
	case <-ctx.Done():
	}
}

func encodeCheckpoint(rev uint64) models.Checkpoint {
	return models.Checkpoint(strconv.FormatUint(rev, 10))
}

// decodeCheckpoint treats an unreadable checkpoint as absent, which degrades
// to a full refetch.
func decodeCheckpoint(checkpoint models.Checkpoint) uint64 {
	if len(checkpoint) == 0 {
		return 0
	}
	rev, err := strconv.ParseUint(string(checkpoint), 10, 64)
	if err != nil {
		return 0
	}
	return rev
}

// Helpers below simulate remote-side activity. They are used by tests and by
// the local development binary to exercise the engine without a real server.

// SeedZone marks a zone as existing on the fake server.
func (t *MemoryTransport) SeedZone(zone models.ZoneID) {
	t.stateMu.Lock()
	defer t.stateMu.Unlock()
	t.zones[zone] = struct{}{}
}

// SetAccountStatus changes what [MemoryTransport.Status] reports.
func (t *MemoryTransport) SetAccountStatus(status models.AccountStatus) {
	t.stateMu.Lock()
	defer t.stateMu.Unlock()
	t.account = status
}

// PushRecord commits a record change as if another device saved it, then
// delivers it with a fetched-changes event.
func (t *MemoryTransport) PushRecord(record models.RemoteRecord) {
	t.stateMu.Lock()
	t.zones[record.ID.Zone] = struct{}{}
	t.rev++
	if record.ModificationDate == nil {
		now := time.Now().UTC()
		record.ModificationDate = &now
	}
	if record.ChangeTag == "" {
		record.ChangeTag = t.uuid.Generate()
	}
	t.records[record.ID] = memoryRecord{record: record, rev: t.rev}
	delete(t.tombstones, record.ID)
	rev := t.rev
	t.stateMu.Unlock()

	t.events <- models.SyncEvent{Kind: models.EventFetchedChanges, Modified: []models.RemoteRecord{record}}
	t.events <- models.SyncEvent{Kind: models.EventCheckpointUpdated, Checkpoint: encodeCheckpoint(rev)}
}

// PushDelete commits a record deletion as if another device removed it.
func (t *MemoryTransport) PushDelete(id models.RecordID) {
	t.stateMu.Lock()
	delete(t.records, id)
	t.rev++
	t.tombstones[id] = t.rev
	rev := t.rev
	t.stateMu.Unlock()

	t.events <- models.SyncEvent{Kind: models.EventFetchedChanges, Deleted: []models.RecordID{id}}
	t.events <- models.SyncEvent{Kind: models.EventCheckpointUpdated, Checkpoint: encodeCheckpoint(rev)}
}

// PushZoneDeletion removes a zone with everything in it and delivers the
// zone-deleted event.
func (t *MemoryTransport) PushZoneDeletion(zone models.ZoneID) {
	t.stateMu.Lock()
	delete(t.zones, zone)
	for id := range t.records {
		if id.Zone == zone {
			delete(t.records, id)
		}
	}
	t.stateMu.Unlock()

	t.events <- models.SyncEvent{Kind: models.EventZoneDeleted, Zone: zone}
}

// PushAccountChange delivers an account transition event.
func (t *MemoryTransport) PushAccountChange(kind models.AccountChangeKind) {
	t.events <- models.SyncEvent{Kind: models.EventAccountChanged, Account: models.AccountChange{Kind: kind}}
}
