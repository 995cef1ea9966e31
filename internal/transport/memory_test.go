package transport

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skycastapp/locsync/internal/logger"
	"github.com/skycastapp/locsync/models"
)

type stubBatchSource struct {
	batches chan *models.OutgoingBatch
}

func newStubBatchSource() *stubBatchSource {
	return &stubBatchSource{batches: make(chan *models.OutgoingBatch, 4)}
}

func (s *stubBatchSource) NextBatch(ctx context.Context, scope models.BatchScope) (*models.OutgoingBatch, error) {
	select {
	case batch := <-s.batches:
		return batch, nil
	default:
		return nil, nil
	}
}

func recordID(name string) models.RecordID {
	return models.RecordID{Zone: models.DefaultZone, Name: name}
}

func waitForEvent(t *testing.T, events <-chan models.SyncEvent, kind models.SyncEventKind) models.SyncEvent {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case event, ok := <-events:
			if !ok {
				t.Fatalf("event channel closed while waiting for %s", kind)
			}
			if event.Kind == kind {
				return event
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s event", kind)
		}
	}
}

func TestMemoryTransport_ApplyBatch(t *testing.T) {
	t.Run("save into missing zone fails with zone-missing code", func(t *testing.T) {
		tr := NewMemoryTransport(8, logger.Nop())

		event, _ := tr.apply(&models.OutgoingBatch{
			Saves: []models.RemoteRecord{{ID: recordID("loc-1")}},
		})

		require.Len(t, event.Failed, 1)
		assert.Equal(t, models.FailureZoneMissing, event.Failed[0].Code)
		assert.Empty(t, event.Saved)
	})

	t.Run("database change creates the zone before saves apply", func(t *testing.T) {
		tr := NewMemoryTransport(8, logger.Nop())

		event, rev := tr.apply(&models.OutgoingBatch{
			DatabaseChanges: []models.DatabaseChange{{Kind: models.CreateZoneChange, Zone: models.DefaultZone}},
			Saves:           []models.RemoteRecord{{ID: recordID("loc-1")}},
		})

		require.Len(t, event.Saved, 1)
		assert.Empty(t, event.Failed)
		assert.Equal(t, uint64(1), rev)

		saved := event.Saved[0]
		require.NotNil(t, saved.ModificationDate, "server must assign a modification date")
		assert.NotEmpty(t, saved.ChangeTag, "server must assign a change tag")
	})

	t.Run("stale change tag conflicts and carries the server record", func(t *testing.T) {
		tr := NewMemoryTransport(8, logger.Nop())
		tr.SeedZone(models.DefaultZone)

		first, _ := tr.apply(&models.OutgoingBatch{
			Saves: []models.RemoteRecord{{ID: recordID("loc-1")}},
		})
		require.Len(t, first.Saved, 1)

		event, _ := tr.apply(&models.OutgoingBatch{
			Saves: []models.RemoteRecord{{ID: recordID("loc-1"), ChangeTag: "stale"}},
		})

		require.Len(t, event.Failed, 1)
		failure := event.Failed[0]
		assert.Equal(t, models.FailureConflict, failure.Code)
		require.NotNil(t, failure.ServerRecord)
		assert.Equal(t, first.Saved[0].ChangeTag, failure.ServerRecord.ChangeTag)
	})

	t.Run("matching change tag updates the record", func(t *testing.T) {
		tr := NewMemoryTransport(8, logger.Nop())
		tr.SeedZone(models.DefaultZone)

		first, _ := tr.apply(&models.OutgoingBatch{
			Saves: []models.RemoteRecord{{ID: recordID("loc-1")}},
		})
		require.Len(t, first.Saved, 1)

		event, _ := tr.apply(&models.OutgoingBatch{
			Saves: []models.RemoteRecord{{ID: recordID("loc-1"), ChangeTag: first.Saved[0].ChangeTag}},
		})

		require.Len(t, event.Saved, 1)
		assert.NotEqual(t, first.Saved[0].ChangeTag, event.Saved[0].ChangeTag)
	})

	t.Run("delete confirms removal even for unknown records", func(t *testing.T) {
		tr := NewMemoryTransport(8, logger.Nop())
		tr.SeedZone(models.DefaultZone)

		event, _ := tr.apply(&models.OutgoingBatch{
			Deletes: []models.RecordID{recordID("ghost")},
		})

		assert.Equal(t, []models.RecordID{recordID("ghost")}, event.Removed)
	})
}

func TestMemoryTransport_StartLifecycle(t *testing.T) {
	tr := NewMemoryTransport(8, logger.Nop())
	source := newStubBatchSource()

	require.NoError(t, tr.Start(context.Background(), nil, source))
	assert.ErrorIs(t, tr.Start(context.Background(), nil, source), ErrTransportStarted)

	waitForEvent(t, tr.Events(), models.EventDidFetchChanges)

	tr.Stop()
	_, open := <-tr.Events()
	assert.False(t, open, "event channel must be closed after Stop")
}

func TestMemoryTransport_FetchResumesFromCheckpoint(t *testing.T) {
	tr := NewMemoryTransport(8, logger.Nop())
	tr.SeedZone(models.DefaultZone)

	// two records committed before the client's checkpoint, one after
	first, rev := tr.apply(&models.OutgoingBatch{
		Saves: []models.RemoteRecord{{ID: recordID("loc-1")}, {ID: recordID("loc-2")}},
	})
	require.Len(t, first.Saved, 2)
	checkpoint := encodeCheckpoint(rev)

	later, _ := tr.apply(&models.OutgoingBatch{
		Saves: []models.RemoteRecord{{ID: recordID("loc-3")}},
	})
	require.Len(t, later.Saved, 1)

	source := newStubBatchSource()
	require.NoError(t, tr.Start(context.Background(), checkpoint, source))
	t.Cleanup(tr.Stop)

	fetched := waitForEvent(t, tr.Events(), models.EventFetchedChanges)
	require.Len(t, fetched.Modified, 1)
	assert.Equal(t, recordID("loc-3"), fetched.Modified[0].ID)

	update := waitForEvent(t, tr.Events(), models.EventCheckpointUpdated)
	assert.NotEmpty(t, update.Checkpoint)
}

func TestMemoryTransport_SendCycleDeliversBatchOutcome(t *testing.T) {
	tr := NewMemoryTransport(16, logger.Nop())
	tr.interval = 10 * time.Millisecond
	tr.SeedZone(models.DefaultZone)

	source := newStubBatchSource()
	source.batches <- &models.OutgoingBatch{
		Saves:   []models.RemoteRecord{{ID: recordID("loc-1")}},
		Deletes: []models.RecordID{recordID("loc-2")},
	}

	require.NoError(t, tr.Start(context.Background(), nil, source))
	t.Cleanup(tr.Stop)

	waitForEvent(t, tr.Events(), models.EventWillSendChanges)
	sent := waitForEvent(t, tr.Events(), models.EventSentBatch)
	require.Len(t, sent.Saved, 1)
	assert.Equal(t, []models.RecordID{recordID("loc-2")}, sent.Removed)

	waitForEvent(t, tr.Events(), models.EventCheckpointUpdated)
	waitForEvent(t, tr.Events(), models.EventDidSendChanges)
}

func TestMemoryTransport_PushHelpers(t *testing.T) {
	tr := NewMemoryTransport(16, logger.Nop())
	require.NoError(t, tr.Start(context.Background(), nil, newStubBatchSource()))
	t.Cleanup(tr.Stop)
	waitForEvent(t, tr.Events(), models.EventDidFetchChanges)

	tr.PushRecord(models.RemoteRecord{ID: recordID("loc-1"), RecordType: models.RecordTypeSavedLocation})
	fetched := waitForEvent(t, tr.Events(), models.EventFetchedChanges)
	require.Len(t, fetched.Modified, 1)
	assert.NotEmpty(t, fetched.Modified[0].ChangeTag)

	tr.PushDelete(recordID("loc-1"))
	deleted := waitForEvent(t, tr.Events(), models.EventFetchedChanges)
	assert.Equal(t, []models.RecordID{recordID("loc-1")}, deleted.Deleted)

	tr.PushZoneDeletion(models.DefaultZone)
	zone := waitForEvent(t, tr.Events(), models.EventZoneDeleted)
	assert.Equal(t, models.DefaultZone, zone.Zone)

	tr.PushAccountChange(models.AccountSignOut)
	account := waitForEvent(t, tr.Events(), models.EventAccountChanged)
	assert.Equal(t, models.AccountSignOut, account.Account.Kind)
}

func TestStaticAccountProvider(t *testing.T) {
	provider := NewStaticAccountProvider(models.AccountUnavailable)
	status, err := provider.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.AccountUnavailable, status)
}
