package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/skycastapp/locsync/internal/logger"
	"github.com/skycastapp/locsync/internal/mock"
	"github.com/skycastapp/locsync/internal/store"
	"github.com/skycastapp/locsync/models"
)

type facadeFixture struct {
	ops       Operations
	locations *mock.MockLocationRepository
	records   *mock.MockRecordCacheRepository
	account   *mock.MockAccountStatusProvider
	queue     *PendingChangeQueue
}

func newFacadeFixture(t *testing.T) *facadeFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &facadeFixture{
		locations: mock.NewMockLocationRepository(ctrl),
		records:   mock.NewMockRecordCacheRepository(ctrl),
		account:   mock.NewMockAccountStatusProvider(ctrl),
		queue:     NewPendingChangeQueue(),
	}

	var gate sync.Mutex
	f.ops = NewOperations(&gate, f.locations, f.records, f.queue, f.account, models.DefaultZone, logger.Nop())
	return f
}

func (f *facadeFixture) accountAvailable() {
	f.account.EXPECT().Status(gomock.Any()).Return(models.AccountAvailable, nil)
}

func TestOperations_RequestSave(t *testing.T) {
	id := models.RecordID{Zone: models.DefaultZone, Name: "a"}
	item := testItem("a", "Home", baseTime)

	t.Run("success: existing cached record", func(t *testing.T) {
		f := newFacadeFixture(t)
		f.accountAvailable()
		f.locations.EXPECT().Add(gomock.Any(), item).Return(nil)
		f.records.EXPECT().Get(gomock.Any(), id).Return(cacheEntry("a"), nil)

		require.NoError(t, f.ops.RequestSave(context.Background(), item))

		assert.Equal(t, []models.PendingChange{{Kind: models.SaveChange, RecordID: id}}, pendingSaves(f.queue))
	})

	t.Run("success: cached record is created on first save", func(t *testing.T) {
		f := newFacadeFixture(t)
		f.accountAvailable()
		f.locations.EXPECT().Add(gomock.Any(), item).Return(nil)
		f.records.EXPECT().Get(gomock.Any(), id).Return(models.RemoteRecord{}, store.ErrRecordNotFound)
		f.records.EXPECT().Create(gomock.Any(), id, models.RecordTypeSavedLocation).Return(cacheEntry("a"), nil)

		require.NoError(t, f.ops.RequestSave(context.Background(), item))

		assert.Equal(t, 1, f.queue.Len())
	})

	t.Run("error: account unavailable, nothing is touched", func(t *testing.T) {
		f := newFacadeFixture(t)
		f.account.EXPECT().Status(gomock.Any()).Return(models.AccountUnavailable, nil)

		err := f.ops.RequestSave(context.Background(), item)
		assert.ErrorIs(t, err, ErrAccountUnavailable)
		assert.Equal(t, 0, f.queue.Len())
	})

	t.Run("error: status lookup failure is wrapped", func(t *testing.T) {
		f := newFacadeFixture(t)
		statusErr := errors.New("container down")
		f.account.EXPECT().Status(gomock.Any()).Return(models.AccountStatusUnknown, statusErr)

		err := f.ops.RequestSave(context.Background(), item)
		assert.ErrorIs(t, err, statusErr)
	})

	t.Run("error: store write failure keeps the queue empty", func(t *testing.T) {
		f := newFacadeFixture(t)
		f.accountAvailable()
		f.locations.EXPECT().Add(gomock.Any(), item).Return(errors.New("disk full"))

		err := f.ops.RequestSave(context.Background(), item)
		require.Error(t, err)
		assert.Equal(t, 0, f.queue.Len())
	})
}

func TestOperations_RequestSaveAll(t *testing.T) {
	t.Run("all intents land in a single queue mutation", func(t *testing.T) {
		f := newFacadeFixture(t)
		f.accountAvailable()

		items := []models.SavedLocation{testItem("a", "Home", baseTime), testItem("b", "Office", baseTime)}
		for _, item := range items {
			f.locations.EXPECT().Add(gomock.Any(), item).Return(nil)
			f.records.EXPECT().
				Get(gomock.Any(), models.RecordID{Zone: models.DefaultZone, Name: item.ID}).
				Return(cacheEntry(item.ID), nil)
		}

		require.NoError(t, f.ops.RequestSaveAll(context.Background(), items))
		assert.Equal(t, 2, f.queue.Len())
	})

	t.Run("empty input is a no-op after the account check", func(t *testing.T) {
		f := newFacadeFixture(t)
		f.accountAvailable()

		require.NoError(t, f.ops.RequestSaveAll(context.Background(), nil))
		assert.Equal(t, 0, f.queue.Len())
	})
}

func TestOperations_RequestDelete(t *testing.T) {
	id := models.RecordID{Zone: models.DefaultZone, Name: "a"}

	t.Run("success: removes item and cache entry, enqueues the intent", func(t *testing.T) {
		f := newFacadeFixture(t)
		f.accountAvailable()
		f.records.EXPECT().Get(gomock.Any(), id).Return(cacheEntry("a"), nil)
		f.locations.EXPECT().Remove(gomock.Any(), "a").Return(nil)
		f.records.EXPECT().Delete(gomock.Any(), id).Return(nil)

		require.NoError(t, f.ops.RequestDelete(context.Background(), "a"))

		changes, _ := f.queue.Pending(models.BatchScope{})
		assert.Equal(t, []models.PendingChange{{Kind: models.DeleteChange, RecordID: id}}, changes)
	})

	t.Run("success: missing store row is tolerated when the record exists", func(t *testing.T) {
		f := newFacadeFixture(t)
		f.accountAvailable()
		f.records.EXPECT().Get(gomock.Any(), id).Return(cacheEntry("a"), nil)
		f.locations.EXPECT().Remove(gomock.Any(), "a").Return(store.ErrLocationNotFound)
		f.records.EXPECT().Delete(gomock.Any(), id).Return(nil)

		require.NoError(t, f.ops.RequestDelete(context.Background(), "a"))
	})

	t.Run("error: no cached record means the delete cannot be addressed", func(t *testing.T) {
		f := newFacadeFixture(t)
		f.accountAvailable()
		f.records.EXPECT().Get(gomock.Any(), id).Return(models.RemoteRecord{}, store.ErrRecordNotFound)

		err := f.ops.RequestDelete(context.Background(), "a")
		assert.ErrorIs(t, err, store.ErrRecordNotFound)
		assert.Equal(t, 0, f.queue.Len())
	})

	t.Run("error: account unavailable fails before any lookup", func(t *testing.T) {
		f := newFacadeFixture(t)
		f.account.EXPECT().Status(gomock.Any()).Return(models.AccountUnavailable, nil)

		err := f.ops.RequestDelete(context.Background(), "a")
		assert.ErrorIs(t, err, ErrAccountUnavailable)
	})
}

func TestOperations_RequestDeleteAll(t *testing.T) {
	idA := models.RecordID{Zone: models.DefaultZone, Name: "a"}
	idB := models.RecordID{Zone: models.DefaultZone, Name: "b"}

	t.Run("validates every record before mutating anything", func(t *testing.T) {
		f := newFacadeFixture(t)
		f.accountAvailable()
		f.records.EXPECT().Get(gomock.Any(), idA).Return(cacheEntry("a"), nil)
		f.records.EXPECT().Get(gomock.Any(), idB).Return(models.RemoteRecord{}, store.ErrRecordNotFound)

		err := f.ops.RequestDeleteAll(context.Background(), []string{"a", "b"})
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrRecordNotFound)
		assert.Contains(t, err.Error(), `"b"`)
		// a's item and record were not removed
		assert.Equal(t, 0, f.queue.Len())
	})

	t.Run("deletes all when every record resolves", func(t *testing.T) {
		f := newFacadeFixture(t)
		f.accountAvailable()
		for _, id := range []models.RecordID{idA, idB} {
			f.records.EXPECT().Get(gomock.Any(), id).Return(cacheEntry(id.Name), nil)
			f.locations.EXPECT().Remove(gomock.Any(), id.Name).Return(nil)
			f.records.EXPECT().Delete(gomock.Any(), id).Return(nil)
		}

		require.NoError(t, f.ops.RequestDeleteAll(context.Background(), []string{"a", "b"}))
		assert.Equal(t, 2, f.queue.Len())
	})
}
