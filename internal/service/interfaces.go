// Package service holds the reconciliation engine, the pending change queue
// and the operations facade: everything between the local stores and the
// remote transport.
package service

import (
	"context"

	"github.com/skycastapp/locsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncEngine reacts to transport lifecycle events and builds outgoing
// batches. It owns all reconciliation policy; the transport only schedules.
type SyncEngine interface {
	// HandleEvent processes one transport event. Failures are handled and
	// logged internally; one bad record never aborts the rest of the event.
	HandleEvent(ctx context.Context, event models.SyncEvent)

	// NextBatch builds the next outgoing batch from the pending change
	// queue, restricted to the given scope. It returns nil when there is
	// nothing to send.
	NextBatch(ctx context.Context, scope models.BatchScope) (*models.OutgoingBatch, error)
}

// Operations is the public entry point for user-driven mutations of the
// saved-locations collection. Every call checks remote-account availability
// first and fails fast with [ErrAccountUnavailable] without mutating
// anything.
type Operations interface {
	RequestSave(ctx context.Context, location models.SavedLocation) error
	RequestSaveAll(ctx context.Context, locations []models.SavedLocation) error

	// RequestDelete removes the location and enqueues the remote deletion.
	// It fails with a wrapped [store.ErrRecordNotFound] when the item was
	// never saved remotely.
	RequestDelete(ctx context.Context, id string) error
	RequestDeleteAll(ctx context.Context, ids []string) error
}

// Notifier is told whenever the engine changed the saved-locations
// collection, so observers (UI, caches) can reload.
type Notifier interface {
	LocationsChanged(ctx context.Context)
}
