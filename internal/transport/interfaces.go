// Package transport defines the boundary between the reconciliation engine
// and the remote record service, plus an in-memory implementation used by
// tests and local development.
package transport

import (
	"context"

	"github.com/skycastapp/locsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// RemoteTransport is the engine's view of the remote record service. The
// transport owns scheduling entirely: it decides when to fetch, when to ask
// for an outgoing batch, and how to retry transient failures. The engine only
// reacts to the events the transport emits.
type RemoteTransport interface {
	// Events returns the channel the transport delivers lifecycle events on.
	// The channel is closed by Stop.
	Events() <-chan models.SyncEvent

	// Start begins syncing from the given checkpoint. The source is asked
	// for outgoing batches whenever the transport is ready to send.
	Start(ctx context.Context, checkpoint models.Checkpoint, source BatchSource) error

	// Stop shuts the transport down and waits for in-flight work to finish.
	Stop()
}

// BatchSource produces outgoing batches on the transport's demand.
type BatchSource interface {
	// NextBatch returns the next batch of pending changes within scope, or
	// a nil/empty batch when there is nothing to send.
	NextBatch(ctx context.Context, scope models.BatchScope) (*models.OutgoingBatch, error)
}

// AccountStatusProvider reports whether a usable remote account is present.
// Mutating operations consult it before accepting user intents.
type AccountStatusProvider interface {
	Status(ctx context.Context) (models.AccountStatus, error)
}
