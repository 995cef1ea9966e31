// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The locsync Authors

package models

// SyncEventKind enumerates the lifecycle events the remote transport can
// deliver to the reconciliation engine. There is no ordering guarantee
// between kinds, and two events may be handled concurrently.
type SyncEventKind int

const (
	// EventCheckpointUpdated carries a new resumption token to persist.
	EventCheckpointUpdated SyncEventKind = iota

	// EventAccountChanged signals a remote-account transition.
	EventAccountChanged

	// EventZoneDeleted signals that a record zone was deleted remotely.
	EventZoneDeleted

	// EventFetchedChanges carries record modifications and deletions
	// fetched from the server.
	EventFetchedChanges

	// EventSentBatch reports the outcome of an outgoing batch: which
	// records were saved or deleted, and which saves failed.
	EventSentBatch

	// Housekeeping events. No local-state mutation is required; they exist
	// as extension points only.
	EventWillFetchChanges
	EventDidFetchChanges
	EventWillSendChanges
	EventDidSendChanges
)

func (k SyncEventKind) String() string {
	switch k {
	case EventCheckpointUpdated:
		return "checkpoint-updated"
	case EventAccountChanged:
		return "account-changed"
	case EventZoneDeleted:
		return "zone-deleted"
	case EventFetchedChanges:
		return "fetched-changes"
	case EventSentBatch:
		return "sent-batch"
	case EventWillFetchChanges:
		return "will-fetch-changes"
	case EventDidFetchChanges:
		return "did-fetch-changes"
	case EventWillSendChanges:
		return "will-send-changes"
	case EventDidSendChanges:
		return "did-send-changes"
	default:
		return "unknown"
	}
}

// SyncEvent is one transport lifecycle event. Only the fields relevant to
// Kind are populated.
type SyncEvent struct {
	Kind SyncEventKind

	// Checkpoint is set for EventCheckpointUpdated.
	Checkpoint Checkpoint

	// Account is set for EventAccountChanged.
	Account AccountChange

	// Zone is set for EventZoneDeleted.
	Zone ZoneID

	// Modified and Deleted are set for EventFetchedChanges.
	Modified []RemoteRecord
	Deleted  []RecordID

	// Saved, Removed and Failed are set for EventSentBatch. Saved carries
	// the server-confirmed records, Removed the confirmed deletions, and
	// Failed the per-record save failures.
	Saved   []RemoteRecord
	Removed []RecordID
	Failed  []SaveFailure
}
