// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The locsync Authors

package service

import (
	"fmt"

	"github.com/skycastapp/locsync/internal/store"
	"github.com/skycastapp/locsync/models"
)

// FetchPlan is the decision output for one fetched-changes event: the new
// collection to write in a single store update, plus the cache mutations to
// apply alongside it.
type FetchPlan struct {
	// Locations is the full collection after applying the event. Only
	// meaningful when Changed is true.
	Locations []models.SavedLocation

	// Changed reports whether the collection differs from the input.
	Changed bool

	// Upserts are records to push through the cache's recency resolution.
	Upserts []models.RemoteRecord

	// Removals are cache entries to delete.
	Removals []models.RecordID

	// Skipped are modified records without a matching local item and cached
	// record. They predate local knowledge or were already removed.
	Skipped []models.RecordID

	// Errors collects per-record merge failures. The rest of the plan is
	// unaffected by them.
	Errors []error
}

// RetryPlan is the decision output of the failure-code dispatch table for one
// sent-batch event.
type RetryPlan struct {
	// Requeue are intents to put back on the pending queue.
	Requeue []models.PendingChange

	// ZoneCreates are zone-creation intents for saves that hit a missing
	// zone, one per distinct zone.
	ZoneCreates []models.DatabaseChange

	// ClearCache are record ids whose cached metadata is invalid and must be
	// deleted, independent of the retry decision.
	ClearCache []models.RecordID

	// Conflicts are failures to resolve by merging the server record into
	// the local item before the requeued save runs.
	Conflicts []models.SaveFailure

	// Transient failures are retried by the transport on its own; they are
	// surfaced only for debug logging.
	Transient []models.SaveFailure

	// Unknown failures get no corrective action, only a high-severity log.
	Unknown []models.SaveFailure
}

// Reconciler is the pure decision layer of the engine: it turns event
// payloads into plans without touching any store, which keeps the policies
// testable with plain values.
type Reconciler struct {
	codec *store.FieldCodec
}

func NewReconciler(codec *store.FieldCodec) *Reconciler {
	return &Reconciler{codec: codec}
}

// BuildFetchPlan merges fetched modifications and deletions into the current
// collection. All changes from one event land in one plan so the caller can
// write the store once.
//
// A modified record is applied only when both the local item and a cached
// record for it exist; the merge itself follows the last-user-edit-wins rule,
// so a record older than the local edit leaves the item untouched while its
// metadata still flows into the cache.
func (r *Reconciler) BuildFetchPlan(locations []models.SavedLocation, cached []models.RemoteRecord, modified []models.RemoteRecord, deleted []models.RecordID) FetchPlan {
	plan := FetchPlan{}

	known := make(map[models.RecordID]struct{}, len(cached))
	for _, record := range cached {
		known[record.ID] = struct{}{}
	}

	index := make(map[string]int, len(locations))
	items := make([]models.SavedLocation, len(locations))
	copy(items, locations)
	for i, item := range items {
		index[item.ID] = i
	}

	for _, record := range modified {
		i, haveItem := index[record.ID.Name]
		_, haveRecord := known[record.ID]
		if !haveItem || !haveRecord {
			plan.Skipped = append(plan.Skipped, record.ID)
			continue
		}

		merged, changed, err := r.codec.Merge(items[i], record)
		if err != nil {
			plan.Errors = append(plan.Errors, fmt.Errorf("merge record %q: %w", record.ID.Name, err))
			continue
		}
		if changed {
			items[i] = merged
			plan.Changed = true
		}

		plan.Upserts = append(plan.Upserts, record)
	}

	removed := make(map[string]struct{}, len(deleted))
	for _, id := range deleted {
		plan.Removals = append(plan.Removals, id)
		if _, ok := index[id.Name]; ok {
			removed[id.Name] = struct{}{}
			plan.Changed = true
		}
	}

	if plan.Changed {
		plan.Locations = make([]models.SavedLocation, 0, len(items))
		for _, item := range items {
			if _, gone := removed[item.ID]; !gone {
				plan.Locations = append(plan.Locations, item)
			}
		}
	}

	return plan
}

// BuildRetryPlan dispatches failed saves onto corrective actions:
//
//   - conflict: merge the server record into the item, keep the cached
//     record, requeue the save
//   - zone missing: enqueue a zone creation, clear the cached record,
//     requeue the save
//   - unknown record: clear the cached record, requeue the save so the item
//     re-uploads as a new record
//   - transient: nothing, the transport retries on its own
//   - anything else: nothing, log loudly
func BuildRetryPlan(failures []models.SaveFailure) RetryPlan {
	plan := RetryPlan{}
	zones := make(map[models.ZoneID]struct{})

	for _, failure := range failures {
		switch {
		case failure.Code == models.FailureConflict && failure.ServerRecord != nil:
			plan.Conflicts = append(plan.Conflicts, failure)
			plan.Requeue = append(plan.Requeue, models.PendingChange{Kind: models.SaveChange, RecordID: failure.Record.ID})

		case failure.Code == models.FailureZoneMissing:
			if _, ok := zones[failure.Record.ID.Zone]; !ok {
				zones[failure.Record.ID.Zone] = struct{}{}
				plan.ZoneCreates = append(plan.ZoneCreates, models.DatabaseChange{
					Kind: models.CreateZoneChange,
					Zone: failure.Record.ID.Zone,
				})
			}
			plan.ClearCache = append(plan.ClearCache, failure.Record.ID)
			plan.Requeue = append(plan.Requeue, models.PendingChange{Kind: models.SaveChange, RecordID: failure.Record.ID})

		case failure.Code == models.FailureUnknownRecord:
			plan.ClearCache = append(plan.ClearCache, failure.Record.ID)
			plan.Requeue = append(plan.Requeue, models.PendingChange{Kind: models.SaveChange, RecordID: failure.Record.ID})

		case failure.Code.Transient():
			plan.Transient = append(plan.Transient, failure)

		default:
			// includes a conflict without a server record, which we cannot
			// merge and must not guess at
			plan.Unknown = append(plan.Unknown, failure)
		}
	}

	return plan
}
