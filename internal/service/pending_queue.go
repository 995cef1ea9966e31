package service

import (
	"sort"
	"sync"

	"github.com/skycastapp/locsync/models"
)

type pendingKey struct {
	kind models.ChangeKind
	id   models.RecordID
}

// PendingChangeQueue holds save and delete intents that the remote transport
// has not confirmed yet, plus pending database-level (zone) changes.
//
// A new intent for the same (kind, record) pair supersedes the old one
// instead of duplicating it, and database changes are deduplicated, so the
// queue stays bounded by the collection size no matter how often intents are
// re-enqueued.
type PendingChangeQueue struct {
	mu       sync.Mutex
	changes  map[pendingKey]models.PendingChange
	database map[models.DatabaseChange]struct{}
}

func NewPendingChangeQueue() *PendingChangeQueue {
	return &PendingChangeQueue{
		changes:  make(map[pendingKey]models.PendingChange),
		database: make(map[models.DatabaseChange]struct{}),
	}
}

// Enqueue adds record and database intents in one queue mutation, so a
// concurrent batch build observes either none or all of them.
func (q *PendingChangeQueue) Enqueue(changes []models.PendingChange, database []models.DatabaseChange) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, change := range changes {
		q.changes[pendingKey{kind: change.Kind, id: change.RecordID}] = change
	}
	for _, change := range database {
		q.database[change] = struct{}{}
	}
}

// Pending returns the queued intents inside the scope in deterministic order:
// record changes sorted by zone, name and kind, database changes by zone.
// The returned slices are copies; the queue itself is not drained.
func (q *PendingChangeQueue) Pending(scope models.BatchScope) ([]models.PendingChange, []models.DatabaseChange) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var changes []models.PendingChange
	for _, change := range q.changes {
		if scope.Includes(change.RecordID) {
			changes = append(changes, change)
		}
	}
	sort.Slice(changes, func(i, j int) bool {
		a, b := changes[i], changes[j]
		if a.RecordID.Zone != b.RecordID.Zone {
			return a.RecordID.Zone < b.RecordID.Zone
		}
		if a.RecordID.Name != b.RecordID.Name {
			return a.RecordID.Name < b.RecordID.Name
		}
		return a.Kind < b.Kind
	})

	var database []models.DatabaseChange
	for change := range q.database {
		if scope.Zone == "" || scope.Zone == change.Zone {
			database = append(database, change)
		}
	}
	sort.Slice(database, func(i, j int) bool {
		return database[i].Zone < database[j].Zone
	})

	return changes, database
}

// Remove drops the intent for the given (kind, record) pair, typically after
// the transport confirmed it.
func (q *PendingChangeQueue) Remove(kind models.ChangeKind, id models.RecordID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.changes, pendingKey{kind: kind, id: id})
}

// RemoveDatabaseChange drops one pending database intent.
func (q *PendingChangeQueue) RemoveDatabaseChange(change models.DatabaseChange) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.database, change)
}

// Clear empties the queue.
func (q *PendingChangeQueue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.changes = make(map[pendingKey]models.PendingChange)
	q.database = make(map[models.DatabaseChange]struct{})
}

// Len reports the number of queued record changes.
func (q *PendingChangeQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.changes)
}
