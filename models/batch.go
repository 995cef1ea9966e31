package models

// BatchScope restricts which pending changes the transport wants in the next
// outgoing batch. A zero scope matches everything.
type BatchScope struct {
	// Zone limits the batch to records of one zone when non-empty.
	Zone ZoneID
}

// Includes reports whether a record falls inside the scope.
func (s BatchScope) Includes(id RecordID) bool {
	return s.Zone == "" || s.Zone == id.Zone
}

// OutgoingBatch is one batch of changes handed to the transport for sending.
type OutgoingBatch struct {
	// Saves are fully projected records to save remotely.
	Saves []RemoteRecord

	// Deletes are record ids to delete remotely.
	Deletes []RecordID

	// DatabaseChanges are zone-level intents (zone creation) to apply
	// before the record changes.
	DatabaseChanges []DatabaseChange
}

// Empty reports whether the batch contains no work.
func (b *OutgoingBatch) Empty() bool {
	return b == nil || (len(b.Saves) == 0 && len(b.Deletes) == 0 && len(b.DatabaseChanges) == 0)
}
