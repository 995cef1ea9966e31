package models

// ChangeKind distinguishes the two pending record-change intents.
type ChangeKind int

const (
	// SaveChange marks an unconfirmed intent to save a record remotely.
	SaveChange ChangeKind = iota
	// DeleteChange marks an unconfirmed intent to delete a record remotely.
	DeleteChange
)

func (k ChangeKind) String() string {
	switch k {
	case SaveChange:
		return "save"
	case DeleteChange:
		return "delete"
	default:
		return "unknown"
	}
}

// PendingChange is a save or delete intent that has not yet been confirmed
// by the remote transport. It references the record, not the item payload:
// current field values are looked up when the outgoing batch is built.
type PendingChange struct {
	Kind     ChangeKind `json:"kind"`
	RecordID RecordID   `json:"record_id"`
}

// DatabaseChangeKind distinguishes pending database-level (zone) intents.
type DatabaseChangeKind int

const (
	// CreateZoneChange is an intent to create a record zone remotely.
	// Idempotent if the zone already exists.
	CreateZoneChange DatabaseChangeKind = iota
)

// DatabaseChange is a pending database-level change, produced when a save
// fails because its target zone is missing or when the user signs in.
type DatabaseChange struct {
	Kind DatabaseChangeKind `json:"kind"`
	Zone ZoneID             `json:"zone"`
}
