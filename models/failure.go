package models

// FailureCode classifies why an outgoing record save was rejected. The
// reconciliation engine dispatches on it; see the retry policy in the
// service package.
type FailureCode int

const (
	// FailureUnknown is any code the engine does not recognize. Logged at
	// the highest severity, no corrective action.
	FailureUnknown FailureCode = iota

	// FailureConflict: the server holds a newer record we did not know
	// about. Resolved by merge-and-retry.
	FailureConflict

	// FailureZoneMissing: the target zone does not exist on the server.
	FailureZoneMissing

	// FailureUnknownRecord: the server has no record for an id we cached
	// one for. Resolved by re-uploading as a new record.
	FailureUnknownRecord

	// Transient codes. The transport retries these on its own; the engine
	// takes no local action.
	FailureNetworkUnavailable
	FailureZoneBusy
	FailureServiceUnavailable
	FailureNotAuthenticated
	FailureCancelled
)

// Transient reports whether the code belongs to the set the transport
// retries automatically.
func (c FailureCode) Transient() bool {
	switch c {
	case FailureNetworkUnavailable, FailureZoneBusy, FailureServiceUnavailable,
		FailureNotAuthenticated, FailureCancelled:
		return true
	default:
		return false
	}
}

func (c FailureCode) String() string {
	switch c {
	case FailureConflict:
		return "conflict"
	case FailureZoneMissing:
		return "zone missing"
	case FailureUnknownRecord:
		return "unknown record"
	case FailureNetworkUnavailable:
		return "network unavailable"
	case FailureZoneBusy:
		return "zone busy"
	case FailureServiceUnavailable:
		return "service unavailable"
	case FailureNotAuthenticated:
		return "not authenticated"
	case FailureCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// SaveFailure describes one record that failed to save in an outgoing batch.
type SaveFailure struct {
	// Record is the record as it was sent.
	Record RemoteRecord `json:"record"`

	// Code classifies the failure.
	Code FailureCode `json:"code"`

	// ServerRecord is the server's current version of the record. Set only
	// for [FailureConflict].
	ServerRecord *RemoteRecord `json:"server_record,omitempty"`
}
