package transport

import (
	"context"
	"errors"

	"github.com/skycastapp/locsync/models"
)

// Sentinel errors a transport implementation reports for individual record
// operations. [Classify] maps them onto failure codes for the engine.
var (
	// ErrConflict is returned when the server holds a newer version of the
	// record than the change tag sent with the save.
	ErrConflict = errors.New("record save conflict")

	// ErrZoneMissing is returned when the target record zone does not exist
	// on the server.
	ErrZoneMissing = errors.New("record zone missing")

	// ErrUnknownRecord is returned when the server has no record for an id
	// the client cached one for.
	ErrUnknownRecord = errors.New("unknown record")

	// ErrNetworkUnavailable is returned when the server is unreachable.
	ErrNetworkUnavailable = errors.New("network unavailable")

	// ErrZoneBusy is returned when the server throttles the zone.
	ErrZoneBusy = errors.New("record zone busy")

	// ErrServiceUnavailable is returned when the record service rejects
	// requests temporarily.
	ErrServiceUnavailable = errors.New("record service unavailable")

	// ErrNotAuthenticated is returned when no signed-in account is present.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// Classify maps a transport error onto the failure code the engine dispatches
// on. Unrecognized errors map to [models.FailureUnknown].
func Classify(err error) models.FailureCode {
	switch {
	case err == nil:
		return models.FailureUnknown
	case errors.Is(err, ErrConflict):
		return models.FailureConflict
	case errors.Is(err, ErrZoneMissing):
		return models.FailureZoneMissing
	case errors.Is(err, ErrUnknownRecord):
		return models.FailureUnknownRecord
	case errors.Is(err, ErrNetworkUnavailable):
		return models.FailureNetworkUnavailable
	case errors.Is(err, ErrZoneBusy):
		return models.FailureZoneBusy
	case errors.Is(err, ErrServiceUnavailable):
		return models.FailureServiceUnavailable
	case errors.Is(err, ErrNotAuthenticated):
		return models.FailureNotAuthenticated
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return models.FailureCancelled
	default:
		return models.FailureUnknown
	}
}
