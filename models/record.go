// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The locsync Authors

package models

import "time"

// RecordTypeSavedLocation is the remote record type under which saved
// locations are stored.
const RecordTypeSavedLocation = "SavedLocation"

// ZoneID identifies a transport-level record zone.
type ZoneID string

// DefaultZone is the single well-known zone holding all saved locations.
const DefaultZone ZoneID = "SavedLocations"

// RecordID identifies one remote record: the zone it lives in plus the
// record name, which equals the ID of the item it mirrors.
type RecordID struct {
	Zone ZoneID `json:"zone"`
	Name string `json:"name"`
}

// FieldValue is one serialized record field. Encrypted values are sealed
// before they leave the device; plain values stay readable so the transport
// can index them.
type FieldValue struct {
	Data      []byte `json:"data"`
	Encrypted bool   `json:"encrypted"`
}

// RemoteRecord is the locally cached handle for server-side metadata of one
// item. It is never the source of truth for field values — those live on
// [SavedLocation] — but it carries the last server-assigned modification
// date and change tag we know about.
type RemoteRecord struct {
	// ID is the zone-qualified record identifier.
	ID RecordID `json:"id"`

	// RecordType is the remote schema type, e.g. [RecordTypeSavedLocation].
	RecordType string `json:"record_type"`

	// ModificationDate is the server-assigned modification timestamp.
	// It is nil for a record that has never been saved remotely.
	ModificationDate *time.Time `json:"modification_date,omitempty"`

	// ChangeTag is the opaque server-assigned revision tag, empty until
	// the first confirmed save.
	ChangeTag string `json:"change_tag,omitempty"`

	// Fields holds the projected item payload keyed by schema field name.
	Fields map[string]FieldValue `json:"fields,omitempty"`
}

// Newer resolves record recency between the receiver (the cached record) and
// a candidate freshly returned by the transport. It returns the candidate iff
// its modification date exists and the cached one is absent or strictly
// older. A candidate without a modification date is assumed newest only when
// the cached record has none either; this protects against a late-arriving
// stale confirmation clobbering a record already known to be newer.
func (r RemoteRecord) Newer(candidate RemoteRecord) RemoteRecord {
	if candidate.ModificationDate == nil {
		if r.ModificationDate == nil {
			return candidate
		}
		return r
	}
	if r.ModificationDate == nil || r.ModificationDate.Before(*candidate.ModificationDate) {
		return candidate
	}
	return r
}
