// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The locsync Authors

package models

// FieldTag marks how one schema field is serialized into a remote record.
type FieldTag int

const (
	// FieldPlain fields are stored readable so the transport can query and
	// index them.
	FieldPlain FieldTag = iota
	// FieldEncrypted fields are sealed on the device and opaque to the
	// transport.
	FieldEncrypted
)

// Saved-location schema field names.
const (
	FieldName      = "name"
	FieldQuery     = "query"
	FieldPosition  = "position"
	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"
)

// LocationSchema is the closed field schema for [SavedLocation] records.
// The mapping is static on purpose: every field's encryption policy is
// auditable here instead of being derived at runtime. Coordinates are
// treated as user-private and sealed; the label, query and ordering stay
// plain so the server can index them.
var LocationSchema = map[string]FieldTag{
	FieldName:      FieldPlain,
	FieldQuery:     FieldPlain,
	FieldPosition:  FieldPlain,
	FieldLatitude:  FieldEncrypted,
	FieldLongitude: FieldEncrypted,
}
