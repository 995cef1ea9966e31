package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or missing checkpoint path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSyncConfigs indicates invalid reconciliation-engine
	// settings (for example, a missing seal key).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
