package config

import "fmt"

// defaultZoneName is used when no zone name is configured.
const defaultZoneName = "SavedLocations"

// defaultEventBuffer is the transport event channel capacity used when the
// configured value is zero.
const defaultEventBuffer = 16

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// CheckpointPath is the sync checkpoint file location.
	CheckpointPath string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientSync contains reconciliation-engine settings.
type ClientSync struct {
	// ZoneName is the well-known record zone name.
	ZoneName string
	// SealKey is the field-sealing secret.
	SealKey string
	// EventBuffer is the transport event channel capacity.
	EventBuffer int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Storage contains client storage settings.
	Storage ClientStorage
	// Sync contains reconciliation-engine settings.
	Sync ClientSync
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies defaults for the zone name and
// event buffer, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			CheckpointPath: cfg.Storage.Files.CheckpointPath,
		},
		Sync: ClientSync{
			ZoneName:    cfg.Sync.ZoneName,
			SealKey:     cfg.Sync.SealKey,
			EventBuffer: cfg.Sync.EventBuffer,
		},
	}

	if clientCfg.Sync.ZoneName == "" {
		clientCfg.Sync.ZoneName = defaultZoneName
	}
	if clientCfg.Sync.EventBuffer <= 0 {
		clientCfg.Sync.EventBuffer = defaultEventBuffer
	}

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.CheckpointPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Sync.SealKey == "" {
		return ErrInvalidSyncConfigs
	}

	return nil
}
