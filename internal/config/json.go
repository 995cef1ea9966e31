package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags for the
// optional config file.
type StructuredJSONConfig struct {
	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			CheckpointPath string `json:"checkpoint_path"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Sync struct {
		ZoneName    string `json:"zone_name"`
		SealKey     string `json:"seal_key"`
		EventBuffer int    `json:"event_buffer"`
	} `json:"sync,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				CheckpointPath: jsonCfg.Storage.Files.CheckpointPath,
			},
		},
		Sync: Sync{
			ZoneName:    jsonCfg.Sync.ZoneName,
			SealKey:     jsonCfg.Sync.SealKey,
			EventBuffer: jsonCfg.Sync.EventBuffer,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
