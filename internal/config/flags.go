package config

import "flag"

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d local database DSN (SQLite file path)
//	-f checkpoint file path
//	-z record zone name
//	-seal-key field sealing key
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var checkpointPath string
	var zoneName string
	var sealKey string
	var jsonConfigPath string

	flag.StringVar(&databaseDSN, "d", "", "Local database DSN")
	flag.StringVar(&checkpointPath, "f", "", "Checkpoint file path")
	flag.StringVar(&zoneName, "z", "", "Record zone name")
	flag.StringVar(&sealKey, "seal-key", "", "Field sealing key")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				CheckpointPath: checkpointPath,
			},
		},
		Sync: Sync{
			ZoneName: zoneName,
			SealKey:  sealKey,
		},
		JSONFilePath: jsonConfigPath,
	}
}
