package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, with earlier configs taking precedence
// for non-zero fields.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "first.db"}}},
		&StructuredConfig{
			Storage: Storage{
				DB:    DB{DSN: "second.db"},
				Files: Files{CheckpointPath: "/tmp/checkpoint"},
			},
			Sync: Sync{ZoneName: "SavedLocations"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "first.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/checkpoint", cfg.Storage.Files.CheckpointPath)
	assert.Equal(t, "SavedLocations", cfg.Sync.ZoneName)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_ReadsFileWhenPathIsSet verifies that withJSON parses the file
// referenced by an earlier config layer and appends it to the builder.
func TestWithJSON_ReadsFileWhenPathIsSet(t *testing.T) {
	var jsonCfg StructuredJSONConfig
	jsonCfg.Storage.DB.DSN = "from-json.db"
	jsonCfg.Sync.SealKey = "json-seal-key"
	path := writeTempJSONConfig(t, jsonCfg)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "from-json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "json-seal-key", cfg.Sync.SealKey)
}

// TestWithJSON_NoPath verifies that withJSON is a no-op when no earlier
// layer specified a config file.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder().withJSON()
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestWithJSON_MissingFile verifies that a dangling config path surfaces as
// a build error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	cfg, err := b.withJSON().build()
	assert.Nil(t, cfg)
	require.Error(t, err)
}
