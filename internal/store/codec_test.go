package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skycastapp/locsync/internal/crypto"
	"github.com/skycastapp/locsync/models"
)

func testLocation() models.SavedLocation {
	return models.SavedLocation{
		ID:           "loc-1",
		Name:         "Home",
		Query:        "home berlin",
		Latitude:     52.52,
		Longitude:    13.405,
		Position:     2,
		LastModified: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestFieldCodec_Project(t *testing.T) {
	sealer, err := crypto.NewSealer(crypto.DeriveKey("test-secret"))
	require.NoError(t, err)
	codec := NewFieldCodec(sealer)

	location := testLocation()
	record, err := codec.Project(location, models.RemoteRecord{
		ID:        models.RecordID{Zone: models.DefaultZone, Name: location.ID},
		ChangeTag: "tag-1",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RecordTypeSavedLocation, record.RecordType)
	assert.Equal(t, "tag-1", record.ChangeTag, "server metadata must survive projection")
	require.Len(t, record.Fields, len(models.LocationSchema))

	// plain fields stay readable JSON
	assert.False(t, record.Fields[models.FieldName].Encrypted)
	assert.JSONEq(t, `"Home"`, string(record.Fields[models.FieldName].Data))
	assert.JSONEq(t, `2`, string(record.Fields[models.FieldPosition].Data))

	// coordinates are sealed and carry no plaintext
	for _, name := range []string{models.FieldLatitude, models.FieldLongitude} {
		fv := record.Fields[name]
		assert.True(t, fv.Encrypted, "field %q must be sealed", name)
		assert.False(t, json.Valid(fv.Data), "field %q must not be readable JSON", name)
	}

	// sealed fields round-trip through the same sealer
	opened, err := sealer.Open(record.Fields[models.FieldLatitude].Data)
	require.NoError(t, err)
	assert.JSONEq(t, `52.52`, string(opened))
}

func TestFieldCodec_Merge(t *testing.T) {
	codec := NewFieldCodec(crypto.NewNopSealer())
	location := testLocation()

	fields := func(t *testing.T, name string, lat float64) map[string]models.FieldValue {
		t.Helper()
		return map[string]models.FieldValue{
			models.FieldName:     {Data: mustJSON(t, name)},
			models.FieldLatitude: {Data: mustJSON(t, lat), Encrypted: true},
		}
	}

	t.Run("server record fresher than local edit wins", func(t *testing.T) {
		serverTime := location.LastModified.Add(time.Minute)
		merged, changed, err := codec.Merge(location, models.RemoteRecord{
			ModificationDate: &serverTime,
			Fields:           fields(t, "Home (renamed)", 53.55),
		})
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "Home (renamed)", merged.Name)
		assert.Equal(t, 53.55, merged.Latitude)
		assert.Equal(t, serverTime, merged.LastModified)

		// fields missing from the record keep their local values
		assert.Equal(t, location.Query, merged.Query)
		assert.Equal(t, location.Position, merged.Position)
	})

	t.Run("local edit at or after server modification wins", func(t *testing.T) {
		for _, serverTime := range []time.Time{
			location.LastModified,
			location.LastModified.Add(-time.Minute),
		} {
			merged, changed, err := codec.Merge(location, models.RemoteRecord{
				ModificationDate: &serverTime,
				Fields:           fields(t, "Stale", 0),
			})
			require.NoError(t, err)
			assert.False(t, changed)
			assert.Equal(t, location, merged)
		}
	})

	t.Run("record never saved remotely cannot overwrite local edits", func(t *testing.T) {
		merged, changed, err := codec.Merge(location, models.RemoteRecord{
			Fields: fields(t, "Stale", 0),
		})
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, location, merged)
	})

	t.Run("error: sealed field cannot be opened", func(t *testing.T) {
		sealed, err := crypto.NewSealer(crypto.DeriveKey("other-secret"))
		require.NoError(t, err)
		strictCodec := NewFieldCodec(sealed)

		serverTime := location.LastModified.Add(time.Minute)
		blob, err := crypto.NewNopSealer().Seal(mustJSON(t, 53.55))
		require.NoError(t, err)

		_, _, err = strictCodec.Merge(location, models.RemoteRecord{
			ModificationDate: &serverTime,
			Fields: map[string]models.FieldValue{
				models.FieldLatitude: {Data: blob, Encrypted: true},
			},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
	})
}

func TestFieldCodec_ProjectMergeRoundTrip(t *testing.T) {
	sealer, err := crypto.NewSealer(crypto.DeriveKey("test-secret"))
	require.NoError(t, err)
	codec := NewFieldCodec(sealer)

	original := testLocation()
	record, err := codec.Project(original, models.RemoteRecord{
		ID: models.RecordID{Zone: models.DefaultZone, Name: original.ID},
	})
	require.NoError(t, err)

	serverTime := original.LastModified.Add(time.Hour)
	record.ModificationDate = &serverTime

	blank := models.SavedLocation{ID: original.ID}
	merged, changed, err := codec.Merge(blank, record)
	require.NoError(t, err)
	require.True(t, changed)

	assert.Equal(t, original.Name, merged.Name)
	assert.Equal(t, original.Query, merged.Query)
	assert.Equal(t, original.Latitude, merged.Latitude)
	assert.Equal(t, original.Longitude, merged.Longitude)
	assert.Equal(t, original.Position, merged.Position)
	assert.Equal(t, serverTime, merged.LastModified)
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}
