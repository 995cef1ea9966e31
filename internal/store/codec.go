package store

import (
	"encoding/json"
	"fmt"

	"github.com/skycastapp/locsync/internal/crypto"
	"github.com/skycastapp/locsync/models"
)

// FieldCodec translates between a [models.SavedLocation] and the field
// payload of its remote record. Serialization follows [models.LocationSchema]:
// plain fields are stored as readable JSON, encrypted fields are sealed on the
// way out and opened on the way in.
type FieldCodec struct {
	sealer crypto.Sealer
}

func NewFieldCodec(sealer crypto.Sealer) *FieldCodec {
	return &FieldCodec{sealer: sealer}
}

// Project builds the outgoing field payload for the given location on top of
// the given cached record, preserving the record's server metadata (change
// tag, modification date) so the transport can detect conflicts.
func (c *FieldCodec) Project(location models.SavedLocation, record models.RemoteRecord) (models.RemoteRecord, error) {
	values := map[string]any{
		models.FieldName:      location.Name,
		models.FieldQuery:     location.Query,
		models.FieldPosition:  location.Position,
		models.FieldLatitude:  location.Latitude,
		models.FieldLongitude: location.Longitude,
	}

	record.RecordType = models.RecordTypeSavedLocation
	record.Fields = make(map[string]models.FieldValue, len(values))

	for name, value := range values {
		data, err := json.Marshal(value)
		if err != nil {
			return models.RemoteRecord{}, fmt.Errorf("failed to encode field %q: %w", name, err)
		}

		encrypted := models.LocationSchema[name] == models.FieldEncrypted
		if encrypted {
			data, err = c.sealer.Seal(data)
			if err != nil {
				return models.RemoteRecord{}, fmt.Errorf("failed to seal field %q: %w", name, err)
			}
		}

		record.Fields[name] = models.FieldValue{Data: data, Encrypted: encrypted}
	}

	return record, nil
}

// Merge applies a server record's fields onto the local item when the server
// side is fresher. The server wins only if the record carries a modification
// date strictly after the item's last user edit; otherwise the item is
// returned unchanged and the second return value is false.
//
// Fields absent from the record payload keep their local values.
func (c *FieldCodec) Merge(location models.SavedLocation, record models.RemoteRecord) (models.SavedLocation, bool, error) {
	if record.ModificationDate == nil || !record.ModificationDate.After(location.LastModified) {
		return location, false, nil
	}

	if err := c.decodeField(record, models.FieldName, &location.Name); err != nil {
		return location, false, err
	}
	if err := c.decodeField(record, models.FieldQuery, &location.Query); err != nil {
		return location, false, err
	}
	if err := c.decodeField(record, models.FieldPosition, &location.Position); err != nil {
		return location, false, err
	}
	if err := c.decodeField(record, models.FieldLatitude, &location.Latitude); err != nil {
		return location, false, err
	}
	if err := c.decodeField(record, models.FieldLongitude, &location.Longitude); err != nil {
		return location, false, err
	}

	location.LastModified = *record.ModificationDate

	return location, true, nil
}

func (c *FieldCodec) decodeField(record models.RemoteRecord, name string, dest any) error {
	value, ok := record.Fields[name]
	if !ok {
		return nil
	}

	data := value.Data
	if value.Encrypted {
		var err error
		data, err = c.sealer.Open(data)
		if err != nil {
			return fmt.Errorf("failed to open field %q: %w", name, err)
		}
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode field %q: %w", name, err)
	}

	return nil
}
