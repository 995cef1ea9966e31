// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The locsync Authors

package store

const (
	getAllLocations = `
		SELECT
			id,
			name,
			query,
			latitude,
			longitude,
			position,
			last_modified
		FROM locations
		ORDER BY position;`

	saveSingleLocation = `
		INSERT INTO locations (
			id,
			name,
			query,
			latitude,
			longitude,
			position,
			last_modified
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name          = excluded.name,
			query         = excluded.query,
			latitude      = excluded.latitude,
			longitude     = excluded.longitude,
			position      = excluded.position,
			last_modified = excluded.last_modified;`

	deleteSingleLocation = `
		DELETE FROM locations
		WHERE id = ?;`

	deleteAllLocations = `
		DELETE FROM locations;`
)
