package models

import "time"

// SavedLocation is a user-owned saved location synchronized across the
// user's devices. Field values live here; the record cache only mirrors
// server-side metadata for the same item.
type SavedLocation struct {
	// ID is the stable, globally unique identifier of the location. It is
	// also the record name used on the remote side.
	ID string `json:"id"`

	// Name is the user-visible label (e.g. "Home", "Berlin").
	Name string `json:"name"`

	// Query is the original geocoding query the location was created from.
	Query string `json:"query"`

	// Latitude and Longitude are the resolved coordinates.
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// Position is the display-order index inside the saved-locations list.
	Position int `json:"position"`

	// LastModified is the timestamp of the last user-driven edit. It is
	// not an upload timestamp; merges compare it against the server-side
	// modification date to decide which side wins.
	LastModified time.Time `json:"last_modified"`
}
