package entity

import "time"

// Player is a seat in a room's roster. It is identified by the client's
// stable id, not by connection identity: a connection is transient, a
// player is not.
type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Symbol    string `json:"symbol,omitempty"`
	Connected bool   `json:"connected"`

	// DisconnectedAt is set when the player drops and cleared on
	// reconnection; the prune pass checks it at fire time.
	DisconnectedAt *time.Time `json:"-"`
}
