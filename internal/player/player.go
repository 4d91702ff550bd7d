// Package player defines the player profile persisted with a save.
package player

import "github.com/google/uuid"

// Defaults for a new profile.
const (
	DefaultName    = "Commander"
	DefaultCredits = 1000
)

// Player is the player profile.
type Player struct {
	ID       string `cbor:"id"`
	Name     string `cbor:"name"`
	Credits  int64  `cbor:"credits"`
	Location string `cbor:"location,omitempty"` // body ID
	Ship     string `cbor:"ship,omitempty"`     // ship model name
}

// Default returns a profile with default values and a fresh ID.
func Default() Player {
	return Player{
		ID:      newID(),
		Name:    DefaultName,
		Credits: DefaultCredits,
	}
}

// newID generates a UUID v7 profile ID.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
