// Package game holds the shared game state: three subsystems, each behind its
// own guard.
//
// There is no lock spanning subsystems. A caller that reads or writes more
// than one subsystem gets no atomicity across them and must coordinate on its
// own. Any operation that ever needs two guards at once must take them in the
// order Galaxy, Shipyard, Player.
package game

import (
	"github.com/mesh-intelligence/gemini/internal/astronomicals"
	"github.com/mesh-intelligence/gemini/internal/player"
	"github.com/mesh-intelligence/gemini/internal/resources"
	"github.com/mesh-intelligence/gemini/internal/ship"
)

// Game is the shared game state. Hold it by pointer; every holder sees the
// same subsystems.
type Game struct {
	Galaxy   Guarded[astronomicals.Galaxy]
	Shipyard Guarded[ship.Shipyard]
	Player   Guarded[player.Player]
}

// New returns a game with an empty galaxy, an empty shipyard and a default
// player.
func New() *Game {
	return Restore(astronomicals.NewGalaxy(nil, nil), ship.NewShipyard(), player.Default())
}

// Fresh returns a new game whose shipyard is filled from the embedded ship
// resource. It panics if that resource does not decode.
func Fresh() *Game {
	return Restore(astronomicals.NewGalaxy(nil, nil), StockShipyard(), player.Default())
}

// Restore builds a game from already constructed subsystems.
func Restore(g astronomicals.Galaxy, s ship.Shipyard, p player.Player) *Game {
	return &Game{
		Galaxy:   NewMutex(g),
		Shipyard: NewMutex(s),
		Player:   NewMutex(p),
	}
}

// StockShipyard builds the shipyard from the embedded ship resource. It
// panics if that resource does not decode.
func StockShipyard() ship.Shipyard {
	s := ship.NewShipyard()
	s.AddShips(resources.MustFetch[ship.Resource]())
	return s
}
