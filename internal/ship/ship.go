// Package ship defines ship characteristics and the shipyard catalog.
package ship

import "github.com/mesh-intelligence/gemini/internal/resources"

// Characteristics describes one ship model offered by the shipyard.
type Characteristics struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Hull        int    `yaml:"hull"`
	Fuel        int    `yaml:"fuel"`
	Cargo       int    `yaml:"cargo"`
	Speed       int    `yaml:"speed"`
	Price       int64  `yaml:"price"`
}

// Resource lists every ship available in the game.
type Resource struct {
	Ships []Characteristics `yaml:"ships"`
}

// ResourceKey implements resources.Resource.
func (Resource) ResourceKey() string { return resources.KeyShips }

// Shipyard is the catalog of ship models. It is never persisted; it is
// rebuilt from the embedded ship resource.
type Shipyard struct {
	Ships []Characteristics
}

// NewShipyard returns an empty shipyard.
func NewShipyard() Shipyard {
	return Shipyard{}
}

// AddShips appends every ship in res, keeping resource order.
func (s *Shipyard) AddShips(res Resource) {
	s.Ships = append(s.Ships, res.Ships...)
}

// Find returns the ship model with the given name.
func (s *Shipyard) Find(name string) (Characteristics, bool) {
	for _, c := range s.Ships {
		if c.Name == name {
			return c, true
		}
	}
	return Characteristics{}, false
}

// Len returns the number of ship models in the catalog.
func (s *Shipyard) Len() int { return len(s.Ships) }
