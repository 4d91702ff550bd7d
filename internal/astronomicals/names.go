package astronomicals

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/mesh-intelligence/gemini/internal/resources"
)

// ErrNoNames is returned when the names resource carries no usable names.
var ErrNoNames = errors.New("names resource has no names")

// NamesResource is the word lists used to name celestial bodies.
type NamesResource struct {
	Names           []string `yaml:"names"`
	ScientificNames []string `yaml:"scientific_names"`
	Greek           []string `yaml:"greek"`
	Roman           []string `yaml:"roman"`
	Decorators      []string `yaml:"decorators"`
}

// ResourceKey implements resources.Resource.
func (NamesResource) ResourceKey() string { return resources.KeyAstronomicalNames }

// NameGenerator draws system and planet names from a NamesResource.
type NameGenerator struct {
	res NamesResource
	rng *rand.Rand
}

// NewNameGenerator returns a generator seeded with seed. The same seed and
// resource always yield the same sequence of names.
func NewNameGenerator(res NamesResource, seed uint64) (*NameGenerator, error) {
	if len(res.Names) == 0 && len(res.ScientificNames) == 0 {
		return nil, ErrNoNames
	}
	return &NameGenerator{
		res: res,
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}, nil
}

// SystemName returns a name for a star system: either a plain name, or a
// scientific catalogue designation with a number. A greek letter prefix and a
// decorator suffix are added occasionally.
func (g *NameGenerator) SystemName() string {
	var name string
	if len(g.res.ScientificNames) > 0 && (len(g.res.Names) == 0 || g.rng.IntN(4) == 0) {
		name = fmt.Sprintf("%s %d", g.pick(g.res.ScientificNames), 1+g.rng.IntN(9999))
	} else {
		name = g.pick(g.res.Names)
	}
	if len(g.res.Greek) > 0 && g.rng.IntN(5) == 0 {
		name = g.pick(g.res.Greek) + " " + name
	}
	if len(g.res.Decorators) > 0 && g.rng.IntN(8) == 0 {
		name = name + " " + g.pick(g.res.Decorators)
	}
	return name
}

// PlanetName names the n-th planet (zero-based) of a system with a roman
// numeral. Systems with more planets than numerals fall back to digits.
func (g *NameGenerator) PlanetName(system string, n int) string {
	if n >= 0 && n < len(g.res.Roman) {
		return system + " " + g.res.Roman[n]
	}
	return fmt.Sprintf("%s %d", system, n+1)
}

func (g *NameGenerator) pick(list []string) string {
	return list[g.rng.IntN(len(list))]
}
