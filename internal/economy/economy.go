// Package economy defines commodities and the production schematics that
// convert them.
package economy

import "github.com/mesh-intelligence/gemini/internal/resources"

// Commodity is a tradeable good.
type Commodity string

// Ingredient is a quantity of a commodity consumed by a schematic.
type Ingredient struct {
	Commodity Commodity `yaml:"commodity"`
	Quantity  int       `yaml:"quantity"`
}

// Schematic converts a set of inputs into one output over a number of ticks.
type Schematic struct {
	Name     string       `yaml:"name"`
	Inputs   []Ingredient `yaml:"inputs"`
	Output   Ingredient   `yaml:"output"`
	Duration int          `yaml:"duration"`
}

// SchematicResource contains all schematics.
type SchematicResource struct {
	Schematics []Schematic `yaml:"schematics"`
}

// ResourceKey implements resources.Resource.
func (SchematicResource) ResourceKey() string { return resources.KeySchematics }

// Producing returns the schematics whose output is c, in resource order.
func (r SchematicResource) Producing(c Commodity) []Schematic {
	var out []Schematic
	for _, s := range r.Schematics {
		if s.Output.Commodity == c {
			out = append(out, s)
		}
	}
	return out
}

// Commodities returns every commodity mentioned by any schematic, without
// duplicates, in first-seen order.
func (r SchematicResource) Commodities() []Commodity {
	seen := make(map[Commodity]struct{})
	var out []Commodity
	add := func(c Commodity) {
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	for _, s := range r.Schematics {
		for _, in := range s.Inputs {
			add(in.Commodity)
		}
		add(s.Output.Commodity)
	}
	return out
}
