package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSchematics() SchematicResource {
	return SchematicResource{Schematics: []Schematic{
		{
			Name:   "Smelt steel",
			Inputs: []Ingredient{{Commodity: "iron_ore", Quantity: 4}, {Commodity: "coal", Quantity: 2}},
			Output: Ingredient{Commodity: "steel", Quantity: 1},
		},
		{
			Name:   "Recycle steel",
			Inputs: []Ingredient{{Commodity: "scrap", Quantity: 3}},
			Output: Ingredient{Commodity: "steel", Quantity: 1},
		},
		{
			Name:   "Plate hull",
			Inputs: []Ingredient{{Commodity: "steel", Quantity: 5}},
			Output: Ingredient{Commodity: "hull_plating", Quantity: 1},
		},
	}}
}

func TestProducing(t *testing.T) {
	r := testSchematics()

	got := r.Producing("steel")
	assert.Len(t, got, 2)
	assert.Equal(t, "Smelt steel", got[0].Name)
	assert.Equal(t, "Recycle steel", got[1].Name)

	assert.Empty(t, r.Producing("water"))
}

func TestCommodities(t *testing.T) {
	assert.Equal(t,
		[]Commodity{"iron_ore", "coal", "steel", "scrap", "hull_plating"},
		testSchematics().Commodities())
}
