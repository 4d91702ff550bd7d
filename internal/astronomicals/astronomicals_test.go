package astronomicals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNames() NamesResource {
	return NamesResource{
		Names:           []string{"Vega", "Rigel", "Deneb"},
		ScientificNames: []string{"HD", "Gliese"},
		Greek:           []string{"Alpha", "Beta"},
		Roman:           []string{"I", "II", "III"},
		Decorators:      []string{"Prime"},
	}
}

func TestGalaxyQueries(t *testing.T) {
	g := NewGalaxy(
		[]Body{
			{ID: "a", Name: "A", Kind: KindSystem},
			{ID: "a1", Name: "A I", Kind: KindPlanet, Orbit: "a"},
			{ID: "b", Name: "B", Kind: KindSystem},
			{ID: "c", Name: "C", Kind: KindSystem},
		},
		[]Edge{{From: "a", To: "b", Distance: 1}, {From: "c", To: "a", Distance: 2}},
	)

	body, ok := g.Body("a1")
	require.True(t, ok)
	assert.Equal(t, "A I", body.Name)

	_, ok = g.Body("zz")
	assert.False(t, ok)

	assert.Equal(t, []string{"b", "c"}, g.Neighbors("a"))
	assert.Equal(t, []string{"a"}, g.Neighbors("b"))
	assert.Empty(t, g.Neighbors("a1"))
	assert.Len(t, g.Systems(), 3)
}

func TestEmptyGalaxy(t *testing.T) {
	g := NewGalaxy(nil, nil)
	assert.Empty(t, g.Systems())
	assert.Empty(t, g.Neighbors("x"))
}

func TestNewNameGeneratorRequiresNames(t *testing.T) {
	_, err := NewNameGenerator(NamesResource{Greek: []string{"Alpha"}}, 1)
	assert.ErrorIs(t, err, ErrNoNames)
}

func TestNameGeneratorIsDeterministic(t *testing.T) {
	a, err := NewNameGenerator(testNames(), 42)
	require.NoError(t, err)
	b, err := NewNameGenerator(testNames(), 42)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.SystemName(), b.SystemName())
	}
}

func TestSystemNameUsesWordLists(t *testing.T) {
	gen, err := NewNameGenerator(NamesResource{Names: []string{"Vega"}}, 1)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		assert.Equal(t, "Vega", gen.SystemName())
	}

	gen, err = NewNameGenerator(NamesResource{ScientificNames: []string{"HD"}}, 1)
	require.NoError(t, err)
	assert.Regexp(t, `^HD \d+$`, gen.SystemName())
}

func TestPlanetName(t *testing.T) {
	gen, err := NewNameGenerator(testNames(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Vega I", gen.PlanetName("Vega", 0))
	assert.Equal(t, "Vega III", gen.PlanetName("Vega", 2))
	assert.Equal(t, "Vega 4", gen.PlanetName("Vega", 3))
}

func TestStarterGalaxy(t *testing.T) {
	gen, err := NewNameGenerator(testNames(), 9)
	require.NoError(t, err)

	g := StarterGalaxy(gen, 5, 9)

	systems := g.Systems()
	require.Len(t, systems, 5)
	assert.Len(t, g.Edges, 4)
	for _, s := range systems {
		require.NotNil(t, s.Star)
		assert.Positive(t, s.Star.Mass)
		assert.NotEmpty(t, s.Name)
	}
	for _, b := range g.Bodies {
		if b.Kind == KindPlanet {
			_, ok := g.Body(b.Orbit)
			assert.True(t, ok, "planet %s orbits unknown body %s", b.ID, b.Orbit)
		}
	}

	// Every system is reachable from the first.
	seen := map[string]bool{systems[0].ID: true}
	queue := []string{systems[0].ID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(id) {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	assert.Len(t, seen, 5)
}
