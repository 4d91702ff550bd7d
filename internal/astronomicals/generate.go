package astronomicals

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// StarterGalaxy builds a small connected galaxy of systems, each with a few
// planets, named by gen. The layout is deterministic for a given seed.
func StarterGalaxy(gen *NameGenerator, systems int, seed uint64) Galaxy {
	rng := rand.New(rand.NewPCG(seed, seed+1))

	var bodies []Body
	var edges []Edge
	type point struct{ x, y float64 }
	pos := make([]point, 0, systems)

	for i := 0; i < systems; i++ {
		sysID := fmt.Sprintf("sys-%03d", i)
		name := gen.SystemName()
		mass := 0.1 + rng.Float64()*4
		star := NewStar(mass, math.Pow(mass, 3.5), rng.Float64()*0.04)
		bodies = append(bodies, Body{ID: sysID, Name: name, Kind: KindSystem, Star: &star})
		pos = append(pos, point{rng.Float64() * 100, rng.Float64() * 100})

		planets := 1 + rng.IntN(4)
		for p := 0; p < planets; p++ {
			bodies = append(bodies, Body{
				ID:    fmt.Sprintf("%s-p%d", sysID, p),
				Name:  gen.PlanetName(name, p),
				Kind:  KindPlanet,
				Orbit: sysID,
			})
		}

		// Chain each system to its predecessor so the graph stays connected.
		if i > 0 {
			d := math.Hypot(pos[i].x-pos[i-1].x, pos[i].y-pos[i-1].y)
			edges = append(edges, Edge{
				From:     fmt.Sprintf("sys-%03d", i-1),
				To:       sysID,
				Distance: math.Round(d*100) / 100,
			})
		}
	}
	return NewGalaxy(bodies, edges)
}
