// Package astronomicals defines the celestial graph persisted with a save and
// the name generator that labels its bodies.
package astronomicals

// Body kinds.
const (
	KindSystem = "system"
	KindPlanet = "planet"
	KindMoon   = "moon"
)

// Body is one node of the celestial graph.
type Body struct {
	ID    string `cbor:"id"`
	Name  string `cbor:"name"`
	Kind  string `cbor:"kind"`
	Star  *Star  `cbor:"star,omitempty"`
	Orbit string `cbor:"orbit,omitempty"` // ID of the body this one orbits
}

// Edge is a spatial relation between two bodies.
type Edge struct {
	From     string  `cbor:"from"`
	To       string  `cbor:"to"`
	Distance float64 `cbor:"distance"`
}

// Galaxy is the celestial graph: bodies as nodes, orbital and travel
// relations as edges.
type Galaxy struct {
	Bodies []Body `cbor:"bodies,omitempty"`
	Edges  []Edge `cbor:"edges,omitempty"`
}

// NewGalaxy builds a galaxy from bodies and edges. Nil slices give the empty
// galaxy.
func NewGalaxy(bodies []Body, edges []Edge) Galaxy {
	return Galaxy{Bodies: bodies, Edges: edges}
}

// Body returns the body with the given ID.
func (g *Galaxy) Body(id string) (Body, bool) {
	for _, b := range g.Bodies {
		if b.ID == id {
			return b, true
		}
	}
	return Body{}, false
}

// Neighbors returns the IDs connected to id by an edge, in edge order.
// Edges are undirected.
func (g *Galaxy) Neighbors(id string) []string {
	var out []string
	for _, e := range g.Edges {
		switch id {
		case e.From:
			out = append(out, e.To)
		case e.To:
			out = append(out, e.From)
		}
	}
	return out
}

// Systems returns the bodies of kind KindSystem.
func (g *Galaxy) Systems() []Body {
	var out []Body
	for _, b := range g.Bodies {
		if b.Kind == KindSystem {
			out = append(out, b)
		}
	}
	return out
}
