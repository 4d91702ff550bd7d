package astronomicals

// Star holds the physical parameters of a system's primary.
type Star struct {
	Mass       float64 `cbor:"mass"`
	Luminosity float64 `cbor:"luminosity"`
	Metalicity float64 `cbor:"metalicity"`
}

// NewStar returns a Star with the given parameters.
func NewStar(mass, luminosity, metalicity float64) Star {
	return Star{
		Mass:       mass,
		Luminosity: luminosity,
		Metalicity: metalicity,
	}
}
