package starsystem

// IntRange is a half-open [Min, Max) range drawn with procgen.Stream.Int.
type IntRange struct {
	Min int32 `json:"min"`
	Max int32 `json:"max"`
}

// FloatRange is a nominal [Min, Max) range drawn with procgen.Stream.Float64.
type FloatRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Recipe lists every range the generator draws from. Changing any field
// changes the universe, so worlds are only reproducible under the same recipe.
type Recipe struct {
	Existence    IntRange   `json:"existence"`
	ExistenceHit int32      `json:"existence_hit"`
	StarDiameter FloatRange `json:"star_diameter"`
	InitialOrbit FloatRange `json:"initial_orbit"`
	PlanetCount  IntRange   `json:"planet_count"`
	OrbitSpacing FloatRange `json:"orbit_spacing"`
	PlanetSize   FloatRange `json:"planet_size"`
	Temperature  FloatRange `json:"temperature"`
	Composition  FloatRange `json:"composition"`
	Population   IntRange   `json:"population"`
	RingRoll     IntRange   `json:"ring_roll"`
	RingHit      int32      `json:"ring_hit"`
	MoonCount    IntRange   `json:"moon_count"`
	MoonSize     FloatRange `json:"moon_size"`
	Palette      []Color    `json:"palette"`
}

// Palette is the fixed set of star colors.
var Palette = []Color{
	0xFFFFFFFF, 0xFFD9FFFF, 0xFFA3FFFF, 0xFFFFC8C8,
	0xFFFFCB9D, 0xFF9F9FFF, 0xFF415EFF, 0xFF28199D,
}

// DefaultRecipe yields roughly one star per twenty sectors and up to nine
// planets per star.
var DefaultRecipe = Recipe{
	Existence:    IntRange{0, 20},
	ExistenceHit: 1,
	StarDiameter: FloatRange{10, 40},
	InitialOrbit: FloatRange{60, 200},
	PlanetCount:  IntRange{0, 10},
	OrbitSpacing: FloatRange{20, 200},
	PlanetSize:   FloatRange{4, 20},
	Temperature:  FloatRange{-200, 300},
	Composition:  FloatRange{0, 1},
	Population:   IntRange{-5000000, 20000000},
	RingRoll:     IntRange{0, 10},
	RingHit:      1,
	MoonCount:    IntRange{-5, 5},
	MoonSize:     FloatRange{1, 5},
	Palette:      Palette,
}
