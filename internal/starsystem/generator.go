package starsystem

import (
	"starfield-server/internal/procgen"
)

// Generator derives star systems from coordinates. It holds no state beyond
// its recipe and is safe for concurrent use; each call owns a fresh stream.
type Generator struct {
	recipe Recipe
}

func NewGenerator(recipe Recipe) *Generator {
	return &Generator{recipe: recipe}
}

// Recipe returns the ranges this generator draws from.
func (g *Generator) Recipe() Recipe {
	return g.recipe
}

// Probe decides existence and the visual attributes only.
func (g *Generator) Probe(x, y uint32) Star {
	return g.Generate(x, y, false).Star()
}

// Expand generates the full system including planets and moons.
func (g *Generator) Expand(x, y uint32) StarSystem {
	return g.Generate(x, y, true)
}

// Generate runs one generation pass. Draw order is fixed: reordering any
// step changes every value after it.
func (g *Generator) Generate(x, y uint32, full bool) StarSystem {
	r := &g.recipe
	rng := procgen.ForCoordinate(x, y)

	sys := StarSystem{Coordinate: Coordinate{X: x, Y: y}}

	sys.Exists = rng.Int(r.Existence.Min, r.Existence.Max) == r.ExistenceHit
	if !sys.Exists {
		return sys
	}

	sys.Diameter = rng.Float64(r.StarDiameter.Min, r.StarDiameter.Max)
	sys.Color = r.Palette[rng.Int(0, int32(len(r.Palette)))]

	if !full {
		return sys
	}

	sys.Expanded = true
	distance := rng.Float64(r.InitialOrbit.Min, r.InitialOrbit.Max)
	count := rng.Int(r.PlanetCount.Min, r.PlanetCount.Max)

	sys.Planets = make([]Planet, 0, max(count, 0))
	for i := int32(0); i < count; i++ {
		distance += rng.Float64(r.OrbitSpacing.Min, r.OrbitSpacing.Max)
		sys.Planets = append(sys.Planets, g.planet(rng, distance))
	}

	return sys
}

func (g *Generator) planet(rng *procgen.Stream, distance float64) Planet {
	r := &g.recipe

	p := Planet{Distance: distance}
	p.Diameter = rng.Float64(r.PlanetSize.Min, r.PlanetSize.Max)
	p.Temperature = rng.Float64(r.Temperature.Min, r.Temperature.Max)

	p.Foliage = rng.Float64(r.Composition.Min, r.Composition.Max)
	p.Minerals = rng.Float64(r.Composition.Min, r.Composition.Max)
	p.Gases = rng.Float64(r.Composition.Min, r.Composition.Max)
	p.Water = rng.Float64(r.Composition.Min, r.Composition.Max)

	// An all-zero draw divides by zero and yields NaN fractions.
	sum := p.Foliage + p.Minerals + p.Gases + p.Water
	p.Foliage /= sum
	p.Minerals /= sum
	p.Gases /= sum
	p.Water /= sum

	p.Population = int64(max(rng.Int(r.Population.Min, r.Population.Max), 0))
	p.Ring = rng.Int(r.RingRoll.Min, r.RingRoll.Max) == r.RingHit

	moons := max(rng.Int(r.MoonCount.Min, r.MoonCount.Max), 0)
	p.Moons = make([]float64, 0, moons)
	for i := int32(0); i < moons; i++ {
		p.Moons = append(p.Moons, rng.Float64(r.MoonSize.Min, r.MoonSize.Max))
	}

	return p
}
