package starsystem

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinate addresses one sector of the grid. It is the only identity a
// star system has.
type Coordinate struct {
	X uint32 `json:"x"`
	Y uint32 `json:"y"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Offset returns the coordinate dx, dy sectors away, wrapping modulo 2^32.
func (c Coordinate) Offset(dx, dy int) Coordinate {
	return Coordinate{X: c.X + uint32(dx), Y: c.Y + uint32(dy)}
}

// Color is an ARGB-packed palette entry, alpha in the most significant byte.
type Color uint32

func (c Color) ARGB() (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	v, err := strconv.ParseUint(strings.TrimPrefix(string(text), "#"), 16, 32)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", text, err)
	}
	*c = Color(v)
	return nil
}

// Star is the cheap probe result used for every visible sector.
type Star struct {
	Coordinate Coordinate `json:"coordinate"`
	Exists     bool       `json:"exists"`
	Diameter   float64    `json:"diameter"`
	Color      Color      `json:"color"`
}

// StarSystem is one generation pass. Planets is only filled on full
// expansion and is ordered by increasing distance from the star.
type StarSystem struct {
	Coordinate Coordinate `json:"coordinate"`
	Exists     bool       `json:"exists"`
	Diameter   float64    `json:"diameter"`
	Color      Color      `json:"color"`
	Expanded   bool       `json:"expanded"`
	Planets    []Planet   `json:"planets"`
}

// Star returns the probe view of the system.
func (s StarSystem) Star() Star {
	return Star{
		Coordinate: s.Coordinate,
		Exists:     s.Exists,
		Diameter:   s.Diameter,
		Color:      s.Color,
	}
}

type Planet struct {
	Distance    float64   `json:"distance"`
	Diameter    float64   `json:"diameter"`
	Temperature float64   `json:"temperature"`
	Foliage     float64   `json:"foliage"`
	Minerals    float64   `json:"minerals"`
	Gases       float64   `json:"gases"`
	Water       float64   `json:"water"`
	Population  int64     `json:"population"`
	Ring        bool      `json:"ring"`
	Moons       []float64 `json:"moons"`
}

// Composition returns the four surface fractions in generation order.
func (p Planet) Composition() [4]float64 {
	return [4]float64{p.Foliage, p.Minerals, p.Gases, p.Water}
}
