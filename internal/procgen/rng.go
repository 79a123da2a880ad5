// Package procgen implements the coordinate-seeded pseudo-random stream that
// drives star generation. Every value is derived from a 32-bit seed with fixed
// mixing constants, so a given coordinate produces the same stream on every
// platform and in every process.
package procgen

const (
	increment = 0xE120FC15
	mulFirst  = 0x4A39B70D
	mulSecond = 0x12FAD5C9

	// floatDivisor is 2^31-1 while draws span the full 32 bits, so Float64
	// can return up to min + 2*(max-min). Changing it changes every world.
	floatDivisor = 0x7FFFFFFF
)

// DeriveSeed packs the low 16 bits of x and y into a single seed, x in the
// high half.
func DeriveSeed(x, y uint32) uint32 {
	return (x&0xFFFF)<<16 | (y & 0xFFFF)
}

// Stream is a single mutable accumulator. It is not safe for concurrent use;
// each generation pass owns its own Stream.
type Stream struct {
	state uint32
}

// NewStream returns a stream starting at seed.
func NewStream(seed uint32) *Stream {
	return &Stream{state: seed}
}

// ForCoordinate returns a stream seeded from a sector coordinate.
func ForCoordinate(x, y uint32) *Stream {
	return NewStream(DeriveSeed(x, y))
}

// State reports the current accumulator.
func (s *Stream) State() uint32 {
	return s.state
}

// Uint32 advances the accumulator and returns the next mixed value. Only the
// pre-mix accumulator carries over to the next draw.
func (s *Stream) Uint32() uint32 {
	s.state += increment
	tmp := uint64(s.state) * mulFirst
	m1 := uint32((tmp >> 32) ^ tmp)
	tmp = uint64(m1) * mulSecond
	return uint32((tmp >> 32) ^ tmp)
}

// Int returns a value in [min, max) by modulo reduction of one draw.
//
// The reduction is slightly biased toward low values, and the caller must
// guarantee max > min: an empty range divides by zero and panics, and a span
// wider than int32 wraps.
func (s *Stream) Int(min, max int32) int32 {
	span := uint32(max - min)
	return int32(s.Uint32()%span) + min
}

// Float64 scales one draw into [min, max). See floatDivisor for why the
// upper bound is nominal.
func (s *Stream) Float64(min, max float64) float64 {
	// Explicit conversions forbid a fused multiply-add; results must match
	// bit for bit across architectures.
	unit := float64(float64(s.Uint32()) / floatDivisor)
	return float64(unit*(max-min)) + min
}
