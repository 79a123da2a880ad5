package starsystem

import (
	"strconv"

	"starfield-server/internal/shared/errors"
)

const (
	minAxis = -1 << 31
	maxAxis = 1<<32 - 1
)

// AxisFromInt64 maps a signed or unsigned 32-bit value onto the grid.
// Negative values wrap, so -1 addresses the same sector as 4294967295.
func AxisFromInt64(v int64) (uint32, error) {
	if v < minAxis || v > maxAxis {
		return 0, errors.Validationf("coordinate %d is outside the 32-bit range", v)
	}
	return uint32(v), nil
}

func ParseAxis(s string) (uint32, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.WrapValidation("invalid coordinate "+strconv.Quote(s), err)
	}
	return AxisFromInt64(v)
}

func ParseCoordinate(x, y string) (Coordinate, error) {
	cx, err := ParseAxis(x)
	if err != nil {
		return Coordinate{}, err
	}
	cy, err := ParseAxis(y)
	if err != nil {
		return Coordinate{}, err
	}
	return Coordinate{X: cx, Y: cy}, nil
}
