/*
Package pixel implements the bit-packed color formats used by ROM graphics
data and the conversions between them.

Four formats are defined: Color15 is the 15-bit BGR format stored in a 16-bit
word by the SNES, Color24 is 8-bit RGB packed into the low 24 bits of a 32-bit
word, Color32 is 8-bit ARGB and ColorF holds each channel as a float in the
range 0 to 1. Unused bits never take part in equality or hashing.

Conversions are explicit methods named after the target format. Widening from
5 to 8 bits shifts the channel left leaving the low bits clear, narrowing
truncates, and conversions from ColorF round to nearest and saturate.
*/
package pixel

import (
	"math"

	"github.com/bodgit/romgfx/fault"
)

// Channel selects a single component of a color.
type Channel int

// The channels understood by the channel accessors. Alpha is only valid for
// Color32 and ColorF.
const (
	Red Channel = iota
	Green
	Blue
	Alpha
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Alpha:
		return "alpha"
	default:
		return "unknown"
	}
}

const (
	bitsPerByte = 8

	max5 = 1<<5 - 1
	max8 = 1<<8 - 1

	// Difference in precision between a 5-bit and an 8-bit channel
	shift5to8 = bitsPerByte - 5
)

func badChannel(c Channel, n int) error {
	return fault.OutOfRange("channel %d not in [0, %d)", int(c), n)
}

// clamp saturates f to [0, 1], NaN becomes 0
func clamp(f float32) float32 {
	switch {
	case f != f, f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

func fromFloat(f float32, max int) uint8 {
	return uint8(math.Round(float64(clamp(f)) * float64(max)))
}

func toFloat(v uint8, max int) float32 {
	return float32(v) / float32(max)
}

// Widen an 8-bit value to the 16-bit range used by color.Color
func expand8(v uint8) uint32 {
	x := uint32(v)
	return x | x<<8
}
