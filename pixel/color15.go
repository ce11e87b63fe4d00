package pixel

import (
	"fmt"
	"image/color"
)

const (
	redShift15   = 0
	greenShift15 = 5
	blueShift15  = 10

	channelMask15 = max5
	colorMask15   = channelMask15<<redShift15 | channelMask15<<greenShift15 | channelMask15<<blueShift15
)

// Color15 is a 15-bit color packed as [x bbbbb ggggg rrrrr]. The most
// significant bit is unused; it is preserved by the accessors but ignored by
// Equal and Hash.
type Color15 uint16

// Color15Size is the size in bytes of an encoded Color15.
const Color15Size = 2

// NewColor15 returns the color with the given 5-bit components. Only the low
// five bits of each component are used.
func NewColor15(r, g, b int) Color15 {
	return Color15((r&channelMask15)<<redShift15 | (g&channelMask15)<<greenShift15 | (b&channelMask15)<<blueShift15)
}

// Color15FromBytes decodes a little-endian color as stored in SNES CGRAM.
func Color15FromBytes(lo, hi byte) Color15 {
	return Color15(uint16(lo) | uint16(hi)<<8)
}

// Bytes returns the little-endian encoding of c, unused bit included.
func (c Color15) Bytes() [Color15Size]byte {
	return [Color15Size]byte{byte(c), byte(c >> 8)}
}

// Red returns the 5-bit red component.
func (c Color15) Red() uint8 { return uint8(c>>redShift15) & channelMask15 }

// Green returns the 5-bit green component.
func (c Color15) Green() uint8 { return uint8(c>>greenShift15) & channelMask15 }

// Blue returns the 5-bit blue component.
func (c Color15) Blue() uint8 { return uint8(c>>blueShift15) & channelMask15 }

// Channel returns the 5-bit component selected by ch.
func (c Color15) Channel(ch Channel) (uint8, error) {
	switch ch {
	case Red:
		return c.Red(), nil
	case Green:
		return c.Green(), nil
	case Blue:
		return c.Blue(), nil
	}
	return 0, badChannel(ch, 3)
}

// SetChannel returns c with the component selected by ch replaced by the low
// five bits of v. All other bits, including the unused one, are kept.
func (c Color15) SetChannel(ch Channel, v uint8) (Color15, error) {
	var shift uint
	switch ch {
	case Red:
		shift = redShift15
	case Green:
		shift = greenShift15
	case Blue:
		shift = blueShift15
	default:
		return c, badChannel(ch, 3)
	}
	return c&^(channelMask15<<shift) | Color15(v&channelMask15)<<shift, nil
}

// Canonical returns c with the unused bit cleared.
func (c Color15) Canonical() Color15 { return c & colorMask15 }

// Equal reports whether c and o have the same components.
func (c Color15) Equal(o Color15) bool { return c.Canonical() == o.Canonical() }

// Hash returns a hash of the color components only.
func (c Color15) Hash() uint32 { return uint32(c.Canonical()) }

// To24 widens each component from 5 to 8 bits by shifting left three bits.
// The low bits are left clear.
func (c Color15) To24() Color24 {
	return NewColor24(c.Red()<<shift5to8, c.Green()<<shift5to8, c.Blue()<<shift5to8)
}

// To32 widens like To24 and sets the alpha to fully opaque.
func (c Color15) To32() Color32 {
	return NewColor32(max8, c.Red()<<shift5to8, c.Green()<<shift5to8, c.Blue()<<shift5to8)
}

// ToF divides each component by 31. Alpha is 1.
func (c Color15) ToF() ColorF {
	return ColorF{
		A: 1,
		R: toFloat(c.Red(), max5),
		G: toFloat(c.Green(), max5),
		B: toFloat(c.Blue(), max5),
	}
}

// RGBA implements the color.Color interface.
func (c Color15) RGBA() (r, g, b, a uint32) {
	return c.To24().RGBA()
}

func (c Color15) String() string {
	return fmt.Sprintf("{Red: %d, Green: %d, Blue: %d}", c.Red(), c.Green(), c.Blue())
}

// Color15Model converts any color to a Color15 by truncating each channel.
var Color15Model color.Model = color.ModelFunc(color15Model)

func color15Model(c color.Color) color.Color {
	if c15, ok := c.(Color15); ok {
		return c15
	}
	r, g, b, _ := c.RGBA()
	return NewColor15(int(r>>11), int(g>>11), int(b>>11))
}
