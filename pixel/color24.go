package pixel

import (
	"fmt"
	"image/color"
)

const (
	redShift24   = 16
	greenShift24 = 8
	blueShift24  = 0

	colorMask24 = 0x00ffffff
)

// Color24 is an 8-bit per channel RGB color packed as 0x??RRGGBB. The top
// byte is unused.
type Color24 uint32

// NewColor24 returns the color with the given components.
func NewColor24(r, g, b uint8) Color24 {
	return Color24(uint32(r)<<redShift24 | uint32(g)<<greenShift24 | uint32(b)<<blueShift24)
}

// Red returns the red component.
func (c Color24) Red() uint8 { return uint8(c >> redShift24) }

// Green returns the green component.
func (c Color24) Green() uint8 { return uint8(c >> greenShift24) }

// Blue returns the blue component.
func (c Color24) Blue() uint8 { return uint8(c >> blueShift24) }

// Channel returns the component selected by ch.
func (c Color24) Channel(ch Channel) (uint8, error) {
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

// SetChannel returns c with the component selected by ch replaced by v.
func (c Color24) SetChannel(ch Channel, v uint8) (Color24, error) {
	var shift uint
	switch ch {
	case Red:
		shift = redShift24
	case Green:
		shift = greenShift24
	case Blue:
		shift = blueShift24
	default:
		return c, badChannel(ch, 3)
	}
	return c&^(max8<<shift) | Color24(v)<<shift, nil
}

// Canonical returns c with the unused byte cleared.
func (c Color24) Canonical() Color24 { return c & colorMask24 }

// Equal reports whether c and o have the same components.
func (c Color24) Equal(o Color24) bool { return c.Canonical() == o.Canonical() }

// Hash returns a hash of the color components only.
func (c Color24) Hash() uint32 { return uint32(c.Canonical()) }

// To15 narrows each component to 5 bits by discarding the low three bits.
func (c Color24) To15() Color15 {
	return NewColor15(int(c.Red()>>shift5to8), int(c.Green()>>shift5to8), int(c.Blue()>>shift5to8))
}

// To32 is exact; alpha is set to fully opaque.
func (c Color24) To32() Color32 {
	return NewColor32(max8, c.Red(), c.Green(), c.Blue())
}

// ToF divides each component by 255. Alpha is 1.
func (c Color24) ToF() ColorF {
	return ColorF{
		A: 1,
		R: toFloat(c.Red(), max8),
		G: toFloat(c.Green(), max8),
		B: toFloat(c.Blue(), max8),
	}
}

// RGBA implements the color.Color interface.
func (c Color24) RGBA() (r, g, b, a uint32) {
	return expand8(c.Red()), expand8(c.Green()), expand8(c.Blue()), 0xffff
}

func (c Color24) String() string {
	return fmt.Sprintf("#%06X", uint32(c.Canonical()))
}

// Color24Model converts any color to a Color24, ignoring alpha.
var Color24Model color.Model = color.ModelFunc(color24Model)

func color24Model(c color.Color) color.Color {
	if c24, ok := c.(Color24); ok {
		return c24
	}
	r, g, b, _ := c.RGBA()
	return NewColor24(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
