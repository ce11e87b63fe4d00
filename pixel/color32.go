package pixel

import (
	"fmt"
	"image/color"
)

const (
	alphaShift32 = 24
	redShift32   = 16
	greenShift32 = 8
	blueShift32  = 0
)

// Color32 is an 8-bit per channel color packed as 0xAARRGGBB. The color is
// not premultiplied.
type Color32 uint32

// Color32Size is the size in bytes of an encoded Color32.
const Color32Size = 4

// NewColor32 returns the color with the given components.
func NewColor32(a, r, g, b uint8) Color32 {
	return Color32(uint32(a)<<alphaShift32 | uint32(r)<<redShift32 | uint32(g)<<greenShift32 | uint32(b)<<blueShift32)
}

func (c Color32) Alpha() uint8 { return uint8(c >> alphaShift32) }

func (c Color32) Red() uint8 { return uint8(c >> redShift32) }

func (c Color32) Green() uint8 { return uint8(c >> greenShift32) }

func (c Color32) Blue() uint8 { return uint8(c >> blueShift32) }

func shift32(ch Channel) (uint, bool) {
	switch ch {
	case Red:
		return redShift32, true
	case Green:
		return greenShift32, true
	case Blue:
		return blueShift32, true
	case Alpha:
		return alphaShift32, true
	}
	return 0, false
}

// Channel returns the component selected by ch.
func (c Color32) Channel(ch Channel) (uint8, error) {
	shift, ok := shift32(ch)
	if !ok {
		return 0, badChannel(ch, 4)
	}
	return uint8(c >> shift), nil
}

// SetChannel returns c with the component selected by ch replaced by v.
func (c Color32) SetChannel(ch Channel, v uint8) (Color32, error) {
	shift, ok := shift32(ch)
	if !ok {
		return c, badChannel(ch, 4)
	}
	return c&^(max8<<shift) | Color32(v)<<shift, nil
}

// Equal reports whether c and o are the same color.
func (c Color32) Equal(o Color32) bool { return c == o }

// Hash returns a hash of the color.
func (c Color32) Hash() uint32 { return uint32(c) }

// Dim returns c with the red, green and blue components halved. Alpha is
// unchanged.
func (c Color32) Dim() Color32 {
	return NewColor32(c.Alpha(), c.Red()/2, c.Green()/2, c.Blue()/2)
}

// Opaque returns c with the alpha set to fully opaque.
func (c Color32) Opaque() Color32 {
	return c | max8<<alphaShift32
}

// To15 narrows each component to 5 bits by discarding the low three bits.
// Alpha is dropped.
func (c Color32) To15() Color15 {
	return NewColor15(int(c.Red()>>shift5to8), int(c.Green()>>shift5to8), int(c.Blue()>>shift5to8))
}

// To24 drops the alpha component.
func (c Color32) To24() Color24 {
	return NewColor24(c.Red(), c.Green(), c.Blue())
}

// ToF divides each component, alpha included, by 255.
func (c Color32) ToF() ColorF {
	return ColorF{
		A: toFloat(c.Alpha(), max8),
		R: toFloat(c.Red(), max8),
		G: toFloat(c.Green(), max8),
		B: toFloat(c.Blue(), max8),
	}
}

// RGBA implements the color.Color interface.
func (c Color32) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}.RGBA()
}

func (c Color32) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// Color32Model converts any color to a Color32.
var Color32Model color.Model = color.ModelFunc(color32Model)

func color32Model(c color.Color) color.Color {
	if c32, ok := c.(Color32); ok {
		return c32
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewColor32(n.A, n.R, n.G, n.B)
}
