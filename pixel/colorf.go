package pixel

import "fmt"

// ColorF holds each component as a float between 0 and 1. Values outside
// that range are allowed but saturate on conversion.
type ColorF struct {
	A, R, G, B float32
}

// NewColorF returns an opaque color with the given components.
func NewColorF(r, g, b float32) ColorF {
	return ColorF{A: 1, R: r, G: g, B: b}
}

// Channel returns the component selected by ch.
func (c ColorF) Channel(ch Channel) (float32, error) {
	switch ch {
	case Red:
		return c.R, nil
	case Green:
		return c.G, nil
	case Blue:
		return c.B, nil
	case Alpha:
		return c.A, nil
	}
	return 0, badChannel(ch, 4)
}

// SetChannel returns c with the component selected by ch replaced by v.
func (c ColorF) SetChannel(ch Channel, v float32) (ColorF, error) {
	switch ch {
	case Red:
		c.R = v
	case Green:
		c.G = v
	case Blue:
		c.B = v
	case Alpha:
		c.A = v
	default:
		return c, badChannel(ch, 4)
	}
	return c, nil
}

// Clamp returns c with every component saturated to [0, 1].
func (c ColorF) Clamp() ColorF {
	return ColorF{A: clamp(c.A), R: clamp(c.R), G: clamp(c.G), B: clamp(c.B)}
}

// To15 computes round(channel * 31) after saturating. Alpha is dropped.
func (c ColorF) To15() Color15 {
	return NewColor15(int(fromFloat(c.R, max5)), int(fromFloat(c.G, max5)), int(fromFloat(c.B, max5)))
}

// To24 computes round(channel * 255) after saturating. Alpha is dropped.
func (c ColorF) To24() Color24 {
	return NewColor24(fromFloat(c.R, max8), fromFloat(c.G, max8), fromFloat(c.B, max8))
}

// To32 computes round(channel * 255) after saturating, alpha included.
func (c ColorF) To32() Color32 {
	return NewColor32(fromFloat(c.A, max8), fromFloat(c.R, max8), fromFloat(c.G, max8), fromFloat(c.B, max8))
}

// RGBA implements the color.Color interface.
func (c ColorF) RGBA() (r, g, b, a uint32) {
	return c.To32().RGBA()
}

func (c ColorF) String() string {
	return fmt.Sprintf("{A: %g, R: %g, G: %g, B: %g}", c.A, c.R, c.G, c.B)
}
