/*
Package palette implements palettes of 15-bit colors as used by SNES CGRAM.

A palette is stored as a sequence of little-endian 16-bit words, one per
color, laid out as [x bbbbb ggggg rrrrr]. Palettes are divided into rows; the
color of a pixel is found at row*rowSize + value.
*/
package palette

import (
	"errors"
	"image"
	"image/color"
	"io"
	"io/ioutil"

	"github.com/bodgit/romgfx/fault"
	"github.com/bodgit/romgfx/pixel"
	"github.com/ericpauley/go-quantize/quantize"
)

const (
	// MaxColors is the number of colors held in SNES CGRAM
	MaxColors = 256

	rgbSize = 3
)

var errTooMuch = errors.New("palette: too much palette data")

// Palette is an ordered sequence of colors.
type Palette []pixel.Color15

// Decode returns the palette encoded in b as 2-byte little-endian colors.
func Decode(b []byte) (Palette, error) {
	if len(b)%pixel.Color15Size != 0 {
		return nil, fault.Format("palette: %d bytes is not a multiple of %d", len(b), pixel.Color15Size)
	}
	if len(b) > MaxColors*pixel.Color15Size {
		return nil, errTooMuch
	}
	p := make(Palette, len(b)/pixel.Color15Size)
	for i := range p {
		p[i] = pixel.Color15FromBytes(b[i*2], b[i*2+1])
	}
	return p, nil
}

// DecodeRGB returns the palette encoded in b as 3-byte RGB triples, the
// layout of a .pal file. Each channel is truncated to 5 bits.
func DecodeRGB(b []byte) (Palette, error) {
	if len(b)%rgbSize != 0 {
		return nil, fault.Format("palette: %d bytes is not a multiple of %d", len(b), rgbSize)
	}
	if len(b) > MaxColors*rgbSize {
		return nil, errTooMuch
	}
	p := make(Palette, len(b)/rgbSize)
	for i := range p {
		p[i] = pixel.NewColor24(b[i*3], b[i*3+1], b[i*3+2]).To15()
	}
	return p, nil
}

// Read decodes a palette from r. If rgb is set the data is read as 3-byte
// RGB triples.
func Read(r io.Reader, rgb bool) (Palette, error) {
	size := pixel.Color15Size
	if rgb {
		size = rgbSize
	}
	// One color too many is enough to detect an oversized palette
	b, err := ioutil.ReadAll(io.LimitReader(r, int64((MaxColors+1)*size)))
	if err != nil {
		return nil, err
	}
	if rgb {
		return DecodeRGB(b)
	}
	return Decode(b)
}

// MarshalBinary encodes the palette as 2-byte little-endian colors.
func (p Palette) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, len(p)*pixel.Color15Size)
	for _, c := range p {
		tmp := c.Bytes()
		b = append(b, tmp[:]...)
	}
	return b, nil
}

// Color32s returns every color widened to 32 bits and made opaque.
func (p Palette) Color32s() []pixel.Color32 {
	out := make([]pixel.Color32, len(p))
	for i, c := range p {
		out[i] = c.To32()
	}
	return out
}

// Dimmed returns every color widened like Color32s with red, green and blue
// halved.
func (p Palette) Dimmed() []pixel.Color32 {
	out := p.Color32s()
	for i := range out {
		out[i] = out[i].Dim()
	}
	return out
}

// Row returns the colors of palette row n where each row holds size colors.
func (p Palette) Row(n, size int) (Palette, error) {
	if size <= 0 {
		return nil, fault.InvalidArgument("palette: row size %d is not positive", size)
	}
	if n < 0 || (n+1)*size > len(p) {
		return nil, fault.OutOfRange("palette: row %d of %d colors exceeds %d colors", n, size, len(p))
	}
	return p[n*size : (n+1)*size], nil
}

// Color returns the palette as a color.Palette.
func (p Palette) Color() color.Palette {
	out := make(color.Palette, len(p))
	for i, c := range p {
		out[i] = c
	}
	return out
}

// FromImage reduces the colors of m to no more than n colors using a median
// cut and returns them as a palette. Colors already in a small enough
// paletted image are used as they are.
func FromImage(m image.Image, n int) (Palette, error) {
	if n <= 0 || n > MaxColors {
		return nil, fault.OutOfRange("palette: %d colors not in [1, %d]", n, MaxColors)
	}

	var cp color.Palette
	if pm, ok := m.(*image.Paletted); ok && len(pm.Palette) <= n {
		cp = pm.Palette
	} else {
		q := quantize.MedianCutQuantizer{}
		cp = q.Quantize(make(color.Palette, 0, n), m)
	}

	p := make(Palette, len(cp))
	for i, c := range cp {
		p[i] = pixel.Color15Model.Convert(c).(pixel.Color15)
	}
	return p, nil
}
