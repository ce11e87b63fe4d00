/*
Package surface implements a bounds-checked 32-bit pixel buffer used as the
destination of tile rendering.

Each pixel is a pixel.Color32 stored little-endian, so the bytes of a pixel
are blue, green, red and alpha in that order.
*/
package surface

import (
	"encoding/binary"
	"image"
	"image/color"

	"github.com/bodgit/romgfx/fault"
	"github.com/bodgit/romgfx/pixel"
)

// BytesPerPixel is the size of one pixel in the buffer.
const BytesPerPixel = pixel.Color32Size

// Surface is a rectangle of pixels backed by a caller-owned byte slice.
type Surface struct {
	// Pix holds the pixels, row by row.
	Pix []byte
	// Stride is the distance in bytes between vertically adjacent pixels.
	Stride int
	// Rect is the bounds of the surface.
	Rect image.Rectangle
}

// New allocates a surface of the given bounds.
func New(r image.Rectangle) *Surface {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	return &Surface{
		Pix:    make([]byte, w*h*BytesPerPixel),
		Stride: w * BytesPerPixel,
		Rect:   r,
	}
}

// Wrap returns a surface over an existing buffer with rows of width pixels.
// The buffer must hold at least one full row.
func Wrap(b []byte, width int) (*Surface, error) {
	if b == nil {
		return nil, fault.InvalidArgument("surface: nil buffer")
	}
	if width <= 0 {
		return nil, fault.InvalidArgument("surface: width %d is not positive", width)
	}
	stride := width * BytesPerPixel
	if len(b) < stride {
		return nil, fault.OutOfRange("surface: %d bytes is less than one row of %d", len(b), stride)
	}
	return &Surface{
		Pix:    b,
		Stride: stride,
		Rect:   image.Rect(0, 0, width, len(b)/stride),
	}, nil
}

func (s *Surface) Bounds() image.Rectangle { return s.Rect }

func (s *Surface) ColorModel() color.Model { return pixel.Color32Model }

func (s *Surface) At(x, y int) color.Color {
	return s.Color32At(x, y)
}

// PixOffset returns the index of the first byte of the pixel at (x, y). It
// returns -1 if the pixel lies outside the bounds or the buffer.
func (s *Surface) PixOffset(x, y int) int {
	if !image.Pt(x, y).In(s.Rect) {
		return -1
	}
	i := (y-s.Rect.Min.Y)*s.Stride + (x-s.Rect.Min.X)*BytesPerPixel
	if i < 0 || i+BytesPerPixel > len(s.Pix) {
		return -1
	}
	return i
}

// Color32At returns the pixel at (x, y), or zero outside the bounds.
func (s *Surface) Color32At(x, y int) pixel.Color32 {
	i := s.PixOffset(x, y)
	if i < 0 {
		return 0
	}
	return pixel.Color32(binary.LittleEndian.Uint32(s.Pix[i:]))
}

// SetColor32 writes c at (x, y) and reports whether the pixel was inside the
// surface. Nothing is written otherwise.
func (s *Surface) SetColor32(x, y int, c pixel.Color32) bool {
	i := s.PixOffset(x, y)
	if i < 0 {
		return false
	}
	binary.LittleEndian.PutUint32(s.Pix[i:], uint32(c))
	return true
}

// Set implements the draw.Image interface.
func (s *Surface) Set(x, y int, c color.Color) {
	s.SetColor32(x, y, pixel.Color32Model.Convert(c).(pixel.Color32))
}

// Fill sets every pixel to c.
func (s *Surface) Fill(c pixel.Color32) {
	for y := s.Rect.Min.Y; y < s.Rect.Max.Y; y++ {
		for x := s.Rect.Min.X; x < s.Rect.Max.X; x++ {
			s.SetColor32(x, y, c)
		}
	}
}

// SubSurface returns a surface sharing pixels with s limited to r.
func (s *Surface) SubSurface(r image.Rectangle) *Surface {
	r = r.Intersect(s.Rect)
	if r.Empty() {
		return &Surface{}
	}
	i := (r.Min.Y-s.Rect.Min.Y)*s.Stride + (r.Min.X-s.Rect.Min.X)*BytesPerPixel
	return &Surface{
		Pix:    s.Pix[i:],
		Stride: s.Stride,
		Rect:   r,
	}
}
