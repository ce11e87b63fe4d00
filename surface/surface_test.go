package surface

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/bodgit/romgfx/fault"
	"github.com/bodgit/romgfx/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New(image.Rect(0, 0, 3, 2))
	assert.Len(t, s.Pix, 3*2*BytesPerPixel)
	assert.Equal(t, 3*BytesPerPixel, s.Stride)
}

func TestSetColor32(t *testing.T) {
	s := New(image.Rect(0, 0, 2, 2))
	c := pixel.NewColor32(0x11, 0x22, 0x33, 0x44)

	assert.True(t, s.SetColor32(1, 1, c))
	assert.Equal(t, []byte{0x44, 0x33, 0x22, 0x11}, s.Pix[12:16])
	assert.Equal(t, c, s.Color32At(1, 1))

	for _, p := range []image.Point{{-1, 0}, {2, 0}, {0, 2}, {0, -1}} {
		assert.False(t, s.SetColor32(p.X, p.Y, c))
		assert.Equal(t, -1, s.PixOffset(p.X, p.Y))
		assert.Equal(t, pixel.Color32(0), s.Color32At(p.X, p.Y))
	}
}

func TestShortBuffer(t *testing.T) {
	// Rect claims more than Pix holds
	s := &Surface{
		Pix:    make([]byte, 4*BytesPerPixel),
		Stride: 4 * BytesPerPixel,
		Rect:   image.Rect(0, 0, 4, 4),
	}
	assert.True(t, s.SetColor32(3, 0, 1))
	assert.False(t, s.SetColor32(0, 1, 1))
}

func TestImage(t *testing.T) {
	s := New(image.Rect(0, 0, 2, 1))
	s.Set(0, 0, color.RGBA{0xff, 0x00, 0x00, 0xff})
	assert.Equal(t, pixel.NewColor32(0xff, 0xff, 0x00, 0x00), s.At(0, 0))
	assert.Equal(t, pixel.Color32Model, s.ColorModel())

	s.Fill(pixel.NewColor32(0xff, 1, 2, 3))
	assert.Equal(t, pixel.NewColor32(0xff, 1, 2, 3), s.Color32At(1, 0))
}

func TestWrap(t *testing.T) {
	s, err := Wrap(make([]byte, 64), 4)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), s.Bounds())

	_, err = Wrap(nil, 4)
	assert.True(t, errors.Is(err, fault.ErrInvalidArgument))
	_, err = Wrap(make([]byte, 8), 0)
	assert.True(t, errors.Is(err, fault.ErrInvalidArgument))
	_, err = Wrap(make([]byte, 8), 4)
	assert.True(t, errors.Is(err, fault.ErrOutOfRange))
}

func TestSubSurface(t *testing.T) {
	s := New(image.Rect(0, 0, 4, 4))
	sub := s.SubSurface(image.Rect(2, 2, 8, 8))
	assert.Equal(t, image.Rect(2, 2, 4, 4), sub.Bounds())

	assert.True(t, sub.SetColor32(3, 3, 7))
	assert.Equal(t, pixel.Color32(7), s.Color32At(3, 3))
	assert.False(t, sub.SetColor32(1, 1, 7))
}
