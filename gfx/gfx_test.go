package gfx

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/bodgit/romgfx/fault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A tile where every pixel value is x + y, masked to the format
func gradient(f Format) Tile {
	var t Tile
	mask := byte(f.ColorsPerPixel() - 1)
	for y := 0; y < TileHeight; y++ {
		for x := 0; x < TileWidth; x++ {
			t.Set(x, y, byte(x+y*3)&mask)
		}
	}
	return t
}

func TestFormat(t *testing.T) {
	tests := []struct {
		format       Format
		name         string
		colors, size int
	}{
		{Format1Bpp, "1bpp", 2, 8},
		{Format2Bpp, "2bpp", 4, 16},
		{Format4Bpp, "4bpp", 16, 32},
		{Format8Bpp, "8bpp", 256, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.format.String())
			assert.Equal(t, tt.colors, tt.format.ColorsPerPixel())
			assert.Equal(t, tt.size, tt.format.BytesPerTile())

			f, err := ParseFormat(tt.name)
			assert.NoError(t, err)
			assert.Equal(t, tt.format, f)
		})
	}

	_, err := ParseFormat("3bpp")
	assert.True(t, errors.Is(err, fault.ErrInvalidArgument))
	assert.False(t, Format(0).Valid())
}

func TestDecode2Bpp(t *testing.T) {
	b := make([]byte, 16)
	// Row 0: plane 0 has the leftmost pixel, plane 1 the rightmost
	b[0] = 0x80
	b[1] = 0x01
	// Row 7: both planes set for the second pixel
	b[14] = 0x40
	b[15] = 0x40

	s, err := Decode(b, Format2Bpp)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	tile, ok := s.Tile(0)
	require.True(t, ok)
	assert.Equal(t, byte(1), tile.At(0, 0))
	assert.Equal(t, byte(2), tile.At(7, 0))
	assert.Equal(t, byte(3), tile.At(1, 7))
	assert.Equal(t, byte(0), tile.At(3, 3))
}

func TestDecode4BppPlanes(t *testing.T) {
	b := make([]byte, 32)
	// Planes 2 and 3 of row 2 live in the second half of the tile
	b[16+4] = 0x80
	b[16+5] = 0x80

	s, err := Decode(b, Format4Bpp)
	require.NoError(t, err)

	tile, _ := s.Tile(0)
	assert.Equal(t, byte(12), tile.At(0, 2))
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []Format{Format1Bpp, Format2Bpp, Format4Bpp, Format8Bpp} {
		t.Run(f.String(), func(t *testing.T) {
			s, err := NewStore(f, []Tile{gradient(f), {}, gradient(f)})
			require.NoError(t, err)

			b, err := s.MarshalBinary()
			require.NoError(t, err)
			assert.Len(t, b, 3*f.BytesPerTile())

			d, err := Decode(b, f)
			require.NoError(t, err)
			assert.Equal(t, s, d)

			r, err := Read(bytes.NewReader(b), f)
			require.NoError(t, err)
			assert.Equal(t, s, r)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(make([]byte, 33), Format4Bpp)
	assert.True(t, errors.Is(err, fault.ErrFormat))

	_, err = Decode(nil, Format(9))
	assert.True(t, errors.Is(err, fault.ErrInvalidArgument))

	_, err = Read(bytes.NewReader(make([]byte, 40)), Format4Bpp)
	assert.Equal(t, errNotEnough, err)

	s, err := Read(bytes.NewReader(nil), Format4Bpp)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestStoreTile(t *testing.T) {
	s, err := NewStore(Format2Bpp, []Tile{{0xff}})
	require.NoError(t, err)

	tile, ok := s.Tile(0)
	assert.True(t, ok)
	// Masked to two bits
	assert.Equal(t, byte(3), tile[0])

	tile, ok = s.Tile(1)
	assert.False(t, ok)
	assert.Equal(t, Tile{}, tile)

	_, ok = s.Tile(-1)
	assert.False(t, ok)

	assert.True(t, errors.Is(s.SetTile(1, Tile{}), fault.ErrOutOfRange))
	assert.NoError(t, s.SetTile(0, Tile{1, 2, 7}))
	tile, _ = s.Tile(0)
	assert.Equal(t, byte(3), tile[2])
}

func TestImage(t *testing.T) {
	s, err := NewStore(Format2Bpp, []Tile{gradient(Format2Bpp), gradient(Format2Bpp), gradient(Format2Bpp)})
	require.NoError(t, err)

	p := color.Palette{color.Black, color.White}
	m, err := s.Image(p, 2)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 16), m.Bounds())
	// Palette padded to the colors of the format
	assert.Len(t, m.Palette, 4)
	assert.Equal(t, uint8(3), m.ColorIndexAt(8+3, 0))

	_, err = s.Image(p, 0)
	assert.True(t, errors.Is(err, fault.ErrInvalidArgument))

	back, err := FromImage(m, Format2Bpp)
	require.NoError(t, err)
	require.Equal(t, 4, back.Len())
	for i := 0; i < 3; i++ {
		tile, _ := back.Tile(i)
		assert.Equal(t, gradient(Format2Bpp), tile)
	}
	empty, _ := back.Tile(3)
	assert.Equal(t, Tile{}, empty)
}

func TestFromImageErrors(t *testing.T) {
	_, err := FromImage(image.NewRGBA(image.Rect(0, 0, 9, 8)), Format4Bpp)
	assert.True(t, errors.Is(err, fault.ErrFormat))
	_, err = FromImage(image.NewRGBA(image.Rect(0, 0, 8, 8)), Format(0))
	assert.True(t, errors.Is(err, fault.ErrInvalidArgument))
}
