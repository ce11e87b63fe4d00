/*
Package gfx implements a store of 8 by 8 graphics tiles decoded from the SNES
planar bitplane formats.

Each tile holds one palette index per pixel. In the planar formats every row
of a tile is stored as pairs of interleaved bitplanes, 16 bytes per pair, with
the leftmost pixel in the most significant bit. Index 0 is transparent.
*/
package gfx

import (
	"github.com/bodgit/romgfx/fault"
)

const (
	// TileWidth is the width in pixels of a graphics tile
	TileWidth = 8
	// TileHeight is the height in pixels of a graphics tile
	TileHeight = TileWidth
	// TilePixels is the number of pixels in a graphics tile
	TilePixels = TileWidth * TileHeight

	planePairSize = TileHeight * 2
)

// Format is a bitplane layout.
type Format int

// Supported formats.
const (
	Format1Bpp Format = iota + 1
	Format2Bpp
	Format4Bpp
	// Format8Bpp tiles can be decoded and previewed, but rendering them as
	// object tiles needs four rows of 256 colors, more than a palette can
	// hold.
	Format8Bpp
)

// BitsPerPixel returns the number of bitplanes in f or 0 if f is unknown.
func (f Format) BitsPerPixel() int {
	switch f {
	case Format1Bpp:
		return 1
	case Format2Bpp:
		return 2
	case Format4Bpp:
		return 4
	case Format8Bpp:
		return 8
	default:
		return 0
	}
}

// ColorsPerPixel returns the number of distinct values a pixel can hold.
func (f Format) ColorsPerPixel() int {
	if bpp := f.BitsPerPixel(); bpp > 0 {
		return 1 << uint(bpp)
	}
	return 0
}

// BytesPerTile returns the encoded size of one tile.
func (f Format) BytesPerTile() int {
	return f.BitsPerPixel() * TileHeight
}

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	return f.BitsPerPixel() > 0
}

func (f Format) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return string('0'+rune(f.BitsPerPixel())) + "bpp"
}

// ParseFormat returns the format named by s, such as "4bpp".
func ParseFormat(s string) (Format, error) {
	for _, f := range []Format{Format1Bpp, Format2Bpp, Format4Bpp, Format8Bpp} {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, fault.InvalidArgument("gfx: unknown format %q", s)
}

// offset returns the byte holding row y of bitplane p
func (f Format) offset(p, y int) int {
	if f == Format1Bpp {
		return y
	}
	return p>>1*planePairSize + y<<1 + p&1
}

// Tile is a graphics tile, one palette index per pixel in row-major order.
type Tile [TilePixels]byte

// At returns the palette index of the pixel at column x and row y.
func (t *Tile) At(x, y int) byte {
	return t[y*TileWidth+x]
}

// Set changes the palette index of the pixel at column x and row y.
func (t *Tile) Set(x, y int, v byte) {
	t[y*TileWidth+x] = v
}

// Store is an ordered collection of graphics tiles of a single format.
type Store struct {
	format Format
	tiles  []Tile
}

// NewStore returns a store holding tiles. Pixel values are masked to the
// range of the format.
func NewStore(f Format, tiles []Tile) (*Store, error) {
	if !f.Valid() {
		return nil, fault.InvalidArgument("gfx: unknown format %d", int(f))
	}
	mask := byte(f.ColorsPerPixel() - 1)
	s := &Store{
		format: f,
		tiles:  make([]Tile, len(tiles)),
	}
	for i := range tiles {
		for j, v := range tiles[i] {
			s.tiles[i][j] = v & mask
		}
	}
	return s, nil
}

func (s *Store) Format() Format { return s.format }

// ColorsPerPixel returns the number of distinct values a pixel can hold.
func (s *Store) ColorsPerPixel() int { return s.format.ColorsPerPixel() }

func (s *Store) Len() int { return len(s.tiles) }

// Tile returns the tile at index i. The boolean is false, and the tile
// blank, if i is out of range.
func (s *Store) Tile(i int) (Tile, bool) {
	if i < 0 || i >= len(s.tiles) {
		return Tile{}, false
	}
	return s.tiles[i], true
}

// SetTile replaces the tile at index i.
func (s *Store) SetTile(i int, t Tile) error {
	if i < 0 || i >= len(s.tiles) {
		return fault.OutOfRange("gfx: tile %d not in [0, %d)", i, len(s.tiles))
	}
	mask := byte(s.ColorsPerPixel() - 1)
	for j := range t {
		t[j] &= mask
	}
	s.tiles[i] = t
	return nil
}
