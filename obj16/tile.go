/*
Package obj16 implements the SNES 16 by 16 object tile format and a renderer
that composites it into a 32-bit surface.

An object tile is an 8 byte record holding four sub-tiles in the order
top-left, bottom-left, top-right, bottom-right. Each sub-tile is a
little-endian 16-bit word laid out as:

	bit  15    14    13       12-10        9-0
	     Y     X     priority palette row  graphics tile

where X and Y flip the 8 by 8 graphics tile horizontally and vertically.
*/
package obj16

import (
	"encoding/binary"
	"image"

	"github.com/bodgit/romgfx/fault"
	"github.com/bodgit/romgfx/gfx"
)

const (
	// SubTiles is the number of sub-tiles in an object tile
	SubTiles = 4
	// SubTileSize is the size in bytes of one sub-tile descriptor
	SubTileSize = 2
	// SizeOf is the size in bytes of an object tile record
	SizeOf = SubTiles * SubTileSize

	// TileWidth is the width in pixels of an object tile
	TileWidth = gfx.TileWidth * subTileSpan
	// TileHeight is the height in pixels of an object tile
	TileHeight = gfx.TileHeight * subTileSpan

	// MaxTileIndex is the highest graphics tile a sub-tile can reference
	MaxTileIndex = tileIndexMask
	// MaxPaletteRow is the highest palette row a sub-tile can select
	MaxPaletteRow = paletteMask

	subTileSpan = 2

	tileIndexMask = 0x03ff
	paletteShift  = 10
	paletteMask   = 0x07
	priorityBit   = 1 << 13
	xFlipBit      = 1 << 14
	yFlipBit      = 1 << 15
)

// ObjTile is a sub-tile descriptor.
type ObjTile uint16

// NewObjTile returns a sub-tile descriptor with the given fields.
func NewObjTile(index, paletteRow int, priority, xFlip, yFlip bool) (ObjTile, error) {
	if index < 0 || index > MaxTileIndex {
		return 0, fault.OutOfRange("obj16: graphics tile %d not in [0, %d]", index, MaxTileIndex)
	}
	if paletteRow < 0 || paletteRow > MaxPaletteRow {
		return 0, fault.OutOfRange("obj16: palette row %d not in [0, %d]", paletteRow, MaxPaletteRow)
	}
	t := ObjTile(index | paletteRow<<paletteShift)
	if priority {
		t |= priorityBit
	}
	if xFlip {
		t |= xFlipBit
	}
	if yFlip {
		t |= yFlipBit
	}
	return t, nil
}

// TileIndex returns the graphics tile referenced by t.
func (t ObjTile) TileIndex() int { return int(t & tileIndexMask) }

// PaletteRow returns the palette row selected by t.
func (t ObjTile) PaletteRow() int { return int(t>>paletteShift) & paletteMask }

func (t ObjTile) Priority() bool { return t&priorityBit != 0 }

// XFlipped reports whether the graphics tile is mirrored horizontally.
func (t ObjTile) XFlipped() bool { return t&xFlipBit != 0 }

// YFlipped reports whether the graphics tile is mirrored vertically.
func (t ObjTile) YFlipped() bool { return t&yFlipBit != 0 }

// Tile is an object tile record.
type Tile [SubTiles]ObjTile

// Offset returns the position of sub-tile j within an object tile, in
// sub-tile units.
func Offset(j int) image.Point {
	return image.Pt(j/subTileSpan, j%subTileSpan)
}

// DecodeTile decodes the record at the start of b.
func DecodeTile(b []byte) (Tile, error) {
	var t Tile
	if len(b) < SizeOf {
		return t, fault.OutOfRange("obj16: %d bytes is less than a record of %d", len(b), SizeOf)
	}
	for j := range t {
		t[j] = ObjTile(binary.LittleEndian.Uint16(b[j*SubTileSize:]))
	}
	return t, nil
}

func (t Tile) put(b []byte) {
	for j, o := range t {
		binary.LittleEndian.PutUint16(b[j*SubTileSize:], uint16(o))
	}
}

// MarshalBinary encodes t as an 8 byte record.
func (t Tile) MarshalBinary() ([]byte, error) {
	b := make([]byte, SizeOf)
	t.put(b)
	return b, nil
}

// UnmarshalBinary decodes an 8 byte record.
func (t *Tile) UnmarshalBinary(b []byte) error {
	if len(b) != SizeOf {
		return fault.Format("obj16: record is %d bytes, not %d", len(b), SizeOf)
	}
	d, err := DecodeTile(b)
	if err != nil {
		return err
	}
	*t = d
	return nil
}

// ValidData reports whether b holds a whole number of records.
func ValidData(b []byte) bool {
	return len(b)%SizeOf == 0
}

// DecodeTiles decodes every record in b.
func DecodeTiles(b []byte) ([]Tile, error) {
	if !ValidData(b) {
		return nil, fault.Format("obj16: %d bytes is not a multiple of %d", len(b), SizeOf)
	}
	tiles := make([]Tile, len(b)/SizeOf)
	for i := range tiles {
		tiles[i], _ = DecodeTile(b[i*SizeOf:])
	}
	return tiles, nil
}

// EncodeTiles encodes tiles as consecutive records.
func EncodeTiles(tiles []Tile) []byte {
	b := make([]byte, len(tiles)*SizeOf)
	for i, t := range tiles {
		t.put(b[i*SizeOf:])
	}
	return b
}
