/*
Package tilemap implements the geometry of a scrolling view over a linear
sequence of tiles.

Tiles are laid out left to right, top to bottom in rows of ViewSize.X tiles
beginning at the zero tile, the first tile scrolled into view. A cell is the
on-screen size of one tile after zooming.
*/
package tilemap

import (
	"image"

	"github.com/bodgit/romgfx/fault"
)

// TileMap is the geometry of a tile view. The grid size is the total number
// of tiles backing the view and is the only source of truth for bounds.
type TileMap struct {
	tileSize image.Point
	viewSize image.Point
	zoom     image.Point

	gridSize int
	zeroTile int
}

func positive(name string, p image.Point) error {
	if p.X <= 0 || p.Y <= 0 {
		return fault.InvalidArgument("tilemap: %s %v is not positive", name, p)
	}
	return nil
}

// New returns an empty tile map. Each of tileSize, viewSize and zoom must be
// strictly positive in both dimensions.
func New(tileSize, viewSize, zoom image.Point) (*TileMap, error) {
	for _, v := range []struct {
		name string
		p    image.Point
	}{
		{"tile size", tileSize},
		{"view size", viewSize},
		{"zoom", zoom},
	} {
		if err := positive(v.name, v.p); err != nil {
			return nil, err
		}
	}
	return &TileMap{
		tileSize: tileSize,
		viewSize: viewSize,
		zoom:     zoom,
	}, nil
}

func (t *TileMap) TileSize() image.Point { return t.tileSize }

func (t *TileMap) ViewSize() image.Point { return t.viewSize }

func (t *TileMap) ViewWidth() int { return t.viewSize.X }

func (t *TileMap) ViewHeight() int { return t.viewSize.Y }

// ViewArea returns the number of tiles visible at once.
func (t *TileMap) ViewArea() int { return t.viewSize.X * t.viewSize.Y }

func (t *TileMap) Zoom() image.Point { return t.zoom }

// CellSize returns the on-screen size of a tile.
func (t *TileMap) CellSize() image.Point {
	return image.Pt(t.tileSize.X*t.zoom.X, t.tileSize.Y*t.zoom.Y)
}

// PixelSize returns the on-screen size of the whole view.
func (t *TileMap) PixelSize() image.Point {
	c := t.CellSize()
	return image.Pt(c.X*t.viewSize.X, c.Y*t.viewSize.Y)
}

// SetViewSize changes the number of visible tiles.
func (t *TileMap) SetViewSize(viewSize image.Point) error {
	if err := positive("view size", viewSize); err != nil {
		return err
	}
	t.viewSize = viewSize
	return nil
}

// SetZoom changes the pixel replication factor.
func (t *TileMap) SetZoom(zoom image.Point) error {
	if err := positive("zoom", zoom); err != nil {
		return err
	}
	t.zoom = zoom
	return nil
}

func (t *TileMap) GridSize() int { return t.gridSize }

// SetGridSize changes the number of tiles backing the view. The zero tile is
// pulled back if it no longer falls inside the grid.
func (t *TileMap) SetGridSize(n int) error {
	if n < 0 {
		return fault.OutOfRange("tilemap: grid size %d is negative", n)
	}
	t.gridSize = n
	if t.zeroTile > t.lastTile() {
		t.zeroTile = t.lastTile()
	}
	return nil
}

// SetDataLength recomputes the grid size from the length of the backing data
// and the size of a single record.
func (t *TileMap) SetDataLength(length, recordSize int) error {
	if recordSize <= 0 {
		return fault.InvalidArgument("tilemap: record size %d is not positive", recordSize)
	}
	if length < 0 {
		return fault.OutOfRange("tilemap: data length %d is negative", length)
	}
	return t.SetGridSize(length / recordSize)
}

func (t *TileMap) lastTile() int {
	if t.gridSize == 0 {
		return 0
	}
	return t.gridSize - 1
}

// ZeroTile returns the index of the first visible tile.
func (t *TileMap) ZeroTile() int { return t.zeroTile }

// SetZeroTile scrolls the view so index is the first visible tile.
func (t *TileMap) SetZeroTile(index int) error {
	if index < 0 || index > t.lastTile() {
		return fault.OutOfRange("tilemap: zero tile %d not in [0, %d]", index, t.lastTile())
	}
	t.zeroTile = index
	return nil
}

// Scroll moves the zero tile by delta tiles, stopping at either end of the
// grid, and returns the new zero tile.
func (t *TileMap) Scroll(delta int) int {
	z := t.zeroTile + delta
	switch {
	case z < 0:
		z = 0
	case z > t.lastTile():
		z = t.lastTile()
	}
	t.zeroTile = z
	return z
}

// TilesToRender returns the number of tiles that are both visible and backed
// by data.
func (t *TileMap) TilesToRender() int {
	n := t.gridSize - t.zeroTile
	if a := t.ViewArea(); n > a {
		n = a
	}
	if n < 0 {
		return 0
	}
	return n
}

// IndexToView returns the column and row of the tile at index relative to
// the zero tile. The boolean is false if the tile is not in view.
func (t *TileMap) IndexToView(index int) (image.Point, bool) {
	i := index - t.zeroTile
	if i < 0 || i >= t.ViewArea() || index >= t.gridSize {
		return image.Point{}, false
	}
	return image.Pt(i%t.viewSize.X, i/t.viewSize.X), true
}

// ViewToIndex returns the tile index shown at the given column and row.
func (t *TileMap) ViewToIndex(p image.Point) int {
	return t.zeroTile + p.Y*t.viewSize.X + p.X
}

// PixelToIndex returns the tile index under the pixel p of the view. The
// boolean is false if p is outside the view or past the end of the grid.
func (t *TileMap) PixelToIndex(p image.Point) (int, bool) {
	if !p.In(image.Rectangle{Max: t.PixelSize()}) {
		return 0, false
	}
	c := t.CellSize()
	index := t.ViewToIndex(image.Pt(p.X/c.X, p.Y/c.Y))
	return index, index < t.gridSize
}

// AddressToIndex converts an address in the data to the index of the record
// containing it.
func AddressToIndex(address, startAddress, recordSize int) int {
	return (address - startAddress) / recordSize
}

// IndexToAddress converts a record index to its address in the data.
func IndexToAddress(index, startAddress, recordSize int) int {
	return index*recordSize + startAddress
}
