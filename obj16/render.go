package obj16

import (
	"image"

	"github.com/bodgit/romgfx/fault"
	"github.com/bodgit/romgfx/gfx"
	"github.com/bodgit/romgfx/palette"
	"github.com/bodgit/romgfx/pixel"
	"github.com/bodgit/romgfx/surface"
	"github.com/bodgit/romgfx/tilemap"
)

// Gate selects the tiles drawn at full brightness. Any tile it does not
// contain is drawn with a dimmed palette.
type Gate interface {
	ContainsIndex(index int) bool
}

// MinPaletteSize returns the smallest palette that can be used to render
// with graphics of format f.
func MinPaletteSize(f gfx.Format) int {
	return f.ColorsPerPixel() * SubTiles
}

// RequiredSize returns the number of bytes needed to hold the view of tm.
func RequiredSize(tm *tilemap.TileMap) int {
	c := tm.CellSize()
	return tm.ViewArea() * c.X * c.Y * surface.BytesPerPixel
}

// Render draws the visible object tiles of data into dst. data holds
// consecutive records starting with tile 0 of tm.
//
// Each graphics tile pixel is looked up at row*rowSize + value in pal, where
// rowSize is the number of colors per pixel of store, and replicated by the
// zoom of tm. Pixels with value 0 are transparent and leave dst untouched, as
// do pixels indexing beyond the end of pal. A sub-tile referencing a graphics
// tile missing from store is blank. If gate is not nil, tiles it does not
// contain are dimmed.
//
// All arguments are validated before anything is written.
func Render(dst *surface.Surface, data []byte, tm *tilemap.TileMap, pal palette.Palette, store *gfx.Store, gate Gate) error {
	switch {
	case dst == nil || dst.Pix == nil:
		return fault.InvalidArgument("obj16: nil destination")
	case data == nil:
		return fault.InvalidArgument("obj16: nil data")
	case tm == nil:
		return fault.InvalidArgument("obj16: nil tile map")
	case pal == nil:
		return fault.InvalidArgument("obj16: nil palette")
	case store == nil:
		return fault.InvalidArgument("obj16: nil graphics")
	}

	if ts := tm.TileSize(); ts != image.Pt(TileWidth, TileHeight) {
		return fault.InvalidArgument("obj16: tile size %v is not %dx%d", ts, TileWidth, TileHeight)
	}

	rowSize := store.ColorsPerPixel()
	if minSize := MinPaletteSize(store.Format()); len(pal) < minSize {
		return fault.OutOfRange("obj16: palette of %d colors is less than %d", len(pal), minSize)
	}

	size := tm.PixelSize()
	need := RequiredSize(tm)
	if len(dst.Pix) < need {
		return fault.OutOfRange("obj16: destination of %d bytes is less than %d", len(dst.Pix), need)
	}
	if dst.Rect.Dx() < size.X || dst.Rect.Dy() < size.Y || dst.Stride < size.X*surface.BytesPerPixel ||
		len(dst.Pix) < (size.Y-1)*dst.Stride+size.X*surface.BytesPerPixel {
		return fault.OutOfRange("obj16: destination %v cannot hold %v", dst.Rect.Size(), size)
	}

	tiles := tm.TilesToRender()
	if avail := len(data)/SizeOf - tm.ZeroTile(); tiles > avail {
		tiles = avail
	}

	normal := pal.Color32s()
	dark := pal.Dimmed()

	cell := tm.CellSize()
	zoom := tm.Zoom()
	half := image.Pt(cell.X/subTileSpan, cell.Y/subTileSpan)

	for i := 0; i < tiles; i++ {
		index := tm.ZeroTile() + i

		obj, _ := DecodeTile(data[index*SizeOf:])

		colors := normal
		if gate != nil && !gate.ContainsIndex(index) {
			colors = dark
		}

		start := dst.Rect.Min.Add(image.Pt(i%tm.ViewWidth()*cell.X, i/tm.ViewWidth()*cell.Y))
		clip := image.Rectangle{Min: start, Max: start.Add(cell)}.Intersect(dst.Rect)

		for j, o := range obj {
			t, ok := store.Tile(o.TileIndex())
			if !ok {
				// Blank, every pixel is transparent
				continue
			}

			off := Offset(j)
			at := start.Add(image.Pt(off.X*half.X, off.Y*half.Y))

			drawSubTile(dst, clip, at, &t, o, colors, o.PaletteRow()*rowSize, zoom)
		}
	}

	return nil
}

func drawSubTile(dst *surface.Surface, clip image.Rectangle, at image.Point, t *gfx.Tile, o ObjTile, colors []pixel.Color32, base int, zoom image.Point) {
	// Flipping reverses the scan direction through the source tile
	sx, dx := 0, 1
	if o.XFlipped() {
		sx, dx = gfx.TileWidth-1, -1
	}
	sy, dy := 0, 1
	if o.YFlipped() {
		sy, dy = gfx.TileHeight-1, -1
	}

	for y, ty := 0, sy; y < gfx.TileHeight; y, ty = y+1, ty+dy {
		for x, tx := 0, sx; x < gfx.TileWidth; x, tx = x+1, tx+dx {
			v := int(t.At(tx, ty))
			if v == 0 || base+v >= len(colors) {
				continue
			}
			c := colors[base+v]

			px, py := at.X+x*zoom.X, at.Y+y*zoom.Y
			for n := 0; n < zoom.Y; n++ {
				for m := 0; m < zoom.X; m++ {
					if p := image.Pt(px+m, py+n); p.In(clip) {
						dst.SetColor32(p.X, p.Y, c)
					}
				}
			}
		}
	}
}
