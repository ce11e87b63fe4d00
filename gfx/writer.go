package gfx

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/bodgit/romgfx/fault"
	"github.com/ericpauley/go-quantize/quantize"
)

func (f Format) encodeTile(t *Tile, b []byte) {
	for y := 0; y < TileHeight; y++ {
		for p := 0; p < f.BitsPerPixel(); p++ {
			var plane byte
			for x := 0; x < TileWidth; x++ {
				plane = plane<<1 | t[y*TileWidth+x]>>uint(p)&1
			}
			b[f.offset(p, y)] = plane
		}
	}
}

// MarshalBinary encodes the store in its bitplane format.
func (s *Store) MarshalBinary() ([]byte, error) {
	size := s.format.BytesPerTile()
	b := make([]byte, len(s.tiles)*size)
	for i := range s.tiles {
		s.format.encodeTile(&s.tiles[i], b[i*size:])
	}
	return b, nil
}

// Pad palette to a multiple of n colors
func padPalette(p color.Palette, n int) color.Palette {
	p = append(color.Palette(nil), p...)
	if len(p) == 0 {
		p = append(p, color.RGBA{0, 0, 0, 0})
	}
	for len(p)%n != 0 || len(p) < n {
		p = append(p, color.RGBA{0, 0, 0, 0})
	}
	return p
}

// Image draws the store as a sheet of tiles, columns tiles wide, using the
// first row of p.
func (s *Store) Image(p color.Palette, columns int) (*image.Paletted, error) {
	if columns <= 0 {
		return nil, fault.InvalidArgument("gfx: %d columns is not positive", columns)
	}
	rows := (len(s.tiles) + columns - 1) / columns
	m := image.NewPaletted(image.Rect(0, 0, columns*TileWidth, rows*TileHeight), padPalette(p, s.ColorsPerPixel()))

	for i := range s.tiles {
		tx, ty := i%columns, i/columns
		for y := 0; y < TileHeight; y++ {
			for x := 0; x < TileWidth; x++ {
				m.SetColorIndex(tx*TileWidth+x, ty*TileHeight+y, s.tiles[i].At(x, y))
			}
		}
	}
	return m, nil
}

// FromImage cuts m into tiles in row-major order. The bounds of m must be a
// multiple of the tile size. An image that is not paletted, or has more
// colors than f allows, is quantized first.
func FromImage(m image.Image, f Format) (*Store, error) {
	if !f.Valid() {
		return nil, fault.InvalidArgument("gfx: unknown format %d", int(f))
	}
	b := m.Bounds()
	if b.Dx()%TileWidth != 0 || b.Dy()%TileHeight != 0 {
		return nil, fault.Format("gfx: image size %v is not a multiple of the tile size", b.Size())
	}

	pm, _ := m.(*image.Paletted)
	if pm == nil || len(pm.Palette) > f.ColorsPerPixel() {
		q := quantize.MedianCutQuantizer{}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, f.ColorsPerPixel()), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	tileX, tileY := b.Dx()/TileWidth, b.Dy()/TileHeight
	s := &Store{
		format: f,
		tiles:  make([]Tile, tileX*tileY),
	}
	for ty := 0; ty < tileY; ty++ {
		for tx := 0; tx < tileX; tx++ {
			t := &s.tiles[ty*tileX+tx]
			for y := 0; y < TileHeight; y++ {
				for x := 0; x < TileWidth; x++ {
					t.Set(x, y, pm.ColorIndexAt(b.Min.X+tx*TileWidth+x, b.Min.Y+ty*TileHeight+y))
				}
			}
		}
	}
	return s, nil
}
