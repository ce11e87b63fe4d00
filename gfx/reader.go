package gfx

import (
	"errors"
	"io"

	"github.com/bodgit/romgfx/fault"
)

var errNotEnough = errors.New("gfx: not enough tile data")

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

func (f Format) decodeTile(b []byte, t *Tile) {
	for y := 0; y < TileHeight; y++ {
		for p := 0; p < f.BitsPerPixel(); p++ {
			plane := b[f.offset(p, y)]
			for x := 0; x < TileWidth; x++ {
				t[y*TileWidth+x] |= (plane >> uint(TileWidth-1-x) & 1) << uint(p)
			}
		}
	}
}

// Decode returns the tiles encoded in b. The length of b must be a multiple
// of the tile size of f.
func Decode(b []byte, f Format) (*Store, error) {
	if !f.Valid() {
		return nil, fault.InvalidArgument("gfx: unknown format %d", int(f))
	}
	size := f.BytesPerTile()
	if len(b)%size != 0 {
		return nil, fault.Format("gfx: %d bytes is not a multiple of %d", len(b), size)
	}

	s := &Store{
		format: f,
		tiles:  make([]Tile, len(b)/size),
	}
	for i := range s.tiles {
		f.decodeTile(b[i*size:], &s.tiles[i])
	}
	return s, nil
}

// Read decodes tiles from r until EOF.
func Read(r io.Reader, f Format) (*Store, error) {
	if !f.Valid() {
		return nil, fault.InvalidArgument("gfx: unknown format %d", int(f))
	}

	s := &Store{format: f}
	tmp := make([]byte, f.BytesPerTile())
	for {
		n, err := r.Read(tmp[:1])
		if n == 0 {
			if err == io.EOF {
				return s, nil
			}
			if err != nil {
				return nil, err
			}
			continue
		}
		if err := readFull(r, tmp[1:]); err != nil {
			if err != io.ErrUnexpectedEOF {
				return nil, err
			}
			return nil, errNotEnough
		}

		var t Tile
		f.decodeTile(tmp, &t)
		s.tiles = append(s.tiles, t)
	}
}
