package obj16

import (
	"image"

	"github.com/bodgit/romgfx/fault"
	"github.com/bodgit/romgfx/gfx"
	"github.com/bodgit/romgfx/palette"
	"github.com/bodgit/romgfx/selection"
	"github.com/bodgit/romgfx/surface"
	"github.com/bodgit/romgfx/tilemap"
)

const (
	// DefaultViewWidth is the number of tiles per row of a new editor
	DefaultViewWidth = 16
	// DefaultViewHeight is the number of visible rows of a new editor
	DefaultViewHeight = 16
)

// Selection is a set of object tiles chosen while the data was viewed from
// StartAddress.
type Selection struct {
	StartAddress int
	Tiles        selection.Selection1D
}

// Editor holds a buffer of object tile records and the view over it.
//
// Changing the data, the start address or the tile map does not redraw
// anything; call Render again afterwards.
type Editor struct {
	data         []byte
	startAddress int
	tileMap      *tilemap.TileMap
	selection    Selection
}

// NewEditor returns an editor with no data.
func NewEditor() *Editor {
	tm, _ := tilemap.New(image.Pt(TileWidth, TileHeight), image.Pt(DefaultViewWidth, DefaultViewHeight), image.Pt(1, 1))
	e := &Editor{
		data:    []byte{},
		tileMap: tm,
	}
	e.reset()
	return e
}

// Recompute the grid after the data or start address has changed and drop
// any selection that may no longer fit
func (e *Editor) reset() {
	_ = e.tileMap.SetDataLength(len(e.data)-e.startAddress, SizeOf)
	single, _ := selection.NewSingle1D(e.tileMap.ZeroTile())
	e.selection = Selection{
		StartAddress: e.startAddress,
		Tiles:        single,
	}
}

// InitializeTiles replaces the data with n blank records.
func (e *Editor) InitializeTiles(n int) error {
	if n < 0 {
		return fault.OutOfRange("obj16: %d tiles is negative", n)
	}
	e.data = make([]byte, n*SizeOf)
	e.startAddress = 0
	e.reset()
	return nil
}

// InitializeData replaces the data with a copy of b.
func (e *Editor) InitializeData(b []byte) error {
	if b == nil {
		return fault.InvalidArgument("obj16: nil data")
	}
	if !ValidData(b) {
		return fault.Format("obj16: %d bytes is not a multiple of %d", len(b), SizeOf)
	}
	e.data = append(make([]byte, 0, len(b)), b...)
	e.startAddress = 0
	e.reset()
	return nil
}

// InitializeFromTiles replaces the data with tiles.
func (e *Editor) InitializeFromTiles(tiles []Tile) error {
	if tiles == nil {
		return fault.InvalidArgument("obj16: nil tiles")
	}
	e.data = EncodeTiles(tiles)
	e.startAddress = 0
	e.reset()
	return nil
}

func (e *Editor) Data() []byte { return e.data }

// Tiles decodes every record from the start address onwards.
func (e *Editor) Tiles() []Tile {
	n := e.tileMap.GridSize() * SizeOf
	tiles, _ := DecodeTiles(e.data[e.startAddress : e.startAddress+n])
	return tiles
}

func (e *Editor) TileMap() *tilemap.TileMap { return e.tileMap }

func (e *Editor) StartAddress() int { return e.startAddress }

// SetStartAddress moves tile 0 to address.
func (e *Editor) SetStartAddress(address int) error {
	if address < 0 || address > len(e.data) {
		return fault.OutOfRange("obj16: start address %d not in [0, %d]", address, len(e.data))
	}
	if address == e.startAddress {
		return nil
	}
	e.startAddress = address
	e.reset()
	return nil
}

// AddressFromIndex returns the address of tile index.
func (e *Editor) AddressFromIndex(index int) int {
	return tilemap.IndexToAddress(index, e.startAddress, SizeOf)
}

// IndexFromAddress returns the tile containing address.
func (e *Editor) IndexFromAddress(address int) int {
	return tilemap.AddressToIndex(address, e.startAddress, SizeOf)
}

// TileAt decodes the record at address.
func (e *Editor) TileAt(address int) (Tile, error) {
	if address < 0 {
		return Tile{}, fault.OutOfRange("obj16: address %d is negative", address)
	}
	if last := len(e.data) - SizeOf; address > last {
		return Tile{}, fault.OutOfRange("obj16: address %d is greater than %d", address, last)
	}
	return DecodeTile(e.data[address:])
}

func (e *Editor) Selection() Selection { return e.selection }

// Select makes s the current selection at the current start address.
func (e *Editor) Select(s selection.Selection1D) error {
	if end := s.End(); end >= e.tileMap.GridSize() {
		return fault.OutOfRange("obj16: selection %v exceeds %d tiles", s, e.tileMap.GridSize())
	}
	e.selection = Selection{
		StartAddress: e.startAddress,
		Tiles:        s,
	}
	return nil
}

// SetSelection restores a selection made earlier, possibly at another start
// address. It is checked against the data only when it is used.
func (e *Editor) SetSelection(s Selection) {
	e.selection = s
}

// SelectAll selects every tile.
func (e *Editor) SelectAll() error {
	s, err := selection.NewLine1D(0, e.tileMap.GridSize()-1)
	if err != nil {
		return err
	}
	return e.Select(s)
}

// Collect the addresses covered by s, failing if any lies outside the data
func (e *Editor) addresses(s Selection) ([]int, error) {
	addresses := make([]int, 0, s.Tiles.Size())
	var err error
	if verr := s.Tiles.IterateIndexes(func(index int) {
		address := tilemap.IndexToAddress(index, s.StartAddress, SizeOf)
		if err == nil && (address < 0 || address+SizeOf > len(e.data)) {
			err = fault.OutOfRange("obj16: tile %d at address %d is outside the data", index, address)
		}
		addresses = append(addresses, address)
	}); verr != nil {
		return nil, verr
	}
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

// SelectionTiles decodes the tiles covered by s.
func (e *Editor) SelectionTiles(s Selection) ([]Tile, error) {
	addresses, err := e.addresses(s)
	if err != nil {
		return nil, err
	}
	tiles := make([]Tile, len(addresses))
	for i, address := range addresses {
		tiles[i], _ = DecodeTile(e.data[address:])
	}
	return tiles, nil
}

// WriteTiles replaces the tiles covered by s, in index order, with tiles.
// Nothing is written unless every tile fits.
func (e *Editor) WriteTiles(s Selection, tiles []Tile) error {
	if len(tiles) != s.Tiles.Size() {
		return fault.InvalidArgument("obj16: %d tiles for a selection of %d", len(tiles), s.Tiles.Size())
	}
	addresses, err := e.addresses(s)
	if err != nil {
		return err
	}
	for i, address := range addresses {
		tiles[i].put(e.data[address:])
	}
	return nil
}

// EditTile replaces the single tile selected by s with t.
func (e *Editor) EditTile(s Selection, t Tile) error {
	if s.Tiles.Kind() != selection.Single {
		return fault.InvalidArgument("obj16: %s selection is not a single selection", s.Tiles.Kind())
	}
	return e.WriteTiles(s, []Tile{t})
}

// Delete blanks every tile covered by s.
func (e *Editor) Delete(s Selection) error {
	return e.WriteTiles(s, make([]Tile, s.Tiles.Size()))
}

// Render draws the visible tiles into dst. The current selection gates the
// rendering only if it was made at the current start address.
func (e *Editor) Render(dst *surface.Surface, pal palette.Palette, store *gfx.Store) error {
	var gate Gate
	if e.selection.StartAddress == e.startAddress {
		gate = e.selection.Tiles
	}
	return Render(dst, e.data[e.startAddress:], e.tileMap, pal, store, gate)
}
