package obj16

import (
	"errors"
	"image"
	"testing"

	"github.com/bodgit/romgfx/fault"
	"github.com/bodgit/romgfx/selection"
	"github.com/bodgit/romgfx/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(t *testing.T, a, b int) selection.Selection1D {
	s, err := selection.NewLine1D(a, b)
	require.NoError(t, err)
	return s
}

func single(t *testing.T, i int) selection.Selection1D {
	s, err := selection.NewSingle1D(i)
	require.NoError(t, err)
	return s
}

func TestNewEditor(t *testing.T) {
	e := NewEditor()
	assert.Empty(t, e.Data())
	assert.Empty(t, e.Tiles())
	assert.Equal(t, 0, e.TileMap().GridSize())
	assert.Equal(t, image.Pt(DefaultViewWidth, DefaultViewHeight), e.TileMap().ViewSize())
	assert.Equal(t, image.Pt(TileWidth, TileHeight), e.TileMap().TileSize())
}

func TestEditorInitialize(t *testing.T) {
	e := NewEditor()

	require.NoError(t, e.InitializeTiles(4))
	assert.Len(t, e.Data(), 4*SizeOf)
	assert.Equal(t, 4, e.TileMap().GridSize())
	assert.True(t, errors.Is(e.InitializeTiles(-1), fault.ErrOutOfRange))

	b := EncodeTiles([]Tile{{1, 2, 3, 4}, {5, 6, 7, 8}})
	require.NoError(t, e.InitializeData(b))
	assert.Equal(t, 2, e.TileMap().GridSize())
	assert.Equal(t, []Tile{{1, 2, 3, 4}, {5, 6, 7, 8}}, e.Tiles())

	// The editor holds its own copy
	b[0] = 0xff
	assert.Equal(t, byte(1), e.Data()[0])

	assert.True(t, errors.Is(e.InitializeData(nil), fault.ErrInvalidArgument))
	assert.True(t, errors.Is(e.InitializeData(make([]byte, 9)), fault.ErrFormat))
	assert.True(t, errors.Is(e.InitializeFromTiles(nil), fault.ErrInvalidArgument))

	require.NoError(t, e.InitializeFromTiles([]Tile{{9}}))
	assert.Equal(t, []Tile{{9}}, e.Tiles())
	assert.Equal(t, 1, e.TileMap().GridSize())
}

func TestEditorStartAddress(t *testing.T) {
	e := NewEditor()
	require.NoError(t, e.InitializeFromTiles([]Tile{{1}, {2}, {3}, {4}}))

	require.NoError(t, e.SetStartAddress(SizeOf))
	assert.Equal(t, SizeOf, e.StartAddress())
	assert.Equal(t, 3, e.TileMap().GridSize())
	assert.Equal(t, []Tile{{2}, {3}, {4}}, e.Tiles())

	assert.Equal(t, 2*SizeOf, e.AddressFromIndex(1))
	assert.Equal(t, 1, e.IndexFromAddress(2*SizeOf))
	assert.Equal(t, 1, e.IndexFromAddress(2*SizeOf+3))

	// The selection follows the new start address
	assert.Equal(t, Selection{StartAddress: SizeOf, Tiles: single(t, 0)}, e.Selection())

	// Part way into a record
	require.NoError(t, e.SetStartAddress(SizeOf+2))
	assert.Equal(t, 2, e.TileMap().GridSize())

	assert.True(t, errors.Is(e.SetStartAddress(-1), fault.ErrOutOfRange))
	assert.True(t, errors.Is(e.SetStartAddress(4*SizeOf+1), fault.ErrOutOfRange))

	require.NoError(t, e.SetStartAddress(4*SizeOf))
	assert.Equal(t, 0, e.TileMap().GridSize())
	assert.Empty(t, e.Tiles())
}

func TestEditorTileAt(t *testing.T) {
	e := NewEditor()
	require.NoError(t, e.InitializeFromTiles([]Tile{{1}, {2}, {3}, {4}}))

	tile, err := e.TileAt(3 * SizeOf)
	require.NoError(t, err)
	assert.Equal(t, Tile{4}, tile)

	tile, err = e.TileAt(2)
	require.NoError(t, err)
	assert.Equal(t, Tile{0, 0, 0, 2}, tile)

	_, err = e.TileAt(-1)
	assert.True(t, errors.Is(err, fault.ErrOutOfRange))
	_, err = e.TileAt(3*SizeOf + 1)
	assert.True(t, errors.Is(err, fault.ErrOutOfRange))
}

func TestEditorSelect(t *testing.T) {
	e := NewEditor()
	require.NoError(t, e.InitializeTiles(4))
	assert.Equal(t, Selection{Tiles: single(t, 0)}, e.Selection())

	require.NoError(t, e.Select(line(t, 1, 2)))
	assert.Equal(t, Selection{Tiles: line(t, 1, 2)}, e.Selection())

	assert.True(t, errors.Is(e.Select(line(t, 2, 4)), fault.ErrOutOfRange))
	assert.Equal(t, Selection{Tiles: line(t, 1, 2)}, e.Selection())

	require.NoError(t, e.SelectAll())
	assert.Equal(t, 4, e.Selection().Tiles.Size())

	require.NoError(t, e.InitializeTiles(0))
	assert.Error(t, e.SelectAll())
}

func TestEditorWriteTiles(t *testing.T) {
	e := NewEditor()
	require.NoError(t, e.InitializeFromTiles([]Tile{{1}, {2}, {3}, {4}}))

	s := Selection{Tiles: line(t, 2, 1)}
	tiles, err := e.SelectionTiles(s)
	require.NoError(t, err)
	assert.Equal(t, []Tile{{2}, {3}}, tiles)

	require.NoError(t, e.WriteTiles(s, []Tile{{7}, {8}}))
	assert.Equal(t, []Tile{{1}, {7}, {8}, {4}}, e.Tiles())

	assert.True(t, errors.Is(e.WriteTiles(s, []Tile{{9}}), fault.ErrInvalidArgument))

	// A selection made from another start address still names the same
	// records
	require.NoError(t, e.SetStartAddress(SizeOf))
	require.NoError(t, e.WriteTiles(Selection{Tiles: single(t, 3)}, []Tile{{6}}))
	assert.Equal(t, []Tile{{7}, {8}, {6}}, e.Tiles())

	// Nothing is written if any tile is outside the data
	before := append([]byte{}, e.Data()...)
	err = e.WriteTiles(Selection{StartAddress: 2 * SizeOf, Tiles: line(t, 1, 2)}, []Tile{{5}, {5}})
	assert.True(t, errors.Is(err, fault.ErrOutOfRange))
	assert.Equal(t, before, e.Data())

	_, err = e.SelectionTiles(Selection{StartAddress: -SizeOf, Tiles: single(t, 0)})
	assert.True(t, errors.Is(err, fault.ErrOutOfRange))
}

func TestEditorEditTile(t *testing.T) {
	e := NewEditor()
	require.NoError(t, e.InitializeTiles(2))

	require.NoError(t, e.EditTile(Selection{Tiles: single(t, 1)}, Tile{1, 2, 3, 4}))
	assert.Equal(t, []Tile{{}, {1, 2, 3, 4}}, e.Tiles())

	err := e.EditTile(Selection{Tiles: line(t, 0, 1)}, Tile{})
	assert.True(t, errors.Is(err, fault.ErrInvalidArgument))

	require.NoError(t, e.Delete(Selection{Tiles: line(t, 0, 1)}))
	assert.Equal(t, []Tile{{}, {}}, e.Tiles())
}

func TestEditorRender(t *testing.T) {
	e := NewEditor()
	require.NoError(t, e.InitializeTiles(2))
	require.NoError(t, e.TileMap().SetViewSize(image.Pt(2, 1)))
	pal := testPalette()
	store := testStore(t)

	// Only the default selection of tile 0 is drawn at full brightness
	dst := surface.New(image.Rect(0, 0, 32, 16))
	require.NoError(t, e.Render(dst, pal, store))
	assert.Equal(t, pal[1].To32(), dst.Color32At(0, 0))
	assert.Equal(t, pal[1].To32().Dim(), dst.Color32At(16, 0))

	require.NoError(t, e.SelectAll())
	require.NoError(t, e.Render(dst, pal, store))
	assert.Equal(t, pal[1].To32(), dst.Color32At(16, 0))

	require.NoError(t, e.SetStartAddress(SizeOf))
	dst = surface.New(image.Rect(0, 0, 32, 16))
	require.NoError(t, e.Render(dst, pal, store))
	assert.Equal(t, pal[1].To32(), dst.Color32At(0, 0))
	assert.Equal(t, uint32(0), uint32(dst.Color32At(16, 0)))
}

func TestEditorRenderOtherStartAddress(t *testing.T) {
	e := NewEditor()
	require.NoError(t, e.InitializeTiles(3))
	require.NoError(t, e.TileMap().SetViewSize(image.Pt(2, 1)))
	pal := testPalette()
	store := testStore(t)

	require.NoError(t, e.Select(single(t, 0)))
	s := e.Selection()

	require.NoError(t, e.SetStartAddress(SizeOf))
	e.SetSelection(s)
	assert.Equal(t, s, e.Selection())

	// A selection made at another start address does not dim anything
	dst := surface.New(image.Rect(0, 0, 32, 16))
	require.NoError(t, e.Render(dst, pal, store))
	assert.Equal(t, pal[1].To32(), dst.Color32At(0, 0))
	assert.Equal(t, pal[1].To32(), dst.Color32At(16, 0))

	// It still names the records it was made over
	require.NoError(t, e.EditTile(s, Tile{1}))
	tile, err := e.TileAt(0)
	require.NoError(t, err)
	assert.Equal(t, Tile{1}, tile)

	e.SetSelection(Selection{StartAddress: SizeOf, Tiles: single(t, 1)})
	require.NoError(t, e.Render(dst, pal, store))
	assert.Equal(t, pal[1].To32().Dim(), dst.Color32At(0, 0))
	assert.Equal(t, pal[1].To32(), dst.Color32At(16, 0))
}
