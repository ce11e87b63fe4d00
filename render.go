package romgfx

import (
	"image"
	"image/png"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/bodgit/romgfx/fault"
	"github.com/bodgit/romgfx/gfx"
	"github.com/bodgit/romgfx/obj16"
	"github.com/bodgit/romgfx/palette"
	"github.com/bodgit/romgfx/selection"
	"github.com/bodgit/romgfx/surface"
)

// Options controls how object tile data is rendered.
type Options struct {
	Palette  palette.Palette
	Graphics *gfx.Store

	// StartAddress is the address of tile 0 in the data
	StartAddress int
	// ZeroTile is the first tile drawn
	ZeroTile int
	// ViewWidth is the number of tiles per row, obj16.DefaultViewWidth if 0
	ViewWidth int
	// ViewHeight is the number of rows, enough for every tile if 0
	ViewHeight int
	// Zoom is the pixel replication factor, 1 if 0
	Zoom int

	// Selection, if not empty, is parsed with ParseSelection and tiles
	// outside of it are dimmed
	Selection string
}

// ParseSelection parses a selection of tiles. "N" selects tile N, "A-B"
// selects tiles A to B inclusive and "X1,Y1:X2,Y2" selects a box of tiles
// in a view width tiles wide.
func ParseSelection(s string, width int) (obj16.Gate, error) {
	atoi := func(v string) (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fault.InvalidArgument("romgfx: bad selection %q", s)
		}
		return n, nil
	}
	point := func(v string) (image.Point, error) {
		xy := strings.Split(v, ",")
		if len(xy) != 2 {
			return image.Point{}, fault.InvalidArgument("romgfx: bad selection %q", s)
		}
		x, err := atoi(xy[0])
		if err != nil {
			return image.Point{}, err
		}
		y, err := atoi(xy[1])
		if err != nil {
			return image.Point{}, err
		}
		return image.Pt(x, y), nil
	}

	switch {
	case strings.Contains(s, ":"):
		corners := strings.SplitN(s, ":", 2)
		p1, err := point(corners[0])
		if err != nil {
			return nil, err
		}
		p2, err := point(corners[1])
		if err != nil {
			return nil, err
		}
		box, err := selection.NewBox2D(p1, p2)
		if err != nil {
			return nil, err
		}
		return box.Project(width)
	case strings.Contains(s, "-"):
		ends := strings.SplitN(s, "-", 2)
		a, err := atoi(ends[0])
		if err != nil {
			return nil, err
		}
		b, err := atoi(ends[1])
		if err != nil {
			return nil, err
		}
		return selection.NewLine1D(a, b)
	default:
		n, err := atoi(s)
		if err != nil {
			return nil, err
		}
		return selection.NewSingle1D(n)
	}
}

// Render draws the object tile data b into a new surface.
func (m *ROMGfx) Render(b []byte, opts Options) (*surface.Surface, error) {
	e := obj16.NewEditor()
	if err := e.InitializeData(b); err != nil {
		return nil, err
	}
	if err := e.SetStartAddress(opts.StartAddress); err != nil {
		return nil, err
	}

	tm := e.TileMap()
	width := opts.ViewWidth
	if width == 0 {
		width = obj16.DefaultViewWidth
	}
	height := opts.ViewHeight
	if height == 0 {
		height = (tm.GridSize() - opts.ZeroTile + width - 1) / width
		if height < 1 {
			height = 1
		}
	}
	zoom := opts.Zoom
	if zoom == 0 {
		zoom = 1
	}

	if err := tm.SetViewSize(image.Pt(width, height)); err != nil {
		return nil, err
	}
	if err := tm.SetZoom(image.Pt(zoom, zoom)); err != nil {
		return nil, err
	}
	if err := tm.SetZeroTile(opts.ZeroTile); err != nil {
		return nil, err
	}

	var gate obj16.Gate
	if opts.Selection != "" {
		g, err := ParseSelection(opts.Selection, width)
		if err != nil {
			return nil, err
		}
		gate = g
	}

	dst := surface.New(image.Rectangle{Max: tm.PixelSize()})
	if err := obj16.Render(dst, e.Data()[e.StartAddress():], tm, opts.Palette, opts.Graphics, gate); err != nil {
		return nil, err
	}
	return dst, nil
}

// RenderFile renders the object tile data in the file in to a PNG image in
// the file out.
func (m *ROMGfx) RenderFile(in, out string, opts Options) error {
	b, err := ioutil.ReadFile(in)
	if err != nil {
		return err
	}
	return m.renderTo(b, in, out, opts)
}

// RenderObjects renders the object tile data stored in the catalog under
// name to a PNG image in the file out.
func (m *ROMGfx) RenderObjects(name, out string, opts Options) error {
	if m.db == nil {
		return fault.InvalidArgument("romgfx: no catalog to look up %q", name)
	}
	b, err := m.db.Objects(name)
	if err != nil {
		return err
	}
	return m.renderTo(b, name, out, opts)
}

func (m *ROMGfx) renderTo(b []byte, in, out string, opts Options) error {
	dst, err := m.Render(b, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, dst); err != nil {
		return err
	}

	m.logger.Printf("Rendered \"%s\" to \"%s\"\n", in, out)

	return f.Close()
}
