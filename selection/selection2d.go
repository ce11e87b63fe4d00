package selection

import (
	"fmt"
	"image"

	"github.com/bodgit/romgfx/fault"
)

// Selection2D is a selection over a two dimensional tile grid. The zero value
// is a single selection of the origin.
type Selection2D struct {
	kind   Kind
	start  image.Point
	extent image.Point
}

func checkPoint(p image.Point) error {
	if p.X < 0 || p.Y < 0 {
		return fault.OutOfRange("selection: position %v is negative", p)
	}
	return nil
}

// NewSingle2D returns a selection of exactly one position.
func NewSingle2D(p image.Point) (Selection2D, error) {
	if err := checkPoint(p); err != nil {
		return Selection2D{}, err
	}
	return Selection2D{kind: Single, start: p}, nil
}

// NewBox2D returns the rectangle with p1 and p2 as inclusive opposite corners.
// The corners may be given in any order.
func NewBox2D(p1, p2 image.Point) (Selection2D, error) {
	if err := checkPoint(p1); err != nil {
		return Selection2D{}, err
	}
	if err := checkPoint(p2); err != nil {
		return Selection2D{}, err
	}
	topLeft := image.Pt(min(p1.X, p2.X), min(p1.Y, p2.Y))
	bottomRight := image.Pt(max(p1.X, p2.X), max(p1.Y, p2.Y))
	return Selection2D{
		kind:   Box,
		start:  topLeft,
		extent: bottomRight.Sub(topLeft).Add(image.Pt(1, 1)),
	}, nil
}

// NewBox2DExtent returns the rectangle of the given extent with its top-left
// corner at start.
func NewBox2DExtent(start, extent image.Point) (Selection2D, error) {
	if err := checkPoint(start); err != nil {
		return Selection2D{}, err
	}
	if extent.X <= 0 || extent.Y <= 0 {
		return Selection2D{}, fault.InvalidArgument("selection: extent %v is not positive", extent)
	}
	return Selection2D{kind: Box, start: start, extent: extent}, nil
}

func (s Selection2D) Kind() Kind { return s.kind }

func (s Selection2D) Start() image.Point { return s.start }

// Extent returns the width and height of the bounding rectangle of s.
func (s Selection2D) Extent() image.Point {
	if s.kind == Box {
		return s.extent
	}
	return image.Pt(1, 1)
}

// Bounds returns the rectangle covered by s.
func (s Selection2D) Bounds() image.Rectangle {
	return image.Rectangle{Min: s.start, Max: s.start.Add(s.Extent())}
}

// Size returns the number of selected positions.
func (s Selection2D) Size() int {
	e := s.Extent()
	return e.X * e.Y
}

// ContainsIndex reports whether p is selected.
func (s Selection2D) ContainsIndex(p image.Point) bool {
	return p.In(s.Bounds())
}

// IterateIndexes calls fn once for every selected position in row-major
// order.
func (s Selection2D) IterateIndexes(fn func(p image.Point)) error {
	if fn == nil {
		return errNilVisitor()
	}
	r := s.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			fn(image.Pt(x, y))
		}
	}
	return nil
}

// Indexes returns every selected position in row-major order.
func (s Selection2D) Indexes() []image.Point {
	indexes := make([]image.Point, 0, s.Size())
	_ = s.IterateIndexes(func(p image.Point) {
		indexes = append(indexes, p)
	})
	return indexes
}

// Copy returns a selection of the same shape and size with its top-left
// corner at start.
func (s Selection2D) Copy(start image.Point) (Selection2D, error) {
	if err := checkPoint(start); err != nil {
		return Selection2D{}, err
	}
	s.start = start
	return s, nil
}

// Project returns a view of s over a linear grid laid out in rows of width
// tiles.
func (s Selection2D) Project(width int) (Projection, error) {
	if width <= 0 {
		return Projection{}, fault.InvalidArgument("selection: width %d is not positive", width)
	}
	return Projection{Selection: s, Width: width}, nil
}

func (s Selection2D) String() string {
	if s.kind == Box {
		return fmt.Sprintf("%s%v", s.kind, s.Bounds())
	}
	return fmt.Sprintf("%s%v", s.kind, s.start)
}

// Projection maps linear indices onto a Selection2D using a fixed row width.
type Projection struct {
	Selection Selection2D
	Width     int
}

// ContainsIndex reports whether the linear index falls inside the selection.
func (p Projection) ContainsIndex(index int) bool {
	if index < 0 || p.Width <= 0 {
		return false
	}
	return p.Selection.ContainsIndex(image.Pt(index%p.Width, index/p.Width))
}
