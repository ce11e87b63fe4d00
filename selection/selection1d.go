package selection

import (
	"fmt"

	"github.com/bodgit/romgfx/fault"
)

// Selection1D is a selection over a linear tile grid. The zero value is a
// single selection of index 0.
type Selection1D struct {
	kind   Kind
	start  int
	length int
}

// NewSingle1D returns a selection of exactly one index.
func NewSingle1D(index int) (Selection1D, error) {
	if index < 0 {
		return Selection1D{}, fault.OutOfRange("selection: index %d is negative", index)
	}
	return Selection1D{kind: Single, start: index}, nil
}

// NewLine1D returns the contiguous run between two inclusive endpoints given
// in either order.
func NewLine1D(index1, index2 int) (Selection1D, error) {
	if index1 < 0 {
		return Selection1D{}, fault.OutOfRange("selection: index %d is negative", index1)
	}
	if index2 < 0 {
		return Selection1D{}, fault.OutOfRange("selection: index %d is negative", index2)
	}
	lo, hi := min(index1, index2), max(index1, index2)
	return Selection1D{kind: Line, start: lo, length: hi - lo + 1}, nil
}

// NewRun1D returns a line selection of length indices beginning at start.
func NewRun1D(start, length int) (Selection1D, error) {
	if length <= 0 {
		return Selection1D{}, fault.InvalidArgument("selection: length %d is not positive", length)
	}
	return NewLine1D(start, start+length-1)
}

func (s Selection1D) Kind() Kind { return s.kind }

func (s Selection1D) Start() int { return s.start }

// End returns the highest selected index.
func (s Selection1D) End() int { return s.start + s.Size() - 1 }

// Size returns the number of selected indices.
func (s Selection1D) Size() int {
	if s.kind == Line {
		return s.length
	}
	return 1
}

// ContainsIndex reports whether index is selected.
func (s Selection1D) ContainsIndex(index int) bool {
	index -= s.start
	return index >= 0 && index < s.Size()
}

// IterateIndexes calls fn once for every selected index in ascending order.
func (s Selection1D) IterateIndexes(fn func(index int)) error {
	if fn == nil {
		return errNilVisitor()
	}
	for i, n := s.start, s.start+s.Size(); i < n; i++ {
		fn(i)
	}
	return nil
}

// Indexes returns every selected index in ascending order.
func (s Selection1D) Indexes() []int {
	indexes := make([]int, s.Size())
	for i := range indexes {
		indexes[i] = s.start + i
	}
	return indexes
}

// Copy returns a selection of the same shape and size starting at start.
func (s Selection1D) Copy(start int) (Selection1D, error) {
	if start < 0 {
		return Selection1D{}, fault.OutOfRange("selection: index %d is negative", start)
	}
	s.start = start
	return s, nil
}

func (s Selection1D) String() string {
	if s.kind == Line {
		return fmt.Sprintf("%s[%d-%d]", s.kind, s.start, s.End())
	}
	return fmt.Sprintf("%s[%d]", s.kind, s.start)
}
