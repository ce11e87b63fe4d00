/*
Package selection describes sets of tile indices over 1-D and 2-D tile grids.

A selection is an immutable value of one of a closed set of shapes. Consumers
only rely on Size, ContainsIndex and IterateIndexes so new shapes can be added
without changing them. Copy relocates a selection while keeping its shape.
*/
package selection

import (
	"fmt"

	"github.com/bodgit/romgfx/fault"
)

// Kind identifies the shape of a selection.
type Kind int

// The supported selection shapes.
const (
	Single Kind = iota
	Line
	Box
)

func (k Kind) String() string {
	switch k {
	case Single:
		return "single"
	case Line:
		return "line"
	case Box:
		return "box"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func errNilVisitor() error {
	return fault.InvalidArgument("selection: nil visitor")
}
