package workspace

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jask/jaskterm/internal/panel"
)

var ErrUnknownLayout = errors.New("unknown layout")

// Layout is one of the four grid arrangements. Grid positions are fixed:
// 0 top-left, 1 top-right, 2 bottom-left, 3 bottom-right, and position i
// always holds panel i+1. A layout only chooses which positions show.
type Layout string

const (
	Single  Layout = "1x1"
	Columns Layout = "2x1"
	Rows    Layout = "1x2"
	Grid    Layout = "2x2"
)

var visiblePositions = map[Layout][]int{
	Single:  {0},
	Columns: {0, 1},
	Rows:    {0, 2},
	Grid:    {0, 1, 2, 3},
}

// Layouts lists the presets in shortcut order.
func Layouts() []Layout {
	return []Layout{Single, Columns, Rows, Grid}
}

// ParseLayout accepts "2x2", "2X2" and "2×2".
func ParseLayout(s string) (Layout, error) {
	l := Layout(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "×", "x"))
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownLayout, s)
	}
	return l, nil
}

func (l Layout) Valid() bool {
	_, ok := visiblePositions[l]
	return ok
}

// Positions returns the visible grid positions in order.
func (l Layout) Positions() []int {
	return slices.Clone(visiblePositions[l])
}

// Panels returns the visible panels in position order.
func (l Layout) Panels() []panel.ID {
	pos := visiblePositions[l]
	out := make([]panel.ID, 0, len(pos))
	for _, p := range pos {
		out = append(out, PanelAt(p))
	}
	return out
}

// Shows reports whether id is visible under l.
func (l Layout) Shows(id panel.ID) bool {
	return slices.Contains(visiblePositions[l], Position(id))
}

// Dims returns the columns and rows of the visible grid.
func (l Layout) Dims() (cols, rows int) {
	switch l {
	case Columns:
		return 2, 1
	case Rows:
		return 1, 2
	case Grid:
		return 2, 2
	}
	return 1, 1
}

// PanelAt maps a grid position to the panel it holds.
func PanelAt(pos int) panel.ID {
	return panel.ID(pos + 1)
}

// Position is the inverse of PanelAt.
func Position(id panel.ID) int {
	return int(id) - 1
}
