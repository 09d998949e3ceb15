// Package layout turns a resolved related-file set into the fixed pane
// arrangement the presenter realizes: two side-by-side panes, a full-height
// left pane with a split right column, or a two-by-two grid. It also decides
// where focus lands, based on which member of the family the user came from.
package layout

import (
	"github.com/arthur-debert/relfiles/pkg/errors"
	"github.com/arthur-debert/relfiles/pkg/types"
)

// Pane is one window slot holding a resolved path.
type Pane struct {
	// Path is the file displayed in the pane.
	Path string

	// Index is the pane's position in the resolved set.
	Index int

	// Focused marks the pane that receives focus after opening.
	Focused bool
}

// Layout is the computed arrangement: columns left to right, each column's
// panes top to bottom.
type Layout struct {
	Columns [][]Pane

	// Focus is the resolved-set index of the focused pane.
	Focus int
}

// Compute builds the layout for a resolved set of 2, 3, or 4 paths.
func Compute(set *types.ResolvedSet) (*Layout, error) {
	if set == nil || set.Len() < 2 || set.Len() > 4 {
		n := 0
		if set != nil {
			n = set.Len()
		}
		return nil, errors.Newf(errors.ErrInvalidInput,
			"layout requires 2 to 4 paths, got %d", n)
	}

	columns := arrange(set.Len())
	focus := focusFor(set.Len(), set.OriginIndex)

	l := &Layout{Focus: focus}
	for _, column := range columns {
		panes := make([]Pane, len(column))
		for row, idx := range column {
			panes[row] = Pane{
				Path:    set.Paths[idx],
				Index:   idx,
				Focused: idx == focus,
			}
		}
		l.Columns = append(l.Columns, panes)
	}
	return l, nil
}

// arrange maps a set size to pane indices per column.
func arrange(n int) [][]int {
	switch n {
	case 2:
		return [][]int{{0}, {1}}
	case 3:
		return [][]int{{0}, {1, 2}}
	default:
		return [][]int{{0, 1}, {2, 3}}
	}
}

// focusFor applies the focus policy. The default is the last-opened pane;
// when the user came from a specific member, focus shifts to the pane they
// most likely want next.
func focusFor(n, origin int) int {
	switch n {
	case 2:
		// Right pane is opened last; coming from the left file also lands
		// on the right.
		return 1
	case 3:
		switch origin {
		case 0:
			return 1 // from left, focus right-top
		case 1:
			return 0 // from right-top, focus left
		default:
			return 2 // right-bottom
		}
	default:
		switch origin {
		case 0:
			return 2 // from left-top, focus right-top
		case 1:
			return 3 // from left-bottom, focus right-bottom
		case 2:
			return 0 // from right-top, focus left-top
		default:
			return 3 // right-bottom
		}
	}
}

// Position returns the column and row of the pane holding the given
// resolved-set index.
func (l *Layout) Position(index int) (col, row int) {
	for c, column := range l.Columns {
		for r, pane := range column {
			if pane.Index == index {
				return c, r
			}
		}
	}
	return -1, -1
}

// FocusMoves returns the directional window movements ("l" right, "j" down)
// leading from the top-left pane to the focused pane. The editor command
// builder replays them after opening all panes.
func (l *Layout) FocusMoves() []string {
	col, row := l.Position(l.Focus)
	var moves []string
	for i := 0; i < col; i++ {
		moves = append(moves, "l")
	}
	for i := 0; i < row; i++ {
		moves = append(moves, "j")
	}
	return moves
}

// Panes returns all panes in resolved-set order.
func (l *Layout) Panes() []Pane {
	n := 0
	for _, c := range l.Columns {
		n += len(c)
	}
	panes := make([]Pane, n)
	for _, column := range l.Columns {
		for _, pane := range column {
			panes[pane.Index] = pane
		}
	}
	return panes
}
