package output

import (
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/relfiles/pkg/layout"
	"github.com/arthur-debert/relfiles/pkg/style"
	"github.com/arthur-debert/relfiles/pkg/types"
)

// paneWidth is the inner width of each preview box.
const paneWidth = 24

// preview draws the pane arrangement the presenter will realize: one box per
// file, columns side by side, the focused pane with a highlighted border.
func (r *Renderer) preview(set *types.ResolvedSet) string {
	l, err := layout.Compute(set)
	if err != nil {
		// Sets outside 2..4 never reach the renderer; fall back to nothing.
		return ""
	}

	// Single-pane columns stretch to the full height of split columns so
	// the left pane reads as full-height in the 3-file arrangement.
	maxRows := 0
	for _, column := range l.Columns {
		if len(column) > maxRows {
			maxRows = len(column)
		}
	}

	var columns []string
	for _, column := range l.Columns {
		var boxes []string
		for _, pane := range column {
			boxes = append(boxes, r.paneBox(pane, len(column), maxRows))
		}
		columns = append(columns, lipgloss.JoinVertical(lipgloss.Left, boxes...))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func (r *Renderer) paneBox(pane layout.Pane, rows, maxRows int) string {
	s := style.PaneStyle
	if pane.Focused {
		s = style.FocusedPaneStyle
	}

	// Height in text lines: split columns get one line per pane, a lone
	// full-height pane gets the equivalent of the taller column.
	height := 1
	if rows == 1 && maxRows > 1 {
		height = maxRows*3 - 2
	}

	return s.Width(paneWidth).Height(height).Render(filepath.Base(pane.Path))
}
