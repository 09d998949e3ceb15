// Package style holds the lipgloss styles and color policy shared by the
// terminal renderers.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	OriginPathStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	GroupNameStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)
)

// Pane preview styles
var (
	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	FocusedPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(FocusColor).
				Padding(0, 1)
)
