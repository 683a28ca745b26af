// Package views provides the screens of the pomo TUI.
package views

import "github.com/charmbracelet/lipgloss"

// place centers content in a width x height area. A zero size (before the
// first WindowSizeMsg) returns content unchanged.
func place(content string, width, height int) string {
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// stack joins blocks vertically. Empty blocks keep their row so the layout
// does not jump when a banner or indicator appears.
func stack(blocks ...string) string {
	return lipgloss.JoinVertical(lipgloss.Center, blocks...)
}
